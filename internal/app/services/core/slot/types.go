package slot

import "fmt"

// Clock holds a day-local wall time (hour and minute).
type Clock struct {
	H int
	M int
}

func (c Clock) Minutes() int {
	return c.H*60 + c.M
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.H, c.M)
}

// Raw renders the clock as HHMM, the form embedded in an ID.
func (c Clock) Raw() string {
	return fmt.Sprintf("%02d%02d", c.H, c.M)
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

func clockFromMinutes(total int) Clock {
	return Clock{H: total / 60, M: total % 60}
}

// Slot is a half-open [Start, End) window within one day.
type Slot struct {
	Start Clock
	End   Clock
}

func (s Slot) Display() string {
	return s.Start.String() + "-" + s.End.String()
}
