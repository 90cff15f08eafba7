package slot

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"time"
)

// IDLength is the width of an encoded slot ID: YYYYMMDD + HHMM + HHMM.
const IDLength = 16

// ID is the natural key of a slot on a given date. Its layout is fixed and
// shared with every client that stores or transmits it.
type ID string

// Decoded is the substring view of an ID; nothing is validated.
type Decoded struct {
	DateRaw string
	Start   string
	End     string
	Display string
}

func EncodeID(date time.Time, start, end string) (ID, error) {
	startClock, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return "", err
	}
	return EncodeClockID(date, startClock, endClock), nil
}

func EncodeClockID(date time.Time, start, end Clock) ID {
	return ID(date.Format(constvars.DateRawLayout) + start.Raw() + end.Raw())
}

func EncodeSlot(date time.Time, s Slot) ID {
	return EncodeClockID(date, s.Start, s.End)
}

// DecodeID splits id by position. Callers pass IDs the system produced, so a
// short or malformed id yields whatever substrings are available.
func DecodeID(id ID) Decoded {
	raw := string(id)
	d := Decoded{
		DateRaw: substr(raw, 0, 8),
		Start:   withColon(substr(raw, 8, 12)),
		End:     withColon(substr(raw, 12, 16)),
	}
	d.Display = d.Start + "-" + d.End
	return d
}

// Date parses the date component. Unlike DecodeID it fails on garbage.
func (d Decoded) Date() (time.Time, error) {
	t, err := time.Parse(constvars.DateRawLayout, d.DateRaw)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidTimeFormat(err, d.DateRaw)
	}
	return t, nil
}

// TimeRaw returns the HHMMHHMM tail of the ID.
func (id ID) TimeRaw() string {
	return substr(string(id), 8, 16)
}

// WithDate keeps the time-of-day part and replaces the date.
func (id ID) WithDate(date time.Time) ID {
	return ID(date.Format(constvars.DateRawLayout) + id.TimeRaw())
}

func (id ID) Valid() bool {
	return len(id) == IDLength && isDigits(string(id))
}

func (id ID) String() string {
	return string(id)
}

func substr(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func withColon(hhmm string) string {
	if len(hhmm) < 4 {
		return hhmm
	}
	return hhmm[:2] + ":" + hhmm[2:]
}
