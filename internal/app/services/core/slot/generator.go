package slot

import (
	"arena-scheduler-service/internal/pkg/exceptions"
	"iter"
)

var allowedIntervals = map[int]bool{15: true, 30: true, 60: true}

func ValidInterval(intervalMinutes int) bool {
	return allowedIntervals[intervalMinutes]
}

// Generate yields the [cur, cur+interval) windows between start and end.
// Every interval uses plain minute addition; a slot never crosses 24:00 and a
// trailing window shorter than the interval is dropped. The sequence is empty
// when start is not before end, and may be ranged over any number of times.
func Generate(start, end Clock, intervalMinutes int) (iter.Seq[Slot], error) {
	if !ValidInterval(intervalMinutes) {
		return nil, exceptions.ErrInvalidInterval(nil, intervalMinutes)
	}

	from, to := start.Minutes(), end.Minutes()
	return func(yield func(Slot) bool) {
		for cur := from; cur+intervalMinutes <= to; cur += intervalMinutes {
			if !yield(Slot{Start: clockFromMinutes(cur), End: clockFromMinutes(cur + intervalMinutes)}) {
				return
			}
		}
	}, nil
}

func GenerateSlice(start, end Clock, intervalMinutes int) ([]Slot, error) {
	seq, err := Generate(start, end, intervalMinutes)
	if err != nil {
		return nil, err
	}

	var out []Slot
	for s := range seq {
		out = append(out, s)
	}
	return out, nil
}

// GenerateFromStrings parses both bounds before generating.
func GenerateFromStrings(start, end string, intervalMinutes int) ([]Slot, error) {
	startClock, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return nil, err
	}
	return GenerateSlice(startClock, endClock, intervalMinutes)
}
