package slot

import (
	"arena-scheduler-service/internal/pkg/exceptions"
	"strconv"
	"strings"
)

// ParseClock parses "HH:MM" (a single-digit hour is accepted).
func ParseClock(s string) (Clock, error) {
	c, ok := parseClock(s)
	if !ok {
		return Clock{}, exceptions.ErrInvalidTimeFormat(nil, s)
	}
	return c, nil
}

func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return Clock{}, false
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
