package slot

import (
	"arena-scheduler-service/internal/pkg/exceptions"
	"time"
)

// WeekRange returns Monday and Sunday of ISO week `week` in ISO year `year`.
// Week 1 is the week holding January 4th.
func WeekRange(week, year int) (time.Time, time.Time, error) {
	if week < 1 || week > 53 {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidWeek(nil, week)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -offset)

	monday := week1Monday.AddDate(0, 0, 7*(week-1))
	return monday, monday.AddDate(0, 0, 6), nil
}

func WeekOf(t time.Time) (int, int) {
	return t.ISOWeek()
}

// ShiftWeeks moves a date by whole weeks using calendar arithmetic.
func ShiftWeeks(date time.Time, delta int) time.Time {
	return date.AddDate(0, 0, 7*delta)
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
