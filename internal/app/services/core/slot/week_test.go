package slot

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name   string
		week   int
		year   int
		monday time.Time
		sunday time.Time
	}{
		{"first week of 2025 starts in 2024", 1, 2025, date(2024, time.December, 30), date(2025, time.January, 5)},
		{"week 2 of 2025", 2, 2025, date(2025, time.January, 6), date(2025, time.January, 12)},
		{"week 10 of 2025", 10, 2025, date(2025, time.March, 3), date(2025, time.March, 9)},
		{"week 52 of 2024", 52, 2024, date(2024, time.December, 23), date(2024, time.December, 29)},
		{"week 53 of 2020 ends in 2021", 53, 2020, date(2020, time.December, 28), date(2021, time.January, 3)},
		{"week 1 of 2021 starts on the 4th", 1, 2021, date(2021, time.January, 4), date(2021, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday, err := WeekRange(tt.week, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.monday, monday)
			assert.Equal(t, tt.sunday, sunday)
			assert.Equal(t, time.Monday, monday.Weekday())

			year, week := WeekOf(monday)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.week, week)
		})
	}
}

func TestWeekRange_InvalidWeek(t *testing.T) {
	for _, week := range []int{0, -1, 54} {
		_, _, err := WeekRange(week, 2025)
		assert.True(t, exceptions.HasCode(err, constvars.ErrDevInvalidWeek), "week %d", week)
	}
}

func TestShiftWeeks(t *testing.T) {
	assert.Equal(t, date(2025, time.March, 3), ShiftWeeks(date(2025, time.January, 6), 8))
	assert.Equal(t, date(2025, time.January, 6), ShiftWeeks(date(2024, time.December, 23), 2))
	assert.Equal(t, date(2024, time.December, 23), ShiftWeeks(date(2025, time.January, 6), -2))
	assert.Equal(t, date(2024, time.February, 29), ShiftWeeks(date(2024, time.February, 22), 1))
}
