package slot

import (
	"arena-scheduler-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
		want     []string
	}{
		{
			name:     "half hour slots cover the hour",
			start:    "09:00",
			end:      "10:00",
			interval: 30,
			want:     []string{"09:00-09:30", "09:30-10:00"},
		},
		{
			name:     "quarter hour slots",
			start:    "09:00",
			end:      "10:00",
			interval: 15,
			want:     []string{"09:00-09:15", "09:15-09:30", "09:30-09:45", "09:45-10:00"},
		},
		{
			name:     "hourly slots up to the end of day",
			start:    "21:00",
			end:      "23:00",
			interval: 60,
			want:     []string{"21:00-22:00", "22:00-23:00"},
		},
		{
			name:     "trailing partial window is dropped",
			start:    "09:00",
			end:      "09:45",
			interval: 30,
			want:     []string{"09:00-09:30"},
		},
		{
			name:     "reversed range is empty",
			start:    "10:00",
			end:      "09:00",
			interval: 30,
			want:     nil,
		},
		{
			name:     "equal bounds are empty",
			start:    "10:00",
			end:      "10:00",
			interval: 60,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateFromStrings(tt.start, tt.end, tt.interval)
			require.NoError(t, err)

			var got []string
			for _, s := range slots {
				got = append(got, s.Display())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_InvalidInterval(t *testing.T) {
	for _, interval := range []int{0, 20, 45, -30, 120} {
		_, err := Generate(MustParseClock("09:00"), MustParseClock("10:00"), interval)
		assert.Error(t, err)
		assert.True(t, exceptions.IsInvalidInterval(err), "interval %d", interval)
	}
}

func TestGenerate_InvalidTimeFormat(t *testing.T) {
	_, err := GenerateFromStrings("9am", "10:00", 30)
	assert.True(t, exceptions.IsInvalidTimeFormat(err))

	_, err = GenerateFromStrings("09:00", "25:00", 30)
	assert.True(t, exceptions.IsInvalidTimeFormat(err))
}

func TestGenerate_Restartable(t *testing.T) {
	seq, err := Generate(MustParseClock("07:00"), MustParseClock("21:00"), 30)
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	assert.Equal(t, 28, count())
	assert.Equal(t, 28, count())
}

func TestGenerate_StopsEarly(t *testing.T) {
	seq, err := Generate(MustParseClock("07:00"), MustParseClock("21:00"), 15)
	require.NoError(t, err)

	var first []Slot
	for s := range seq {
		first = append(first, s)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []Slot{
		{Start: Clock{7, 0}, End: Clock{7, 15}},
		{Start: Clock{7, 15}, End: Clock{7, 30}},
	}, first)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("7:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{H: 7, M: 5}, c)
	assert.Equal(t, "07:05", c.String())
	assert.Equal(t, "0705", c.Raw())

	for _, bad := range []string{"", "0700", "07:5", "07:60", "24:00", "ab:cd", "07:00:00"} {
		_, err := ParseClock(bad)
		assert.True(t, exceptions.IsInvalidTimeFormat(err), "input %q", bad)
	}
}
