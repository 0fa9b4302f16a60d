package clock_test

import (
	"testing"
	"time"

	"github.com/2beens/gymquest/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "2024-03-10", "2024-03-10", 0},
		{"next day", "2024-03-10", "2024-03-11", 1},
		{"across month", "2024-02-28", "2024-03-01", 2},
		{"across dst switch", "2024-03-30", "2024-03-31", 1},
		{"backwards", "2024-03-10", "2024-03-08", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.DaysBetween(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := clock.DaysBetween("bad", "2024-03-10")
	assert.Error(t, err)
}

func TestManual(t *testing.T) {
	start := time.Date(2024, 5, 5, 23, 30, 0, 0, time.UTC)
	c := clock.NewManual(start)
	assert.Equal(t, "2024-05-05", clock.DayKey(c.Now()))

	c.Advance(time.Hour)
	assert.Equal(t, "2024-05-06", clock.DayKey(c.Now()))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
