package clock

import (
	"sync"
	"time"
)

// DayLayout is the calendar day format used for persisted dates.
const DayLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

var _ Clock = Real{}
var _ Clock = (*Manual)(nil)

type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Manual is a settable clock, used in tests and simulations.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// DayKey returns the calendar day of t, in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a DayKey value into UTC midnight of that calendar day.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, time.UTC)
}

// DaysBetween returns the whole number of calendar days from day "from" to day "to".
// Both are DayKey values. The result is negative when "to" is before "from".
func DaysBetween(from, to string) (int, error) {
	f, err := ParseDay(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseDay(to)
	if err != nil {
		return 0, err
	}
	return int(t.Sub(f).Hours() / 24), nil
}
