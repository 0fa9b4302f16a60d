package streak

import (
	"time"

	"github.com/2beens/gymquest/internal/clock"

	log "github.com/sirupsen/logrus"
)

// State is the persisted streak. LastCompletedDate is a clock.DayKey value,
// empty when nothing was ever completed.
type State struct {
	Count             int    `json:"count"`
	LastCompletedDate string `json:"lastCompletedDate,omitempty"`
}

type Result struct {
	Streaked  bool `json:"streaked"`
	NewStreak int  `json:"newStreak"`
}

// RecordCompletion registers a completion on today's calendar day.
// Repeated completions on the same day leave the streak unchanged.
// A gap of more than one day, a missing or unreadable last date, or a last date
// in the future (clock rollback) restarts the streak at 1.
func (s *State) RecordCompletion(today time.Time) Result {
	day := clock.DayKey(today)
	if s.LastCompletedDate == day {
		return Result{Streaked: false, NewStreak: s.Count}
	}

	newStreak := 1
	if s.LastCompletedDate != "" {
		dayDiff, err := clock.DaysBetween(s.LastCompletedDate, day)
		switch {
		case err != nil:
			log.Warnf("streak: unreadable last completed date [%s]: %s", s.LastCompletedDate, err)
		case dayDiff == 1:
			newStreak = s.Count + 1
		case dayDiff < 0:
			log.Warnf("streak: last completed date [%s] is after today [%s], resetting", s.LastCompletedDate, day)
		}
	}

	s.Count = newStreak
	s.LastCompletedDate = day
	return Result{Streaked: true, NewStreak: newStreak}
}

// Extended reports whether a result continued an existing streak.
func (r Result) Extended() bool {
	return r.Streaked && r.NewStreak > 1
}

// Active reports whether the streak is still alive on today, i.e. the last
// completion was today or yesterday.
func (s State) Active(today time.Time) bool {
	if s.LastCompletedDate == "" || s.Count == 0 {
		return false
	}
	dayDiff, err := clock.DaysBetween(s.LastCompletedDate, clock.DayKey(today))
	if err != nil {
		return false
	}
	return dayDiff == 0 || dayDiff == 1
}
