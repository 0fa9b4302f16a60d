package quests

import (
	"errors"
	"time"
)

var (
	ErrPoolTooSmall = errors.New("quest pool smaller than requested count")
	ErrUnknownType  = errors.New("unknown quest type")
)

// Rewards are the diamond amounts a daily quest can grant. Weekly quests grant double.
var Rewards = []int{10, 15, 20, 25, 30}

const weeklyRewardMultiplier = 2

type Quest struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Target      int        `json:"target"`
	Current     int        `json:"current"`
	Reward      int        `json:"reward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Weekly      bool       `json:"weekly"`
	IssuedAt    time.Time  `json:"issuedAt"`
}

// ProgressParams carries what a single completion contributes to quests.
type ProgressParams struct {
	Workouts        int
	StreakDelta     int
	DurationMinutes int
	PerfectCount    int
	CurrentHour     int
}

// ApplyProgress returns a copy of quests with params applied, plus the quests
// completed by this call. Completed quests are never touched again, and
// progress is capped at the target.
func ApplyProgress(quests []Quest, params ProgressParams, now time.Time) (updated []Quest, completed []Quest) {
	updated = make([]Quest, len(quests))
	copy(updated, quests)

	for i := range updated {
		q := &updated[i]
		if q.Completed {
			continue
		}

		inc := q.Type.increment(params)
		if inc <= 0 {
			continue
		}

		q.Current = min(q.Current+inc, q.Target)
		if q.Current == q.Target {
			completedAt := now
			q.Completed = true
			q.CompletedAt = &completedAt
			completed = append(completed, *q)
		}
	}

	return updated, completed
}

// Repair fixes quests persisted as completed with progress short of (or past)
// the target. It returns the number of repaired quests.
func Repair(quests []Quest) int {
	repaired := 0
	for i := range quests {
		if quests[i].Completed && quests[i].Current != quests[i].Target {
			quests[i].Current = quests[i].Target
			repaired++
		}
	}
	return repaired
}

// TotalReward sums the rewards of the given quests.
func TotalReward(quests []Quest) int {
	total := 0
	for _, q := range quests {
		total += q.Reward
	}
	return total
}
