package session

import "time"

type Kind string

const (
	KindExercise Kind = "exercise"
	KindWorkout  Kind = "workout"
)

// CompletionEvent is emitted once, when a session reaches the completed phase.
type CompletionEvent struct {
	SessionID              string    `json:"sessionId"`
	Kind                   Kind      `json:"kind"`
	PlanIDs                []string  `json:"planIds"`
	Title                  string    `json:"title"`
	SetsCompleted          int       `json:"setsCompleted"`
	SetsPlanned            int       `json:"setsPlanned"`
	PerfectSets            int       `json:"perfectSets"`
	ActualDurationSeconds  int       `json:"actualDurationSeconds"`
	PlannedDurationSeconds int       `json:"plannedDurationSeconds"`
	SetDurations           []int     `json:"setDurations"`
	StartedAt              time.Time `json:"startedAt"`
	CompletedAt            time.Time `json:"completedAt"`
}

// Perfect reports whether every planned set was held for its full duration.
func (e CompletionEvent) Perfect() bool {
	return e.SetsPlanned > 0 && e.PerfectSets == e.SetsPlanned
}

// DurationMinutes rounds the active time to the nearest whole minute.
func (e CompletionEvent) DurationMinutes() int {
	return (e.ActualDurationSeconds + 30) / 60
}
