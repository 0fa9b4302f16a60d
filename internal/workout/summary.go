package workout

import (
	"strings"
	"time"

	"github.com/2beens/gymquest/internal/session"
)

// Summary is the immutable result of a completed workout.
type Summary struct {
	WorkoutID              string           `json:"workoutId"`
	PlanIDs                []string         `json:"planIds"`
	Titles                 []string         `json:"titles"`
	CompletedSets          map[string]int   `json:"completedSets"`
	SetDurations           map[string][]int `json:"setDurations"`
	TotalCompletedSets     int              `json:"totalCompletedSets"`
	TotalPlannedSets       int              `json:"totalPlannedSets"`
	CompletionPercentage   float64          `json:"completionPercentage"`
	PerfectSets            int              `json:"perfectSets"`
	ActualDurationSeconds  int              `json:"actualDurationSeconds"`
	PlannedDurationSeconds int              `json:"plannedDurationSeconds"`
	StartTime              time.Time        `json:"startTime"`
	EndTime                time.Time        `json:"endTime"`
}

// CompletionEvent converts the summary into the event consumed by progression.
func (s Summary) CompletionEvent() session.CompletionEvent {
	durations := make([]int, 0, s.TotalCompletedSets)
	for _, id := range s.PlanIDs {
		durations = append(durations, s.SetDurations[id]...)
	}

	return session.CompletionEvent{
		SessionID:              s.WorkoutID,
		Kind:                   session.KindWorkout,
		PlanIDs:                append([]string(nil), s.PlanIDs...),
		Title:                  strings.Join(s.Titles, ", "),
		SetsCompleted:          s.TotalCompletedSets,
		SetsPlanned:            s.TotalPlannedSets,
		PerfectSets:            s.PerfectSets,
		ActualDurationSeconds:  s.ActualDurationSeconds,
		PlannedDurationSeconds: s.PlannedDurationSeconds,
		SetDurations:           durations,
		StartedAt:              s.StartTime,
		CompletedAt:            s.EndTime,
	}
}

func (s Summary) clone() *Summary {
	out := s
	out.PlanIDs = append([]string(nil), s.PlanIDs...)
	out.Titles = append([]string(nil), s.Titles...)
	out.CompletedSets = make(map[string]int, len(s.CompletedSets))
	for id, n := range s.CompletedSets {
		out.CompletedSets[id] = n
	}
	out.SetDurations = make(map[string][]int, len(s.SetDurations))
	for id, d := range s.SetDurations {
		out.SetDurations[id] = append([]int(nil), d...)
	}
	return &out
}

func completionPercentage(completed, planned int) float64 {
	if planned <= 0 {
		return 0
	}
	return 100 * float64(completed) / float64(planned)
}
