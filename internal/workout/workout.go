package workout

import (
	"fmt"
	"time"

	"github.com/2beens/gymquest/internal/clock"
	"github.com/2beens/gymquest/internal/session"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type RestKind string

const (
	RestNone             RestKind = ""
	RestBetweenSets      RestKind = "between_sets"
	RestBetweenExercises RestKind = "between_exercises"
)

type Option func(*Workout)

func WithClock(c clock.Clock) Option {
	return func(w *Workout) {
		w.clock = c
	}
}

func WithCompletionHandler(handler func(session.CompletionEvent)) Option {
	return func(w *Workout) {
		w.onComplete = handler
	}
}

type State struct {
	Phase                session.Phase  `json:"phase"`
	CurrentExerciseIndex int            `json:"currentExerciseIndex"`
	CurrentExerciseID    string         `json:"currentExerciseId"`
	PendingSet           int            `json:"pendingSet"`
	RestSecondsRemaining int            `json:"restSecondsRemaining"`
	RestKind             RestKind       `json:"restKind,omitempty"`
	CompletedSets        map[string]int `json:"completedSets"`
	CompletionPercentage float64        `json:"completionPercentage"`
}

// Workout sequences several exercise plans. Set timing is reported by the
// caller through CompleteSet; the workout only counts down rest periods.
type Workout struct {
	id         string
	plans      []session.Plan
	clock      clock.Clock
	onComplete func(session.CompletionEvent)
	startTime  time.Time

	currentExerciseIndex int
	pendingSet           int
	completedSets        map[string]int
	setDurations         map[string][]int
	perfectSets          int

	phase         session.Phase
	restRemaining int
	restKind      RestKind

	summary *Summary
}

func New(plans []session.Plan, opts ...Option) (*Workout, error) {
	if len(plans) == 0 {
		return nil, ErrNoExercises
	}

	seen := make(map[string]bool, len(plans))
	for i, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateExercise, p.ID)
		}
		seen[p.ID] = true
	}

	w := &Workout{
		id:            uuid.NewString(),
		plans:         append([]session.Plan(nil), plans...),
		clock:         clock.Real{},
		completedSets: make(map[string]int, len(plans)),
		setDurations:  make(map[string][]int, len(plans)),
		phase:         session.PhaseActive,
		pendingSet:    1,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.startTime = w.clock.Now()

	return w, nil
}

func (w *Workout) ID() string {
	return w.id
}

func (w *Workout) Plans() []session.Plan {
	return append([]session.Plan(nil), w.plans...)
}

func (w *Workout) StartTime() time.Time {
	return w.startTime
}

func (w *Workout) Completed() bool {
	return w.phase == session.PhaseCompleted
}

// Summary returns the completion summary, or nil while the workout is running.
func (w *Workout) Summary() *Summary {
	if w.summary == nil {
		return nil
	}
	return w.summary.clone()
}

func (w *Workout) State() State {
	completed := make(map[string]int, len(w.completedSets))
	for id, n := range w.completedSets {
		completed[id] = n
	}
	return State{
		Phase:                w.phase,
		CurrentExerciseIndex: w.currentExerciseIndex,
		CurrentExerciseID:    w.plans[w.currentExerciseIndex].ID,
		PendingSet:           w.pendingSet,
		RestSecondsRemaining: w.restRemaining,
		RestKind:             w.restKind,
		CompletedSets:        completed,
		CompletionPercentage: w.CompletionPercentage(),
	}
}

func (w *Workout) CompletionPercentage() float64 {
	return completionPercentage(w.totalCompletedSets(), w.totalPlannedSets())
}

// CompleteSet records one finished set of the exercise at exerciseIndex.
// Rejected input leaves the workout untouched. The summary is returned
// only by the call that completes the workout.
func (w *Workout) CompleteSet(exerciseIndex, durationSeconds int) (*Summary, error) {
	if w.phase == session.PhaseCompleted {
		return nil, ErrWorkoutCompleted
	}
	if exerciseIndex < 0 || exerciseIndex >= len(w.plans) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrExerciseIndexOutOfRange, exerciseIndex, len(w.plans))
	}
	if durationSeconds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDuration, durationSeconds)
	}

	plan := w.plans[exerciseIndex]
	if w.completedSets[plan.ID] >= plan.Sets {
		return nil, fmt.Errorf("%w: %s", ErrExerciseCompleted, plan.ID)
	}

	w.completedSets[plan.ID]++
	w.setDurations[plan.ID] = append(w.setDurations[plan.ID], durationSeconds)
	if durationSeconds >= plan.DurationSeconds {
		w.perfectSets++
	}

	if w.completedSets[plan.ID] < plan.Sets {
		w.currentExerciseIndex = exerciseIndex
		w.pendingSet = w.completedSets[plan.ID] + 1
		w.enterRest(RestBetweenSets, plan.RestBetweenSetsSeconds)
		return nil, nil
	}

	log.Debugf("workout [%s]: exercise %s completed", w.id, plan.ID)
	next, ok := w.nextIncomplete(exerciseIndex)
	if !ok {
		return w.complete(), nil
	}

	w.currentExerciseIndex = next
	w.pendingSet = w.completedSets[w.plans[next].ID] + 1
	w.enterRest(RestBetweenExercises, plan.RestBetweenExercisesSeconds)
	return nil, nil
}

// Tick counts the current rest period down; rest expiry resumes work.
func (w *Workout) Tick(deltaSeconds int) {
	if w.phase != session.PhaseRest || deltaSeconds <= 0 {
		return
	}
	w.restRemaining -= deltaSeconds
	if w.restRemaining <= 0 {
		w.endRest()
	}
}

func (w *Workout) SkipRest() bool {
	if w.phase != session.PhaseRest {
		return false
	}
	w.endRest()
	return true
}

func (w *Workout) enterRest(kind RestKind, seconds int) {
	if seconds <= 0 {
		w.endRest()
		return
	}
	w.phase = session.PhaseRest
	w.restKind = kind
	w.restRemaining = seconds
}

func (w *Workout) endRest() {
	w.phase = session.PhaseActive
	w.restKind = RestNone
	w.restRemaining = 0
}

func (w *Workout) nextIncomplete(from int) (int, bool) {
	for i := 1; i <= len(w.plans); i++ {
		idx := (from + i) % len(w.plans)
		p := w.plans[idx]
		if w.completedSets[p.ID] < p.Sets {
			return idx, true
		}
	}
	return 0, false
}

func (w *Workout) complete() *Summary {
	w.phase = session.PhaseCompleted
	w.restKind = RestNone
	w.restRemaining = 0

	s := &Summary{
		WorkoutID:          w.id,
		CompletedSets:      make(map[string]int, len(w.plans)),
		SetDurations:       make(map[string][]int, len(w.plans)),
		TotalCompletedSets: w.totalCompletedSets(),
		TotalPlannedSets:   w.totalPlannedSets(),
		PerfectSets:        w.perfectSets,
		StartTime:          w.startTime,
		EndTime:            w.clock.Now(),
	}
	for _, p := range w.plans {
		s.PlanIDs = append(s.PlanIDs, p.ID)
		s.Titles = append(s.Titles, p.Title)
		s.CompletedSets[p.ID] = w.completedSets[p.ID]
		s.SetDurations[p.ID] = append([]int(nil), w.setDurations[p.ID]...)
		s.PlannedDurationSeconds += p.PlannedSeconds()
		for _, d := range w.setDurations[p.ID] {
			s.ActualDurationSeconds += d
		}
	}
	s.CompletionPercentage = completionPercentage(s.TotalCompletedSets, s.TotalPlannedSets)
	w.summary = s

	log.Debugf("workout [%s]: completed, %.0f%%", w.id, s.CompletionPercentage)
	if w.onComplete != nil {
		w.onComplete(s.CompletionEvent())
	}

	return s.clone()
}

func (w *Workout) totalCompletedSets() int {
	total := 0
	for _, n := range w.completedSets {
		total += n
	}
	return total
}

func (w *Workout) totalPlannedSets() int {
	total := 0
	for _, p := range w.plans {
		total += p.Sets
	}
	return total
}
