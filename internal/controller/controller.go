package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymquest/internal/clock"
	"github.com/2beens/gymquest/internal/progress"
	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/internal/telemetry/tracing"
	"github.com/2beens/gymquest/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=controller_mocks_test.go -package=controller_test

var (
	ErrNoActiveSession       = errors.New("no active session")
	ErrUnsupportedOnWorkout  = errors.New("operation not supported by a workout")
	ErrUnsupportedOnExercise = errors.New("operation not supported by an exercise session")
)

type planSource interface {
	Plan(id string) (session.Plan, error)
	PlansByID(ids []string) ([]session.Plan, error)
}

type completionHandler interface {
	HandleCompletion(ctx context.Context, event session.CompletionEvent) progress.Outcome
}

type Option func(*Controller)

func WithGetReadySeconds(seconds int) Option {
	return func(c *Controller) {
		c.sessionOpts = append(c.sessionOpts, session.WithGetReadySeconds(seconds))
	}
}

func WithCountdownSeconds(seconds int) Option {
	return func(c *Controller) {
		c.sessionOpts = append(c.sessionOpts, session.WithCountdownSeconds(seconds))
	}
}

// WithCapability turns on camera-assisted mode: exercise sessions wait for
// checker before their first active set.
func WithCapability(checker session.CapabilityChecker) Option {
	return func(c *Controller) {
		c.sessionOpts = append(c.sessionOpts, session.WithCapability(checker))
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(c *Controller) {
		c.metricsManager = m
	}
}

// ExerciseStatus describes a running single-exercise session.
type ExerciseStatus struct {
	Plan  session.Plan  `json:"plan"`
	State session.State `json:"state"`
}

// WorkoutStatus describes a running multi-exercise workout.
type WorkoutStatus struct {
	Plans   []session.Plan   `json:"plans"`
	State   workout.State    `json:"state"`
	Summary *workout.Summary `json:"summary,omitempty"`
}

type Status struct {
	Active      bool              `json:"active"`
	SessionID   string            `json:"sessionId,omitempty"`
	Kind        session.Kind      `json:"kind,omitempty"`
	Exercise    *ExerciseStatus   `json:"exercise,omitempty"`
	Workout     *WorkoutStatus    `json:"workout,omitempty"`
	LastOutcome *progress.Outcome `json:"lastOutcome,omitempty"`
}

// Controller owns the one active session, either an exercise or a workout,
// and forwards its completion to progression exactly once.
// It is not safe for concurrent use; Loop serializes access to it.
type Controller struct {
	plans          planSource
	progress       completionHandler
	clock          clock.Clock
	metricsManager *metrics.Manager
	sessionOpts    []session.Option

	exercise *session.Machine
	workout  *workout.Workout

	pending     *session.CompletionEvent
	lastOutcome *progress.Outcome
}

func New(plans planSource, progress completionHandler, opts ...Option) *Controller {
	c := &Controller{
		plans:    plans,
		progress: progress,
		clock:    clock.Real{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartExercise starts a session for planID. A session still in progress is
// abandoned without credit.
func (c *Controller) StartExercise(ctx context.Context, planID string) (_ Status, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "controller.startexercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("plan_id", planID))

	plan, err := c.plans.Plan(planID)
	if err != nil {
		return Status{}, err
	}

	opts := append([]session.Option{
		session.WithClock(c.clock),
		session.WithCompletionHandler(c.onComplete),
	}, c.sessionOpts...)
	m, err := session.New(plan, opts...)
	if err != nil {
		return Status{}, fmt.Errorf("new session: %w", err)
	}

	c.abandon()
	c.exercise = m
	c.lastOutcome = nil
	m.Start()
	c.started(session.KindExercise)

	log.Debugf("controller: started exercise session [%s] for plan %s", m.ID(), planID)
	c.flush(ctx)
	return c.Status(), nil
}

// StartWorkout starts a workout over planIDs, replacing any session in progress.
func (c *Controller) StartWorkout(ctx context.Context, planIDs []string) (_ Status, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "controller.startworkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.StringSlice("plan_ids", planIDs))

	plans, err := c.plans.PlansByID(planIDs)
	if err != nil {
		return Status{}, err
	}

	w, err := workout.New(plans,
		workout.WithClock(c.clock),
		workout.WithCompletionHandler(c.onComplete),
	)
	if err != nil {
		return Status{}, fmt.Errorf("new workout: %w", err)
	}

	c.abandon()
	c.workout = w
	c.lastOutcome = nil
	c.started(session.KindWorkout)

	log.Debugf("controller: started workout [%s] with %d exercises", w.ID(), len(plans))
	return c.Status(), nil
}

func (c *Controller) Pause() (bool, error) {
	switch {
	case c.exercise != nil:
		return c.exercise.Pause(), nil
	case c.workout != nil:
		return false, ErrUnsupportedOnWorkout
	default:
		return false, ErrNoActiveSession
	}
}

func (c *Controller) Resume() (bool, error) {
	switch {
	case c.exercise != nil:
		return c.exercise.Resume(), nil
	case c.workout != nil:
		return false, ErrUnsupportedOnWorkout
	default:
		return false, ErrNoActiveSession
	}
}

// Skip skips the current preparatory or rest phase.
func (c *Controller) Skip() (bool, error) {
	switch {
	case c.exercise != nil:
		return c.exercise.Skip(), nil
	case c.workout != nil:
		return c.workout.SkipRest(), nil
	default:
		return false, ErrNoActiveSession
	}
}

// Done finishes the current exercise set early.
func (c *Controller) Done(ctx context.Context) (bool, error) {
	switch {
	case c.exercise != nil:
		ok := c.exercise.Done()
		c.flush(ctx)
		return ok, nil
	case c.workout != nil:
		return false, ErrUnsupportedOnWorkout
	default:
		return false, ErrNoActiveSession
	}
}

// CompleteSet records a finished set of the workout exercise at exerciseIndex.
func (c *Controller) CompleteSet(ctx context.Context, exerciseIndex, durationSeconds int) (*workout.Summary, error) {
	switch {
	case c.workout != nil:
		summary, err := c.workout.CompleteSet(exerciseIndex, durationSeconds)
		if err != nil {
			return nil, err
		}
		c.flush(ctx)
		return summary, nil
	case c.exercise != nil:
		return nil, ErrUnsupportedOnExercise
	default:
		return nil, ErrNoActiveSession
	}
}

// Exit leaves the current session. An unfinished session is abandoned without credit.
func (c *Controller) Exit() error {
	if c.exercise == nil && c.workout == nil {
		return ErrNoActiveSession
	}
	c.abandon()
	return nil
}

// Tick advances the active session by deltaSeconds.
func (c *Controller) Tick(ctx context.Context, deltaSeconds int) {
	switch {
	case c.exercise != nil:
		c.exercise.Tick(deltaSeconds)
	case c.workout != nil:
		c.workout.Tick(deltaSeconds)
	default:
		return
	}
	c.flush(ctx)
}

func (c *Controller) Status() Status {
	status := Status{}
	if c.lastOutcome != nil {
		outcome := *c.lastOutcome
		status.LastOutcome = &outcome
	}

	switch {
	case c.exercise != nil:
		status.Active = !c.exercise.Completed()
		status.SessionID = c.exercise.ID()
		status.Kind = session.KindExercise
		status.Exercise = &ExerciseStatus{
			Plan:  c.exercise.Plan(),
			State: c.exercise.State(),
		}
	case c.workout != nil:
		status.Active = !c.workout.Completed()
		status.SessionID = c.workout.ID()
		status.Kind = session.KindWorkout
		status.Workout = &WorkoutStatus{
			Plans:   c.workout.Plans(),
			State:   c.workout.State(),
			Summary: c.workout.Summary(),
		}
	}

	return status
}

// onComplete runs inside a session transition; the event is handed to
// progression by the next flush, once the transition has returned.
func (c *Controller) onComplete(event session.CompletionEvent) {
	c.pending = &event
}

func (c *Controller) flush(ctx context.Context) {
	if c.pending == nil {
		return
	}
	event := *c.pending
	c.pending = nil

	outcome := c.progress.HandleCompletion(ctx, event)
	c.lastOutcome = &outcome

	if c.metricsManager != nil {
		c.metricsManager.CounterSessionsCompleted.WithLabelValues(string(event.Kind)).Inc()
		c.metricsManager.GaugeActiveSession.Set(0)
	}
	log.Infof("controller: session [%s] completed, +%d diamonds, streak %d",
		event.SessionID, outcome.DiamondsEarned, outcome.Streak.NewStreak)
}

func (c *Controller) started(kind session.Kind) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterSessionsStarted.WithLabelValues(string(kind)).Inc()
	c.metricsManager.GaugeActiveSession.Set(1)
}

func (c *Controller) abandon() {
	var (
		kind      session.Kind
		id        string
		completed bool
	)
	switch {
	case c.exercise != nil:
		kind, id, completed = session.KindExercise, c.exercise.ID(), c.exercise.Completed()
	case c.workout != nil:
		kind, id, completed = session.KindWorkout, c.workout.ID(), c.workout.Completed()
	default:
		return
	}

	c.exercise = nil
	c.workout = nil
	c.pending = nil
	if completed {
		return
	}

	log.Infof("controller: %s session [%s] abandoned", kind, id)
	if c.metricsManager != nil {
		c.metricsManager.CounterSessionsAbandoned.WithLabelValues(string(kind)).Inc()
		c.metricsManager.GaugeActiveSession.Set(0)
	}
}
