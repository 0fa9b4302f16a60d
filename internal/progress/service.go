package progress

import (
	"context"
	"fmt"

	"github.com/2beens/gymquest/internal/clock"
	"github.com/2beens/gymquest/internal/notify"
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/internal/streak"
	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type stateRepo interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Clear(ctx context.Context) error
}

type historyRecorder interface {
	Record(ctx context.Context, event session.CompletionEvent) error
}

// Outcome is what a single completion did to the progression.
type Outcome struct {
	Streak          streak.Result  `json:"streak"`
	CompletedQuests []quests.Quest `json:"completedQuests"`
	DiamondsEarned  int            `json:"diamondsEarned"`
	Diamonds        int            `json:"diamonds"`
	TotalWorkouts   int            `json:"totalWorkouts"`
	Duplicate       bool           `json:"duplicate,omitempty"`
}

type Option func(*Service)

func WithHistory(h historyRecorder) Option {
	return func(s *Service) {
		s.history = h
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		s.metricsManager = m
	}
}

func WithGenerator(g *quests.Generator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// Service owns the progression state. It is not safe for concurrent use:
// the owning event loop serializes every call, which makes each completion a
// single read-modify-write.
type Service struct {
	repo           stateRepo
	clock          clock.Clock
	sink           notify.Sink
	generator      *quests.Generator
	history        historyRecorder
	metricsManager *metrics.Manager

	state         State
	lastSessionID string
}

func NewService(repo stateRepo, c clock.Clock, sink notify.Sink, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		clock: c,
		sink:  sink,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = quests.NewGenerator(nil)
	}
	return s
}

// Load replaces the in-memory state with the persisted one. Read failures
// are logged; the affected fields keep their defaults.
func (s *Service) Load(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.load")
	defer span.End()

	state, err := s.repo.Load(ctx)
	if err != nil {
		log.Errorf("load progress, falling back to defaults where needed: %s", err)
		span.RecordError(err)
	}
	s.state = state
	s.updateGauges()
}

// ResetQuestsIfNeeded regenerates the quest lists once per calendar day.
func (s *Service) ResetQuestsIfNeeded(ctx context.Context) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.resetquests")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	reset, err := s.state.Quests.ResetIfNeeded(s.clock.Now(), s.generator)
	if err != nil {
		return false, fmt.Errorf("reset quests: %w", err)
	}
	if reset {
		log.Debugf("quests reset for %s", s.state.Quests.LastReset)
		s.save(ctx)
	}
	return reset, nil
}

// HandleCompletion applies a completion event: streak, quest progress,
// diamonds and the workout counter, persisted in one save.
func (s *Service) HandleCompletion(ctx context.Context, event session.CompletionEvent) Outcome {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.handlecompletion")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", event.SessionID))

	if event.SessionID != "" && event.SessionID == s.lastSessionID {
		log.Warnf("completion of session [%s] already handled", event.SessionID)
		return Outcome{
			Streak:        streak.Result{NewStreak: s.state.Streak.Count},
			Diamonds:      s.state.Diamonds,
			TotalWorkouts: s.state.TotalWorkouts,
			Duplicate:     true,
		}
	}
	s.lastSessionID = event.SessionID

	if _, err := s.ResetQuestsIfNeeded(ctx); err != nil {
		log.Errorf("handle completion: %s", err)
	}

	now := s.clock.Now()
	previousStreak := s.state.Streak.Count
	streakResult := s.state.Streak.RecordCompletion(now)

	params := quests.ProgressParams{
		Workouts:        1,
		DurationMinutes: event.DurationMinutes(),
		CurrentHour:     now.Hour(),
	}
	if streakResult.Streaked {
		params.StreakDelta = max(streakResult.NewStreak-previousStreak, 0)
	}
	if event.Perfect() {
		params.PerfectCount = 1
	}

	completed := s.state.Quests.Apply(params, now)
	earned := quests.TotalReward(completed)
	s.state.Diamonds += earned
	s.state.TotalWorkouts++

	s.save(ctx)

	for _, q := range completed {
		s.sink.Notify(ctx, notify.NewQuestCompleted(notify.QuestCompleted{
			QuestID: q.ID,
			Title:   q.Title,
			Reward:  q.Reward,
			Weekly:  q.Weekly,
		}, now))
	}
	if streakResult.Extended() {
		s.sink.Notify(ctx, notify.NewStreakExtended(streakResult.NewStreak, now))
	}

	if s.history != nil {
		if err := s.history.Record(ctx, event); err != nil {
			log.Errorf("record session [%s] history: %s", event.SessionID, err)
		}
	}

	s.observe(event, completed, earned)

	return Outcome{
		Streak:          streakResult,
		CompletedQuests: completed,
		DiamondsEarned:  earned,
		Diamonds:        s.state.Diamonds,
		TotalWorkouts:   s.state.TotalWorkouts,
	}
}

func (s *Service) Snapshot() State {
	return s.state.clone()
}

func (s *Service) SelectPlan(ctx context.Context, planID string) {
	s.state.SelectedPlanID = planID
	s.save(ctx)
}

func (s *Service) SelectPath(ctx context.Context, pathID string) {
	s.state.SelectedPathID = pathID
	s.save(ctx)
}

// Reset wipes all stored progression and starts over with fresh quests.
func (s *Service) Reset(ctx context.Context) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.reset")
	defer span.End()

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.state = State{}
	s.lastSessionID = ""
	s.updateGauges()

	if _, err := s.ResetQuestsIfNeeded(ctx); err != nil {
		return err
	}
	return nil
}

// save persists the state; failures are logged and otherwise ignored.
func (s *Service) save(ctx context.Context) {
	if err := s.repo.Save(ctx, s.state); err != nil {
		log.Errorf("save progress: %s", err)
	}
}

func (s *Service) updateGauges() {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.GaugeStreak.Set(float64(s.state.Streak.Count))
}

func (s *Service) observe(event session.CompletionEvent, completed []quests.Quest, earned int) {
	if s.metricsManager == nil {
		return
	}
	s.updateGauges()
	s.metricsManager.CounterDiamondsGranted.Add(float64(earned))
	for _, q := range completed {
		period := "daily"
		if q.Weekly {
			period = "weekly"
		}
		s.metricsManager.CounterQuestsCompleted.WithLabelValues(period).Inc()
	}
	s.metricsManager.HistSessionDuration.WithLabelValues(string(event.Kind)).Observe(float64(event.ActualDurationSeconds))
}
