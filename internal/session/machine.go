package session

import (
	"fmt"
	"time"

	"github.com/2beens/gymquest/internal/clock"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultGetReadySeconds  = 10
	DefaultCountdownSeconds = 3
)

// CapabilityChecker gates the first active set in camera-assisted mode.
type CapabilityChecker interface {
	Granted() bool
}

type Option func(*Machine)

func WithGetReadySeconds(seconds int) Option {
	return func(m *Machine) {
		m.getReadySeconds = max(seconds, 0)
	}
}

func WithCountdownSeconds(seconds int) Option {
	return func(m *Machine) {
		m.countdownSeconds = max(seconds, 0)
	}
}

func WithCapability(checker CapabilityChecker) Option {
	return func(m *Machine) {
		m.capability = checker
	}
}

func WithCompletionHandler(handler func(CompletionEvent)) Option {
	return func(m *Machine) {
		m.onComplete = handler
	}
}

func WithClock(c clock.Clock) Option {
	return func(m *Machine) {
		m.clock = c
	}
}

type State struct {
	Phase                 Phase `json:"phase"`
	SecondsRemaining      int   `json:"secondsRemaining"`
	CurrentSet            int   `json:"currentSet"`
	NextSet               int   `json:"nextSet,omitempty"`
	ActualDurationSeconds int   `json:"actualDurationSeconds"`
	AwaitingCapability    bool  `json:"awaitingCapability,omitempty"`
}

// Machine drives a single exercise plan through its phases.
// It is not safe for concurrent use; one owner advances it with Tick.
type Machine struct {
	id               string
	plan             Plan
	getReadySeconds  int
	countdownSeconds int
	capability       CapabilityChecker
	onComplete       func(CompletionEvent)
	clock            clock.Clock

	phase              Phase
	remaining          int
	currentSet         int
	nextSet            int
	awaitingCapability bool
	activated          bool
	setDurations       []int
	perfectSets        int
	startedAt          time.Time
	completion         *CompletionEvent
}

func New(plan Plan, opts ...Option) (*Machine, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		id:               uuid.NewString(),
		plan:             plan,
		getReadySeconds:  DefaultGetReadySeconds,
		countdownSeconds: DefaultCountdownSeconds,
		clock:            clock.Real{},
		phase:            PhaseIdle,
		setDurations:     make([]int, 0, plan.Sets),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Machine) ID() string {
	return m.id
}

func (m *Machine) Plan() Plan {
	return m.plan
}

func (m *Machine) Completed() bool {
	return m.phase == PhaseCompleted
}

// Completion returns the completion event, or nil while the session is running.
func (m *Machine) Completion() *CompletionEvent {
	if m.completion == nil {
		return nil
	}
	event := *m.completion
	event.SetDurations = append([]int(nil), m.completion.SetDurations...)
	return &event
}

func (m *Machine) State() State {
	return State{
		Phase:                 m.phase,
		SecondsRemaining:      m.remaining,
		CurrentSet:            m.currentSet,
		NextSet:               m.nextSet,
		ActualDurationSeconds: m.actualDuration(),
		AwaitingCapability:    m.awaitingCapability,
	}
}

func (m *Machine) Start() bool {
	if m.phase != PhaseIdle {
		return false
	}

	m.startedAt = m.clock.Now()
	m.currentSet = 1
	if m.getReadySeconds == 0 {
		m.enterActive(1)
		return true
	}

	m.phase = PhasePreparing
	m.remaining = m.getReadySeconds
	return true
}

// Tick advances the machine by deltaSeconds one-second steps.
// Ticks are ignored while idle, paused or completed.
func (m *Machine) Tick(deltaSeconds int) {
	for i := 0; i < deltaSeconds; i++ {
		if !m.phase.HasTimer() {
			return
		}
		m.step()
	}
}

func (m *Machine) Pause() bool {
	if m.phase != PhaseActive {
		return false
	}
	m.phase = PhasePaused
	return true
}

func (m *Machine) Resume() bool {
	if m.phase != PhasePaused {
		return false
	}
	m.phase = PhaseActive
	return true
}

// Skip jumps from a preparatory or rest phase straight into the target set.
func (m *Machine) Skip() bool {
	switch m.phase {
	case PhasePreparing, PhaseCountdown:
		m.enterActive(1)
		return true
	case PhaseRest:
		m.enterActive(m.nextSet)
		return true
	default:
		return false
	}
}

// Done finishes the current set early, crediting only the seconds worked.
func (m *Machine) Done() bool {
	if m.phase != PhaseActive && m.phase != PhasePaused {
		return false
	}
	m.finishSet(m.plan.DurationSeconds - m.remaining)
	return true
}

func (m *Machine) step() {
	switch m.phase {
	case PhasePreparing:
		if m.awaitingCapability {
			m.enterActive(1)
			return
		}
		next := m.remaining - 1
		switch {
		case next <= 0:
			m.enterActive(1)
		case next <= m.countdownSeconds:
			m.phase = PhaseCountdown
			m.remaining = next
		default:
			m.remaining = next
		}
	case PhaseCountdown:
		if m.remaining > 1 {
			m.remaining--
			return
		}
		m.enterActive(1)
	case PhaseActive:
		if m.remaining > 1 {
			m.remaining--
			return
		}
		m.remaining = 0
		m.finishSet(m.plan.DurationSeconds)
	case PhaseRest:
		if m.remaining > 1 {
			m.remaining--
			return
		}
		m.enterActive(m.nextSet)
	default:
		// no live timer
	}
}

func (m *Machine) enterActive(set int) {
	if !m.activated && m.capability != nil && !m.capability.Granted() {
		if !m.awaitingCapability {
			log.Debugf("session [%s]: capability not granted, holding in preparing", m.id)
		}
		m.phase = PhasePreparing
		m.remaining = 0
		m.awaitingCapability = true
		return
	}

	m.activated = true
	m.awaitingCapability = false
	m.phase = PhaseActive
	m.remaining = m.plan.DurationSeconds
	m.currentSet = set
	m.nextSet = 0
}

func (m *Machine) finishSet(seconds int) {
	m.setDurations = append(m.setDurations, seconds)
	if seconds >= m.plan.DurationSeconds {
		m.perfectSets++
	}

	if m.currentSet >= m.plan.Sets {
		m.complete()
		return
	}

	m.nextSet = m.currentSet + 1
	if m.plan.RestBetweenSetsSeconds == 0 {
		m.enterActive(m.nextSet)
		return
	}
	m.phase = PhaseRest
	m.remaining = m.plan.RestBetweenSetsSeconds
}

func (m *Machine) complete() {
	m.phase = PhaseCompleted
	m.remaining = 0
	m.nextSet = 0

	event := CompletionEvent{
		SessionID:              m.id,
		Kind:                   KindExercise,
		PlanIDs:                []string{m.plan.ID},
		Title:                  m.plan.Title,
		SetsCompleted:          len(m.setDurations),
		SetsPlanned:            m.plan.Sets,
		PerfectSets:            m.perfectSets,
		ActualDurationSeconds:  m.actualDuration(),
		PlannedDurationSeconds: m.plan.PlannedSeconds(),
		SetDurations:           append([]int(nil), m.setDurations...),
		StartedAt:              m.startedAt,
		CompletedAt:            m.clock.Now(),
	}
	m.completion = &event

	log.Debugf("session [%s]: %s completed in %ds", m.id, m.plan.ID, event.ActualDurationSeconds)
	if m.onComplete != nil {
		m.onComplete(event)
	}
}

func (m *Machine) actualDuration() int {
	total := 0
	for _, d := range m.setDurations {
		total += d
	}
	return total
}

func (m *Machine) String() string {
	return fmt.Sprintf("session[%s %s %s set=%d remaining=%d]", m.id, m.plan.ID, m.phase, m.currentSet, m.remaining)
}
