package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymquest/internal/capability"
	"github.com/2beens/gymquest/internal/catalog"
	"github.com/2beens/gymquest/internal/controller"
	"github.com/2beens/gymquest/internal/history"
	"github.com/2beens/gymquest/internal/notify"
	"github.com/2beens/gymquest/internal/progress"
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/internal/workout"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction   = errors.New("unknown session action")
	ErrHistoryDisabled = errors.New("workout history is disabled")
)

type Action string

const (
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
	ActionSkip   Action = "skip"
	ActionDone   Action = "done"
)

type ActionResult struct {
	Applied bool              `json:"applied"`
	Status  controller.Status `json:"status"`
}

type SetResult struct {
	Summary *workout.Summary  `json:"summary,omitempty"`
	Status  controller.Status `json:"status"`
}

type CapabilityState struct {
	CameraAssisted bool `json:"cameraAssisted"`
	Granted        bool `json:"granted"`
}

type historyReader interface {
	List(ctx context.Context, params history.ListParams) ([]history.Record, error)
	Count(ctx context.Context) (int, error)
}

type Params struct {
	Controller     *controller.Controller
	Loop           *controller.Loop
	Progress       *progress.Service
	Catalog        *catalog.Catalog
	Feed           *notify.Feed
	Camera         *capability.Toggle
	CameraAssisted bool
	// History is optional.
	History historyReader
}

// Engine is the entry point for the outer surfaces. Session and progression
// calls run on the event loop; catalog, feed, camera and history are safe to
// use from any goroutine and are called directly.
type Engine struct {
	ctrl           *controller.Controller
	loop           *controller.Loop
	progress       *progress.Service
	catalog        *catalog.Catalog
	feed           *notify.Feed
	camera         *capability.Toggle
	cameraAssisted bool
	history        historyReader
}

func NewEngine(p Params) *Engine {
	return &Engine{
		ctrl:           p.Controller,
		loop:           p.Loop,
		progress:       p.Progress,
		catalog:        p.Catalog,
		feed:           p.Feed,
		camera:         p.Camera,
		cameraAssisted: p.CameraAssisted,
		history:        p.History,
	}
}

// Load restores persisted progression. Call it once, before Run.
func (e *Engine) Load(ctx context.Context) {
	e.progress.Load(ctx)
	if _, err := e.progress.ResetQuestsIfNeeded(ctx); err != nil {
		log.Errorf("engine load: %s", err)
	}
}

// Run drives the event loop until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	e.loop.Run(ctx)
}

func (e *Engine) do(ctx context.Context, fn func(ctx context.Context) error) error {
	var fnErr error
	if err := e.loop.Submit(ctx, func(ctx context.Context) {
		fnErr = fn(ctx)
	}); err != nil {
		return err
	}
	return fnErr
}

func (e *Engine) Status(ctx context.Context) (status controller.Status, err error) {
	err = e.do(ctx, func(context.Context) error {
		status = e.ctrl.Status()
		return nil
	})
	return status, err
}

func (e *Engine) StartExercise(ctx context.Context, planID string) (status controller.Status, err error) {
	err = e.do(ctx, func(ctx context.Context) error {
		var startErr error
		status, startErr = e.ctrl.StartExercise(ctx, planID)
		if startErr != nil {
			return startErr
		}
		e.progress.SelectPlan(ctx, planID)
		return nil
	})
	return status, err
}

func (e *Engine) StartWorkout(ctx context.Context, planIDs []string) (status controller.Status, err error) {
	err = e.do(ctx, func(ctx context.Context) error {
		var startErr error
		status, startErr = e.ctrl.StartWorkout(ctx, planIDs)
		return startErr
	})
	return status, err
}

func (e *Engine) SessionAction(ctx context.Context, action Action) (res ActionResult, err error) {
	err = e.do(ctx, func(ctx context.Context) error {
		var actionErr error
		switch action {
		case ActionPause:
			res.Applied, actionErr = e.ctrl.Pause()
		case ActionResume:
			res.Applied, actionErr = e.ctrl.Resume()
		case ActionSkip:
			res.Applied, actionErr = e.ctrl.Skip()
		case ActionDone:
			res.Applied, actionErr = e.ctrl.Done(ctx)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownAction, action)
		}
		if actionErr != nil {
			return actionErr
		}
		res.Status = e.ctrl.Status()
		return nil
	})
	return res, err
}

func (e *Engine) CompleteSet(ctx context.Context, exerciseIndex, durationSeconds int) (res SetResult, err error) {
	err = e.do(ctx, func(ctx context.Context) error {
		summary, setErr := e.ctrl.CompleteSet(ctx, exerciseIndex, durationSeconds)
		if setErr != nil {
			return setErr
		}
		res.Summary = summary
		res.Status = e.ctrl.Status()
		return nil
	})
	return res, err
}

func (e *Engine) Exit(ctx context.Context) error {
	return e.do(ctx, func(context.Context) error {
		return e.ctrl.Exit()
	})
}

// Progress returns the progression state, with quests rolled over to today.
func (e *Engine) Progress(ctx context.Context) (state progress.State, err error) {
	err = e.do(ctx, func(ctx context.Context) error {
		if _, resetErr := e.progress.ResetQuestsIfNeeded(ctx); resetErr != nil {
			log.Errorf("progress: %s", resetErr)
		}
		state = e.progress.Snapshot()
		return nil
	})
	return state, err
}

func (e *Engine) Quests(ctx context.Context) (quests.Book, error) {
	state, err := e.Progress(ctx)
	if err != nil {
		return quests.Book{}, err
	}
	return state.Quests, nil
}

func (e *Engine) SelectPlan(ctx context.Context, planID string) error {
	if _, err := e.catalog.Plan(planID); err != nil {
		return err
	}
	return e.do(ctx, func(ctx context.Context) error {
		e.progress.SelectPlan(ctx, planID)
		return nil
	})
}

func (e *Engine) SelectPath(ctx context.Context, pathID string) error {
	if _, err := e.catalog.Path(pathID); err != nil {
		return err
	}
	return e.do(ctx, func(ctx context.Context) error {
		e.progress.SelectPath(ctx, pathID)
		return nil
	})
}

func (e *Engine) ResetProgress(ctx context.Context) error {
	return e.do(ctx, func(ctx context.Context) error {
		return e.progress.Reset(ctx)
	})
}

// Notifications returns up to limit of the newest notifications. With drain,
// the whole feed is returned and emptied instead.
func (e *Engine) Notifications(limit int, drain bool) []notify.Notification {
	if drain {
		return e.feed.Drain()
	}
	return e.feed.Recent(limit)
}

func (e *Engine) Plans() []session.Plan {
	return e.catalog.Plans()
}

func (e *Engine) Paths() []catalog.Path {
	return e.catalog.Paths()
}

func (e *Engine) NextLevel(pathID, completedPlanID string) (session.Plan, bool, error) {
	return e.catalog.NextLevel(pathID, completedPlanID)
}

func (e *Engine) Capability() CapabilityState {
	return CapabilityState{
		CameraAssisted: e.cameraAssisted,
		Granted:        e.camera.Granted(),
	}
}

func (e *Engine) SetCapability(granted bool) CapabilityState {
	e.camera.Set(granted)
	return e.Capability()
}

func (e *Engine) History(ctx context.Context, params history.ListParams) ([]history.Record, int, error) {
	if e.history == nil {
		return nil, 0, ErrHistoryDisabled
	}
	records, err := e.history.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := e.history.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
