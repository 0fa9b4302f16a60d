package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymquest/internal/catalog"
	"github.com/2beens/gymquest/internal/controller"
	"github.com/2beens/gymquest/internal/game"
	"github.com/2beens/gymquest/internal/history"
	"github.com/2beens/gymquest/internal/notify"
	"github.com/2beens/gymquest/internal/progress"
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/internal/workout"
	"github.com/2beens/gymquest/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=api_test

type gameEngine interface {
	Status(ctx context.Context) (controller.Status, error)
	StartExercise(ctx context.Context, planID string) (controller.Status, error)
	StartWorkout(ctx context.Context, planIDs []string) (controller.Status, error)
	SessionAction(ctx context.Context, action game.Action) (game.ActionResult, error)
	CompleteSet(ctx context.Context, exerciseIndex, durationSeconds int) (game.SetResult, error)
	Exit(ctx context.Context) error

	Progress(ctx context.Context) (progress.State, error)
	Quests(ctx context.Context) (quests.Book, error)
	SelectPlan(ctx context.Context, planID string) error
	SelectPath(ctx context.Context, pathID string) error
	ResetProgress(ctx context.Context) error
	Notifications(limit int, drain bool) []notify.Notification
	History(ctx context.Context, params history.ListParams) ([]history.Record, int, error)

	Plans() []session.Plan
	Paths() []catalog.Path
	NextLevel(pathID, completedPlanID string) (session.Plan, bool, error)
	Capability() game.CapabilityState
	SetCapability(granted bool) game.CapabilityState
}

type Handler struct {
	engine gameEngine
}

func NewHandler(engine gameEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("status")

	r.HandleFunc("/session/exercise", h.HandleStartExercise).Methods("POST", "OPTIONS").Name("start-exercise")
	r.HandleFunc("/session/workout", h.HandleStartWorkout).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/session/set", h.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/session/exit", h.HandleExit).Methods("POST", "OPTIONS").Name("exit-session")
	r.HandleFunc("/session/{action}", h.HandleSessionAction).Methods("POST", "OPTIONS").Name("session-action")

	r.HandleFunc("/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	r.HandleFunc("/progress/select", h.HandleSelect).Methods("POST", "OPTIONS").Name("select")
	r.HandleFunc("/progress/reset", h.HandleReset).Methods("POST", "OPTIONS").Name("reset-progress")
	r.HandleFunc("/quests", h.HandleQuests).Methods("GET", "OPTIONS").Name("quests")
	r.HandleFunc("/notifications", h.HandleNotifications).Methods("GET", "OPTIONS").Name("notifications")
	r.HandleFunc("/history/page/{page}/size/{size}", h.HandleHistory).Methods("GET", "OPTIONS").Name("history")

	r.HandleFunc("/catalog/plans", h.HandlePlans).Methods("GET", "OPTIONS").Name("plans")
	r.HandleFunc("/catalog/paths", h.HandlePaths).Methods("GET", "OPTIONS").Name("paths")
	r.HandleFunc("/catalog/paths/{id}/next/{plan}", h.HandleNextLevel).Methods("GET", "OPTIONS").Name("next-level")

	r.HandleFunc("/capability", h.HandleCapability).Methods("GET", "OPTIONS").Name("capability")
	r.HandleFunc("/capability", h.HandleSetCapability).Methods("PUT", "OPTIONS").Name("set-capability")
}

// writeError maps domain errors onto status codes.
func writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrPlanNotFound),
		errors.Is(err, catalog.ErrPathNotFound),
		errors.Is(err, history.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, controller.ErrNoActiveSession),
		errors.Is(err, controller.ErrUnsupportedOnWorkout),
		errors.Is(err, controller.ErrUnsupportedOnExercise),
		errors.Is(err, workout.ErrWorkoutCompleted),
		errors.Is(err, workout.ErrExerciseCompleted):
		status = http.StatusConflict
	case errors.Is(err, session.ErrInvalidPlan),
		errors.Is(err, game.ErrUnknownAction),
		errors.Is(err, workout.ErrNoExercises),
		errors.Is(err, workout.ErrDuplicateExercise),
		errors.Is(err, workout.ErrExerciseIndexOutOfRange),
		errors.Is(err, workout.ErrNegativeDuration):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrHistoryDisabled):
		status = http.StatusNotImplemented
	case errors.Is(err, controller.ErrLoopStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Debugf("%s: %s", op, err)
	}
	pkg.WriteJSONError(w, err.Error(), status)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("decode request body for %s: %s", r.URL.Path, err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
