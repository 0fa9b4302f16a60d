package api

import (
	"net/http"

	"github.com/2beens/gymquest/internal/game"
	"github.com/2beens/gymquest/internal/telemetry/tracing"
	"github.com/2beens/gymquest/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

type StartExerciseRequest struct {
	PlanID string `json:"planId"`
}

type StartWorkoutRequest struct {
	PlanIDs []string `json:"planIds"`
}

type CompleteSetRequest struct {
	ExerciseIndex   int `json:"exerciseIndex"`
	DurationSeconds int `json:"durationSeconds"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.status")
	defer span.End()

	status, err := h.engine.Status(ctx)
	if err != nil {
		writeError(w, "session status", err)
		return
	}
	pkg.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) HandleStartExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.startexercise")
	defer span.End()

	var req StartExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PlanID == "" {
		pkg.WriteJSONError(w, "planId empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("plan_id", req.PlanID))

	status, err := h.engine.StartExercise(ctx, req.PlanID)
	if err != nil {
		writeError(w, "start exercise", err)
		return
	}
	pkg.WriteJSON(w, status, http.StatusCreated)
}

func (h *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.startworkout")
	defer span.End()

	var req StartWorkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.PlanIDs) == 0 {
		pkg.WriteJSONError(w, "planIds empty", http.StatusBadRequest)
		return
	}

	status, err := h.engine.StartWorkout(ctx, req.PlanIDs)
	if err != nil {
		writeError(w, "start workout", err)
		return
	}
	pkg.WriteJSON(w, status, http.StatusCreated)
}

// HandleSessionAction serves pause, resume, skip and done. A transition that
// does not apply in the current phase is reported with applied=false.
func (h *Handler) HandleSessionAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.action")
	defer span.End()

	action := game.Action(mux.Vars(r)["action"])
	span.SetAttributes(attribute.String("action", string(action)))

	res, err := h.engine.SessionAction(ctx, action)
	if err != nil {
		writeError(w, "session action "+string(action), err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.completeset")
	defer span.End()

	var req CompleteSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.engine.CompleteSet(ctx, req.ExerciseIndex, req.DurationSeconds)
	if err != nil {
		writeError(w, "complete set", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleExit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.exit")
	defer span.End()

	if err := h.engine.Exit(ctx); err != nil {
		writeError(w, "exit session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
