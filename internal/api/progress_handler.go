package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymquest/internal/history"
	"github.com/2beens/gymquest/internal/notify"
	"github.com/2beens/gymquest/internal/telemetry/tracing"
	"github.com/2beens/gymquest/pkg"

	"github.com/gorilla/mux"
)

const (
	defaultNotificationsLimit = 20
	maxHistoryPageSize        = 100
)

type SelectRequest struct {
	PlanID string `json:"planId,omitempty"`
	PathID string `json:"pathId,omitempty"`
}

type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

type HistoryResponse struct {
	Records []history.Record `json:"records"`
	Total   int              `json:"total"`
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	state, err := h.engine.Progress(ctx)
	if err != nil {
		writeError(w, "get progress", err)
		return
	}
	pkg.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) HandleQuests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quests.get")
	defer span.End()

	book, err := h.engine.Quests(ctx)
	if err != nil {
		writeError(w, "get quests", err)
		return
	}
	pkg.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.select")
	defer span.End()

	var req SelectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PlanID == "" && req.PathID == "" {
		pkg.WriteJSONError(w, "planId or pathId required", http.StatusBadRequest)
		return
	}

	if req.PlanID != "" {
		if err := h.engine.SelectPlan(ctx, req.PlanID); err != nil {
			writeError(w, "select plan", err)
			return
		}
	}
	if req.PathID != "" {
		if err := h.engine.SelectPath(ctx, req.PathID); err != nil {
			writeError(w, "select path", err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.reset")
	defer span.End()

	if err := h.engine.ResetProgress(ctx); err != nil {
		writeError(w, "reset progress", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleNotifications returns the newest notifications; ?drain=true also
// clears the feed, ?limit=N caps the non-draining read.
func (h *Handler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := defaultNotificationsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			pkg.WriteJSONError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = l
	}
	drain := r.URL.Query().Get("drain") == "true"

	notifications := h.engine.Notifications(limit, drain)
	if notifications == nil {
		notifications = []notify.Notification{}
	}
	pkg.WriteJSON(w, NotificationsResponse{Notifications: notifications}, http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 0 {
		pkg.WriteJSONError(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size <= 0 || size > maxHistoryPageSize {
		pkg.WriteJSONError(w, "invalid size", http.StatusBadRequest)
		return
	}

	params := history.ListParams{Page: page, Size: size}
	if params.From, err = timeQueryParam(r, "from"); err != nil {
		pkg.WriteJSONError(w, "invalid from", http.StatusBadRequest)
		return
	}
	if params.To, err = timeQueryParam(r, "to"); err != nil {
		pkg.WriteJSONError(w, "invalid to", http.StatusBadRequest)
		return
	}

	records, total, err := h.engine.History(ctx, params)
	if err != nil {
		writeError(w, "list history", err)
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	pkg.WriteJSON(w, HistoryResponse{Records: records, Total: total}, http.StatusOK)
}

func timeQueryParam(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
