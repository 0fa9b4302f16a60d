package api

import (
	"net/http"

	"github.com/2beens/gymquest/internal/catalog"
	"github.com/2beens/gymquest/internal/session"
	"github.com/2beens/gymquest/pkg"

	"github.com/gorilla/mux"
)

type PlansResponse struct {
	Plans []session.Plan `json:"plans"`
}

type PathsResponse struct {
	Paths []catalog.Path `json:"paths"`
}

type NextLevelResponse struct {
	Next *session.Plan `json:"next"`
	Done bool          `json:"done"`
}

type SetCapabilityRequest struct {
	Granted *bool `json:"granted"`
}

func (h *Handler) HandlePlans(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, PlansResponse{Plans: h.engine.Plans()}, http.StatusOK)
}

func (h *Handler) HandlePaths(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, PathsResponse{Paths: h.engine.Paths()}, http.StatusOK)
}

func (h *Handler) HandleNextLevel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	next, ok, err := h.engine.NextLevel(vars["id"], vars["plan"])
	if err != nil {
		writeError(w, "next level", err)
		return
	}

	resp := NextLevelResponse{Done: !ok}
	if ok {
		resp.Next = &next
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleCapability(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, h.engine.Capability(), http.StatusOK)
}

func (h *Handler) HandleSetCapability(w http.ResponseWriter, r *http.Request) {
	var req SetCapabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Granted == nil {
		pkg.WriteJSONError(w, "granted missing", http.StatusBadRequest)
		return
	}
	pkg.WriteJSON(w, h.engine.SetCapability(*req.Granted), http.StatusOK)
}
