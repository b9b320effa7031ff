package v1handler

import (
	"encoding/json"
	"net/http"

	"registro/internal/registry"
	"registro/pkg/serrors"

	"github.com/gorilla/mux"
)

// registerConsumptionRequest is the payload of POST
// /sessions/{id}/consumptions.
type registerConsumptionRequest struct {
	Badge string `json:"badge"`
}

func (h *Handler) registerConsumption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerConsumptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if req.Badge == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "missing badge"))

		return
	}

	consumption, err := h.deps.Registry.RegisterConsumption(ctx, sessionID(r), req.Badge)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, consumption)
}

func (h *Handler) undoConsumption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.deps.Registry.UndoConsumption(ctx, sessionID(r), mux.Vars(r)["badge"]); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) servedMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	meals, err := h.deps.Registry.ServedMeals(ctx, sessionID(r))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, meals)
}

// syncServedRequest is the payload of PUT /sessions/{id}/served.
type syncServedRequest struct {
	Entries []registry.SnapshotEntry `json:"entries"`
}

func (h *Handler) syncServedState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req syncServedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	result, err := h.deps.Registry.SyncServedState(ctx, sessionID(r), req.Entries)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
