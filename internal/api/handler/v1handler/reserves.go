package v1handler

import (
	"encoding/json"
	"net/http"

	"registro/pkg/serrors"
)

// reserveSnacksRequest is the payload of POST /reserves/snacks.
type reserveSnacksRequest struct {
	Date string `json:"date"`
	Dish string `json:"dish"`
}

// reserveSnacksResponse reports how many snack reservations were created.
type reserveSnacksResponse struct {
	Created int64 `json:"created"`
}

func (h *Handler) reserveSnacks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reserveSnacksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	created, err := h.deps.Registry.ReserveSnacksForAll(ctx, req.Date, req.Dish)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, reserveSnacksResponse{Created: created})
}
