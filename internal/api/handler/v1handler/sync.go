package v1handler

import (
	"encoding/json"
	"net/http"

	"registro/pkg/domain"
	"registro/pkg/serrors"
)

// enqueueServedRequest is the payload of POST /sync/served.
type enqueueServedRequest struct {
	SessionID int64 `json:"sessionId"`
}

// enqueueResponse reports whether a job was queued or collapsed into an
// existing one.
type enqueueResponse struct {
	Queued bool `json:"queued"`
}

func (h *Handler) enqueueServedSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req enqueueServedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	queued, err := h.deps.Registry.EnqueueServedSync(ctx, domain.SessionID(req.SessionID))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, enqueueResponse{Queued: queued})
}

func (h *Handler) enqueueMasterSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queued, err := h.deps.Registry.EnqueueMasterSync(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, enqueueResponse{Queued: queued})
}

func (h *Handler) statsReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.deps.Stats.Report(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
