package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"registro/internal/registry"
	"registro/pkg/domain"
	"registro/pkg/serrors"
	"registro/pkg/storage"

	"github.com/gorilla/mux"
)

// sessionID extracts the {id} path variable. The route pattern guarantees it
// is numeric.
func sessionID(r *http.Request) domain.SessionID {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	return domain.SessionID(id)
}

// startSessionRequest is the payload of POST /sessions.
type startSessionRequest struct {
	Meal      string   `json:"meal"`
	Period    string   `json:"period"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Groups    []string `json:"groups"`
	SnackDish string   `json:"snackDish"`
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	session, err := h.deps.Registry.StartSession(ctx, registry.NewSession{
		Meal:      domain.MealKind(req.Meal),
		Period:    domain.Period(req.Period),
		Date:      req.Date,
		Time:      req.Time,
		Groups:    req.Groups,
		SnackDish: req.SnackDish,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, session)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessions, err := h.deps.Registry.Sessions(ctx, storage.SessionFilter{
		Date: r.URL.Query().Get("date"),
		Meal: domain.MealKind(r.URL.Query().Get("meal")),
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, sessions)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.deps.Registry.SessionByID(ctx, sessionID(r))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, session)
}

func (h *Handler) activeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.deps.Registry.ActiveSession(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if session == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "no active session"))

		return
	}

	writeJSON(ctx, w, http.StatusOK, session)
}

// updateGroupsRequest is the payload of PUT /sessions/{id}/groups.
type updateGroupsRequest struct {
	Groups []string `json:"groups"`
}

func (h *Handler) updateSessionGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateGroupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	session, err := h.deps.Registry.SetSessionGroups(ctx, sessionID(r), req.Groups)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, session)
}

func (h *Handler) eligibleStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	students, err := h.deps.Registry.EligibleStudents(ctx, sessionID(r))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, students)
}

// exportResponse is the payload returned by POST /sessions/{id}/export.
type exportResponse struct {
	Path string `json:"path"`
}

func (h *Handler) exportSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := sessionID(r)
	session, err := h.deps.Registry.SessionByID(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	meals, err := h.deps.Registry.ServedMeals(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	path, err := h.deps.Exporter.ExportSession(ctx, session, meals)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, exportResponse{Path: path})
}
