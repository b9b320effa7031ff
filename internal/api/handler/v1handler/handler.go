// Package v1handler implements the v1 HTTP handlers of the meal registration
// API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"registro/internal/exporter"
	"registro/internal/registry"
	"registro/internal/stats"
	"registro/pkg/logger"
	"registro/pkg/serrors"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps holds the services the handlers delegate to.
type Deps struct {
	// Registry is the domain service for sessions and consumptions.
	Registry registry.Registry
	// Stats computes attendance reports.
	Stats *stats.Service
	// Exporter writes session workbooks.
	Exporter *exporter.Exporter
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on the given router. The router is expected
// to already be scoped to the /v1 prefix.
func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/sessions/active", h.activeSession).Methods(http.MethodGet)
	router.HandleFunc("/sessions", h.startSession).Methods(http.MethodPost)
	router.HandleFunc("/sessions", h.listSessions).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id:[0-9]+}", h.getSession).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id:[0-9]+}/groups", h.updateSessionGroups).Methods(http.MethodPut)
	router.HandleFunc("/sessions/{id:[0-9]+}/eligible", h.eligibleStudents).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id:[0-9]+}/served", h.servedMeals).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id:[0-9]+}/served", h.syncServedState).Methods(http.MethodPut)
	router.HandleFunc("/sessions/{id:[0-9]+}/consumptions", h.registerConsumption).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{id:[0-9]+}/consumptions/{badge}", h.undoConsumption).Methods(http.MethodDelete)
	router.HandleFunc("/sessions/{id:[0-9]+}/export", h.exportSession).Methods(http.MethodPost)
	router.HandleFunc("/reserves/snacks", h.reserveSnacks).Methods(http.MethodPost)
	router.HandleFunc("/sync/served", h.enqueueServedSync).Methods(http.MethodPost)
	router.HandleFunc("/sync/master", h.enqueueMasterSync).Methods(http.MethodPost)
	router.HandleFunc("/stats", h.statsReport).Methods(http.MethodGet)
}

// errorResponse is the JSON error envelope of all v1 endpoints.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response body", zap.Error(err))
	}
}

// writeError maps semantic error kinds to HTTP statuses and writes the error
// envelope. Unrecognized errors become a 500 with a generic message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	switch {
	case errors.Is(err, serrors.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, serrors.ErrBadRequest):
		status, code = http.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, serrors.ErrConflict):
		status, code = http.StatusConflict, "CONFLICT"
	case errors.Is(err, serrors.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, serrors.ErrForbidden):
		status, code = http.StatusForbidden, "FORBIDDEN"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		message = "internal error"
	}

	writeJSON(ctx, w, status, errorResponse{Code: code, Message: message})
}
