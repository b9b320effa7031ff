package v1handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"registro/internal/api/handler/v1handler"
	mockregistry "registro/internal/registry/mock"
	"registro/pkg/domain"
	"registro/pkg/logger"
	"registro/pkg/serrors"
	"registro/pkg/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestHandler(t *testing.T) (*mockregistry.MockRegistry, *mux.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)

	router := mux.NewRouter().PathPrefix("/v1").Subrouter()
	v1handler.New(v1handler.Deps{Registry: reg}).Register(router)

	return reg, router
}

func doJSON(t *testing.T, router *mux.Router, method string, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_StartSession(t *testing.T) {
	reg, router := newTestHandler(t)

	session := &domain.Session{
		ID:     3,
		Meal:   domain.MealLunch,
		Date:   "2026-08-26",
		Time:   "11:30",
		Groups: []string{"INF-2A"},
	}
	reg.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(session, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions", map[string]any{
		"meal":   "Almoço",
		"date":   "2026-08-26",
		"time":   "11:30",
		"groups": []string{"INF-2A"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.SessionID(3), got.ID)
}

func TestHandler_StartSession_InvalidBody(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(404)).
		Return(nil, serrors.With(serrors.ErrNotFound, "session not found"))

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions/404", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestHandler_GetSession_NonNumericID(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListSessions(t *testing.T) {
	reg, router := newTestHandler(t)

	filter := storage.SessionFilter{Date: "2026-08-26", Meal: domain.MealLunch}
	reg.EXPECT().Sessions(gomock.Any(), filter).Return([]domain.Session{
		{ID: 3, Meal: domain.MealLunch, Date: "2026-08-26", Time: "11:30"},
	}, nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions?date=2026-08-26&meal=Almo%C3%A7o", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ListSessions_InvalidDate(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().Sessions(gomock.Any(), storage.SessionFilter{Date: "26/08/2026"}).
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid date filter"))

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions?date=26%2F08%2F2026", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestHandler_ActiveSession(t *testing.T) {
	reg, router := newTestHandler(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: "2026-08-26", Time: "11:30"}
	reg.EXPECT().ActiveSession(gomock.Any()).Return(session, nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ActiveSession_None(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().ActiveSession(gomock.Any()).Return(nil, nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions/active", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "no active session")
}

func TestHandler_RegisterConsumption(t *testing.T) {
	reg, router := newTestHandler(t)

	reserveID := domain.ReserveID(11)
	reg.EXPECT().RegisterConsumption(gomock.Any(), domain.SessionID(3), "IQ3000123").
		Return(&domain.Consumption{ID: 21, StudentID: 5, SessionID: 3, ReserveID: &reserveID}, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/3/consumptions",
		map[string]string{"badge": "IQ3000123"})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_RegisterConsumption_MissingBadge(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/3/consumptions",
		map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "missing badge")
}

func TestHandler_RegisterConsumption_AlreadyServed(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().RegisterConsumption(gomock.Any(), domain.SessionID(3), "IQ3000123").
		Return(nil, serrors.With(serrors.ErrConflict, "student already served in this session"))

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/3/consumptions",
		map[string]string{"badge": "IQ3000123"})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "CONFLICT")
}

func TestHandler_UndoConsumption(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().UndoConsumption(gomock.Any(), domain.SessionID(3), "IQ3000123").Return(nil)

	rec := doJSON(t, router, http.MethodDelete, "/v1/sessions/3/consumptions/IQ3000123", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_InternalErrorIsOpaque(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).
		Return(nil, errors.New("pq: connection refused"))

	rec := doJSON(t, router, http.MethodGet, "/v1/sessions/3", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal error")
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandler_ReserveSnacks(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().ReserveSnacksForAll(gomock.Any(), "2026-08-26", "Vitamina").
		Return(int64(120), nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/reserves/snacks",
		map[string]string{"date": "2026-08-26", "dish": "Vitamina"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"created":120`)
}

func TestHandler_EnqueueServedSync(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().EnqueueServedSync(gomock.Any(), domain.SessionID(3)).Return(true, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/sync/served",
		map[string]int64{"sessionId": 3})
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"queued":true`)
}

func TestHandler_EnqueueMasterSync(t *testing.T) {
	reg, router := newTestHandler(t)

	reg.EXPECT().EnqueueMasterSync(gomock.Any()).Return(false, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/sync/master", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"queued":false`)
}
