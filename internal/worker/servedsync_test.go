package worker_test

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"registro/internal/registry"
	mockregistry "registro/internal/registry/mock"
	mocksheets "registro/internal/sheets/mock"
	"registro/internal/worker"
	"registro/pkg/domain"
	"registro/pkg/logger"
	"registro/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeServedJob(id int64, sessionID int64) *river.Job[registry.ServedSyncArgs] {
	return &river.Job[registry.ServedSyncArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   registry.ServedSyncArgs{SessionID: sessionID},
	}
}

func TestServedSyncWorker_Work_AppendsMissingRows(t *testing.T) {
	ctrl := gomock.NewController(t)

	reg := mockregistry.NewMockRegistry(ctrl)
	client := mocksheets.NewMockClient(ctrl)
	w := worker.NewServedSyncWorker(reg, client)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: "2026-08-26", Time: "11:30"}
	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
	reg.EXPECT().ServedMeals(gomock.Any(), domain.SessionID(3)).Return([]domain.ServedMeal{
		{Badge: "IQ3000123", Name: "Maria da Silva", Groups: "INF-2A, QUI-3C", Dish: "Feijoada", ServedAt: "11:42:00"},
		{Badge: "IQ3000456", Name: "João dos Santos", Groups: "MEC-1B", Dish: "Feijoada", ServedAt: "11:43:10"},
	}, nil)

	// Maria's row is already on the worksheet, only João's must be appended.
	client.EXPECT().Values(gomock.Any(), "Almoço").Return([][]string{
		{"Matrícula", "Data", "Nome", "Turma", "Refeição", "Hora"},
		{"IQ3000123", "2026-08-26", "Maria da Silva", "INF-2A", "Feijoada", "11:42:00"},
	}, nil)
	client.EXPECT().Append(gomock.Any(), "Almoço", [][]string{
		{"IQ3000456", "2026-08-26", "João dos Santos", "MEC-1B", "Feijoada", "11:43:10"},
	}).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeServedJob(1, 3)))
}

func TestServedSyncWorker_Work_AllRowsUploaded(t *testing.T) {
	ctrl := gomock.NewController(t)

	reg := mockregistry.NewMockRegistry(ctrl)
	client := mocksheets.NewMockClient(ctrl)
	w := worker.NewServedSyncWorker(reg, client)

	session := &domain.Session{ID: 3, Meal: domain.MealSnack, Date: "2026-08-26", Time: "15:00"}
	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
	reg.EXPECT().ServedMeals(gomock.Any(), domain.SessionID(3)).Return([]domain.ServedMeal{
		{Badge: "IQ3000123", Name: "Maria da Silva", Groups: "INF-2A", Dish: "Vitamina", ServedAt: "15:02:00"},
	}, nil)
	client.EXPECT().Values(gomock.Any(), "Lanche").Return([][]string{
		{"IQ3000123", "2026-08-26", "Maria da Silva", "INF-2A", "Vitamina", "15:02:00"},
	}, nil)

	// no Append expected
	require.NoError(t, w.Work(context.Background(), makeServedJob(2, 3)))
}

func TestServedSyncWorker_Work_NoServedMeals(t *testing.T) {
	ctrl := gomock.NewController(t)

	reg := mockregistry.NewMockRegistry(ctrl)
	client := mocksheets.NewMockClient(ctrl)
	w := worker.NewServedSyncWorker(reg, client)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: "2026-08-26", Time: "11:30"}
	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
	reg.EXPECT().ServedMeals(gomock.Any(), domain.SessionID(3)).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeServedJob(3, 3)))
}

func TestServedSyncWorker_Work_DeletedSessionCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	reg := mockregistry.NewMockRegistry(ctrl)
	client := mocksheets.NewMockClient(ctrl)
	w := worker.NewServedSyncWorker(reg, client)

	reg.EXPECT().SessionByID(gomock.Any(), domain.SessionID(404)).
		Return(nil, serrors.With(serrors.ErrNotFound, "session not found"))

	err := w.Work(context.Background(), makeServedJob(4, 404))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
