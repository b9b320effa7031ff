package registry_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"registro/internal/registry"
	"registro/pkg/domain"
	"registro/pkg/serrors"
	"registro/pkg/storage"

	mockstorage "registro/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDate = "2026-08-26"

func newTestRegistry(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, registry.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	reg := registry.New(st, registry.Options{
		StateFile:        filepath.Join(t.TempDir(), "session.json"),
		DefaultSnackDish: "Lanche da Tarde",
		SyncMaxAttempts:  3,
		SyncUniquePeriod: time.Minute,
	})

	return ctrl, st, reg
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestRegistry_StartSession_LunchWithoutReserves(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReserveCount(gomock.Any(), testDate, false).Return(int64(0), nil)
	})

	_, err := reg.StartSession(context.Background(), registry.NewSession{
		Meal:   domain.MealLunch,
		Period: domain.PeriodIntegral,
		Date:   testDate,
		Time:   "11:30",
		Groups: []string{"INF-2A"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRegistry_StartSession_SnackProvisionsReserves(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	stored := &domain.Session{
		ID:     7,
		Meal:   domain.MealSnack,
		Period: domain.PeriodAfternoon,
		Date:   testDate,
		Time:   "15:00",
		Groups: []string{"INF-2A"},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReserveCount(gomock.Any(), testDate, true).Return(int64(0), nil)
		tx.EXPECT().StudentRefs(gomock.Any()).Return([]storage.StudentRef{
			{ID: 1, Badge: "IQ3000123"},
			{ID: 2, Badge: "IQ3000456"},
		}, nil)
		tx.EXPECT().StoreReserves(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reserves ...domain.Reserve) (int64, error) {
				require.Len(t, reserves, 2)
				for _, reserve := range reserves {
					require.True(t, reserve.Snack)
					require.Equal(t, testDate, reserve.Date)
					require.Equal(t, "Lanche da Tarde", reserve.Dish)
				}

				return int64(len(reserves)), nil
			},
		)
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).Return(stored, nil)
	})

	session, err := reg.StartSession(context.Background(), registry.NewSession{
		Meal:   domain.MealSnack,
		Period: domain.PeriodAfternoon,
		Date:   testDate,
		Time:   "15:00",
		Groups: []string{"INF-2A"},
	})
	require.NoError(t, err)
	require.Equal(t, stored, session)

	// the new session became the active one
	st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(7)).Return(stored, nil)
	active, err := reg.ActiveSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, stored, active)
}

func TestRegistry_StartSession_Duplicate(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReserveCount(gomock.Any(), testDate, false).Return(int64(12), nil)
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	_, err := reg.StartSession(context.Background(), registry.NewSession{
		Meal: domain.MealLunch,
		Date: testDate,
		Time: "11:30",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRegistry_StartSession_InvalidParams(t *testing.T) {
	_, _, reg := newTestRegistry(t)

	_, err := reg.StartSession(context.Background(), registry.NewSession{
		Meal: "Jantar",
		Date: testDate,
		Time: "11:30",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = reg.StartSession(context.Background(), registry.NewSession{
		Meal: domain.MealLunch,
		Date: "26/08/2026",
		Time: "11:30",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = reg.StartSession(context.Background(), registry.NewSession{
		Meal: domain.MealLunch,
		Date: testDate,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRegistry_ActiveSession_NoState(t *testing.T) {
	_, _, reg := newTestRegistry(t)

	session, err := reg.ActiveSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestRegistry_ActiveSession_StaleMarkerCleared(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	stored := &domain.Session{ID: 9, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReserveCount(gomock.Any(), testDate, false).Return(int64(1), nil)
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).Return(stored, nil)
	})
	_, err := reg.StartSession(context.Background(), registry.NewSession{
		Meal: domain.MealLunch,
		Date: testDate,
		Time: "11:30",
	})
	require.NoError(t, err)

	// the recorded session no longer exists, the marker must be cleared
	st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(9)).Return(nil, nil)
	session, err := reg.ActiveSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, session)

	// cleared markers are not resolved again
	session, err = reg.ActiveSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestRegistry_Sessions_FilterPassthrough(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	filter := storage.SessionFilter{Date: testDate, Meal: domain.MealLunch}
	st.EXPECT().Sessions(gomock.Any(), filter).Return([]domain.Session{{ID: 1}}, nil)

	sessions, err := reg.Sessions(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
}

func TestRegistry_Sessions_InvalidDateFilter(t *testing.T) {
	_, _, reg := newTestRegistry(t)

	_, err := reg.Sessions(context.Background(), storage.SessionFilter{Date: "26/08/2026"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRegistry_RegisterConsumption(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	student := &domain.Student{ID: 5, Badge: "IQ3000123", Name: "Maria da Silva"}
	reserveID := domain.ReserveID(11)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
		// the badge was normalized from the historic series before lookup
		tx.EXPECT().StudentByBadge(gomock.Any(), "IQ3000123").Return(student, nil)
		tx.EXPECT().ActiveReserves(gomock.Any(), testDate, false).Return([]domain.Reserve{
			{ID: reserveID, StudentID: 5, Dish: "Feijoada", Date: testDate},
		}, nil)
		tx.EXPECT().StoreConsumptions(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, records ...domain.Consumption) (int64, error) {
				require.Len(t, records, 1)
				require.False(t, records[0].WithoutReserve)
				require.NotNil(t, records[0].ReserveID)
				require.Equal(t, reserveID, *records[0].ReserveID)

				return 1, nil
			},
		)
		tx.EXPECT().ConsumptionsBySession(gomock.Any(), domain.SessionID(3)).Return(
			[]domain.Consumption{{ID: 21, StudentID: 5, SessionID: 3, ReserveID: &reserveID}}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	consumption, err := reg.RegisterConsumption(context.Background(), 3, " iq2000123 ")
	require.NoError(t, err)
	require.NotNil(t, consumption)
	require.Equal(t, domain.ConsumptionID(21), consumption.ID)
}

func TestRegistry_RegisterConsumption_UnknownBadge(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
		tx.EXPECT().StudentByBadge(gomock.Any(), "IQ3000999").Return(nil, nil)
	})

	_, err := reg.RegisterConsumption(context.Background(), 3, "IQ3000999")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_RegisterConsumption_AlreadyServed(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	student := &domain.Student{ID: 5, Badge: "IQ3000123", Name: "Maria da Silva"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
		tx.EXPECT().StudentByBadge(gomock.Any(), "IQ3000123").Return(student, nil)
		tx.EXPECT().ActiveReserves(gomock.Any(), testDate, false).Return(nil, nil)
		tx.EXPECT().StoreConsumptions(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	})

	_, err := reg.RegisterConsumption(context.Background(), 3, "IQ3000123")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRegistry_UndoConsumption_NotServed(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	student := &domain.Student{ID: 5, Badge: "IQ3000123"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
		tx.EXPECT().StudentByBadge(gomock.Any(), "IQ3000123").Return(student, nil)
		tx.EXPECT().DeleteConsumption(gomock.Any(), domain.SessionID(3), domain.StudentID(5)).
			Return(nil, nil)
	})

	err := reg.UndoConsumption(context.Background(), 3, "IQ3000123")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_EligibleStudents(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	session := &domain.Session{
		ID:     3,
		Meal:   domain.MealLunch,
		Date:   testDate,
		Time:   "11:30",
		Groups: []string{"INF-2A", "#MEC-1B"},
	}
	reserveID := domain.ReserveID(11)

	st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
	// The walk-in marker is stripped before the membership lookup so the
	// query matches the class name as stored.
	st.EXPECT().StudentsInGroups(gomock.Any(), []string{"INF-2A", "MEC-1B"}).Return([]domain.Student{
		{ID: 1, Badge: "IQ3000001", Name: "Ana", Groups: []string{"INF-2A"}},
		{ID: 2, Badge: "IQ3000002", Name: "Bruno", Groups: []string{"MEC-1B"}},
		{ID: 3, Badge: "IQ3000003", Name: "Caio", Groups: []string{"INF-2A"}},
		{ID: 4, Badge: "IQ3000004", Name: "Dora", Groups: []string{"INF-2A"}},
	}, nil)
	st.EXPECT().ActiveReserves(gomock.Any(), testDate, false).Return([]domain.Reserve{
		{ID: reserveID, StudentID: 1, Dish: "Feijoada", Date: testDate},
		{ID: 12, StudentID: 4, Dish: "Feijoada", Date: testDate},
	}, nil)
	st.EXPECT().ConsumptionsBySession(gomock.Any(), domain.SessionID(3)).Return(
		[]domain.Consumption{{ID: 50, StudentID: 4, SessionID: 3}}, nil)

	eligible, err := reg.EligibleStudents(context.Background(), 3)
	require.NoError(t, err)
	// Ana holds a reservation, Bruno belongs to the walk-in class, Caio holds
	// nothing and Dora was already served.
	require.Len(t, eligible, 2)

	require.Equal(t, domain.StudentID(1), eligible[0].StudentID)
	require.Equal(t, "Feijoada", eligible[0].Dish)
	require.NotNil(t, eligible[0].ReserveID)
	require.Equal(t, reserveID, *eligible[0].ReserveID)
	require.Equal(t, "b", eligible[0].Code)

	require.Equal(t, domain.StudentID(2), eligible[1].StudentID)
	require.Equal(t, domain.NoReserveDish, eligible[1].Dish)
	require.Nil(t, eligible[1].ReserveID)
}

func TestRegistry_EligibleStudents_WalkInClassWithoutReserves(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	session := &domain.Session{
		ID:     4,
		Meal:   domain.MealLunch,
		Date:   testDate,
		Time:   "11:30",
		Groups: []string{"#INF-2B"},
	}

	st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(4)).Return(session, nil)
	st.EXPECT().StudentsInGroups(gomock.Any(), []string{"INF-2B"}).Return([]domain.Student{
		{ID: 7, Badge: "IQ3000007", Name: "Elisa", Groups: []string{"INF-2B"}},
		{ID: 8, Badge: "IQ3000008", Name: "Fábio", Groups: []string{"INF-2B", "MEC-1B"}},
	}, nil)
	st.EXPECT().ActiveReserves(gomock.Any(), testDate, false).Return(nil, nil)
	st.EXPECT().ConsumptionsBySession(gomock.Any(), domain.SessionID(4)).Return(nil, nil)

	eligible, err := reg.EligibleStudents(context.Background(), 4)
	require.NoError(t, err)
	// Every member of the marked class is eligible without a reservation.
	require.Len(t, eligible, 2)
	for _, student := range eligible {
		require.Equal(t, domain.NoReserveDish, student.Dish)
		require.Nil(t, student.ReserveID)
	}
}

func TestRegistry_SyncServedState(t *testing.T) {
	ctrl, st, reg := newTestRegistry(t)

	session := &domain.Session{ID: 3, Meal: domain.MealLunch, Date: testDate, Time: "11:30"}
	reserveID := domain.ReserveID(11)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SessionByID(gomock.Any(), domain.SessionID(3)).Return(session, nil)
		tx.EXPECT().StudentRefs(gomock.Any()).Return([]storage.StudentRef{
			{ID: 1, Badge: "IQ3000001"},
		}, nil)
		tx.EXPECT().ActiveReserves(gomock.Any(), testDate, false).Return([]domain.Reserve{
			{ID: reserveID, StudentID: 1, Dish: "Feijoada", Date: testDate},
		}, nil)
		tx.EXPECT().PruneConsumptions(gomock.Any(), domain.SessionID(3), []domain.StudentID{1}).
			Return(int64(2), nil)
		tx.EXPECT().StoreConsumptions(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, records ...domain.Consumption) (int64, error) {
				require.Len(t, records, 1)
				require.Equal(t, domain.StudentID(1), records[0].StudentID)
				require.Equal(t, "11:42:00", records[0].ServedAt)
				require.False(t, records[0].WithoutReserve)

				return 1, nil
			},
		)
	})

	result, err := reg.SyncServedState(context.Background(), 3, []registry.SnapshotEntry{
		{Badge: "iq3000001", ServedAt: "11:42:00"},
		{Badge: "IQ3009999", ServedAt: "11:43:00"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Deleted)
	require.Equal(t, int64(1), result.Inserted)
	require.Equal(t, 1, result.Skipped)
}

func TestRegistry_ReserveSnacksForAll(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	st.EXPECT().StudentRefs(gomock.Any()).Return([]storage.StudentRef{
		{ID: 1, Badge: "IQ3000001"},
		{ID: 2, Badge: "IQ3000002"},
	}, nil)
	st.EXPECT().StoreReserves(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reserves ...domain.Reserve) (int64, error) {
			require.Len(t, reserves, 2)
			// the configured default dish is used when none is given
			require.Equal(t, "Lanche da Tarde", reserves[0].Dish)
			require.True(t, reserves[0].Snack)

			return 2, nil
		},
	)

	created, err := reg.ReserveSnacksForAll(context.Background(), testDate, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), created)
}

func TestRegistry_ReserveSnacksForAll_InvalidDate(t *testing.T) {
	_, _, reg := newTestRegistry(t)

	_, err := reg.ReserveSnacksForAll(context.Background(), "26/08/2026", "Vitamina")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRegistry_EnqueueServedSync_UnknownSession(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(404)).Return(nil, nil)

	_, err := reg.EnqueueServedSync(context.Background(), 404)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_EnqueueMasterSync(t *testing.T) {
	_, st, reg := newTestRegistry(t)

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)

	added, err := reg.EnqueueMasterSync(context.Background())
	require.NoError(t, err)
	require.True(t, added)
}
