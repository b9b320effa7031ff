package postgres_test

import (
	"context"
	"testing"

	"registro/pkg/domain"
	"registro/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func seedStudents(t *testing.T, pg *postgres.PgSQL, students ...domain.Student) []domain.Student {
	t.Helper()
	stored, err := pg.UpsertStudents(context.Background(), students...)
	require.NoError(t, err)
	require.Len(t, stored, len(students))

	return stored
}

func TestPgSQL_Reserves_StoreAndQuery(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	students := seedStudents(t, pg,
		domain.Student{Badge: "IQ3000123", Name: "Maria Da Silva"},
		domain.Student{Badge: "IQ3000456", Name: "João Souza"},
	)

	inserted, err := pg.StoreReserves(ctx,
		domain.Reserve{StudentID: students[0].ID, Dish: "Feijoada", Date: "2026-08-26"},
		domain.Reserve{StudentID: students[1].ID, Dish: "Feijoada", Date: "2026-08-26", Canceled: true},
		domain.Reserve{StudentID: students[0].ID, Dish: "Lanche", Date: "2026-08-26", Snack: true},
	)
	require.NoError(t, err)
	require.EqualValues(t, 3, inserted)

	// a second reservation for the same student, date and kind is skipped
	inserted, err = pg.StoreReserves(ctx,
		domain.Reserve{StudentID: students[0].ID, Dish: "Outro Prato", Date: "2026-08-26"},
	)
	require.NoError(t, err)
	require.Zero(t, inserted)

	active, err := pg.ActiveReserves(ctx, "2026-08-26", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, students[0].ID, active[0].StudentID)
	require.Equal(t, "Feijoada", active[0].Dish)
	require.Equal(t, "2026-08-26", active[0].Date)

	count, err := pg.ReserveCount(ctx, "2026-08-26", true)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = pg.ReserveCount(ctx, "2026-08-27", false)
	require.NoError(t, err)
	require.Zero(t, count)

	counts, err := pg.ReserveCounts(ctx, nil)
	require.NoError(t, err)
	require.EqualValues(t, 3, counts.Total)
	require.EqualValues(t, 1, counts.Canceled)

	lunch := false
	counts, err = pg.ReserveCounts(ctx, &lunch)
	require.NoError(t, err)
	require.EqualValues(t, 2, counts.Total)
	require.EqualValues(t, 1, counts.Canceled)
}
