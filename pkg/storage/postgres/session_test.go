package postgres_test

import (
	"context"
	"testing"

	"registro/pkg/domain"
	"registro/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Sessions_StoreAndList(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first, err := pg.StoreSession(ctx, domain.Session{
		Meal:   domain.MealLunch,
		Period: domain.PeriodIntegral,
		Date:   "2026-08-26",
		Time:   "11:30",
		Groups: []string{"INF-2A", "#Visitantes"},
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotZero(t, first.ID)
	require.Equal(t, []string{"INF-2A", "#Visitantes"}, first.Groups)

	// same meal, period, date and time conflicts
	dup, err := pg.StoreSession(ctx, domain.Session{
		Meal:   domain.MealLunch,
		Period: domain.PeriodIntegral,
		Date:   "2026-08-26",
		Time:   "11:30",
	})
	require.NoError(t, err)
	require.Nil(t, dup)

	second, err := pg.StoreSession(ctx, domain.Session{
		Meal:   domain.MealSnack,
		Period: domain.PeriodMorning,
		Date:   "2026-08-26",
		Time:   "09:15",
	})
	require.NoError(t, err)
	require.NotNil(t, second)

	byID, err := pg.SessionByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, first.ID, byID.ID)
	require.Equal(t, domain.MealLunch, byID.Meal)

	missing, err := pg.SessionByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	all, err := pg.Sessions(ctx, storage.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	require.Equal(t, second.ID, all[0].ID)

	lunches, err := pg.Sessions(ctx, storage.SessionFilter{Meal: domain.MealLunch})
	require.NoError(t, err)
	require.Len(t, lunches, 1)
	require.Equal(t, first.ID, lunches[0].ID)

	none, err := pg.Sessions(ctx, storage.SessionFilter{Date: "2026-08-27"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPgSQL_UpdateSessionGroups(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	session, err := pg.StoreSession(ctx, domain.Session{
		Meal: domain.MealLunch,
		Date: "2026-08-26",
		Time: "11:30",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	updated, err := pg.UpdateSessionGroups(ctx, session.ID, []string{"MEC-1B"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, []string{"MEC-1B"}, updated.Groups)

	missing, err := pg.UpdateSessionGroups(ctx, 9999, []string{"MEC-1B"})
	require.NoError(t, err)
	require.Nil(t, missing)
}
