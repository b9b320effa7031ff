package stats_test

import (
	"testing"

	"registro/internal/stats"
	"registro/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	// 2026-08-26 is a Wednesday, 2026-08-27 a Thursday
	facts := []storage.ConsumptionFact{
		{Date: "2026-08-26", ServedAt: "11:42:00", Groups: "INF-2A", StudentID: 1},
		{Date: "2026-08-26", ServedAt: "11:55:30", Groups: "INF-2A, QUI-3C", WithoutReserve: true, StudentID: 2},
		{Date: "2026-08-27", ServedAt: "12:05:00", Groups: "MEC-1B", StudentID: 1},
		{Date: "2026-08-27", ServedAt: "12:10:00", Groups: "", StudentID: 3},
	}
	reserves := storage.ReserveCounts{Total: 5, Canceled: 1}

	metrics := stats.Compute(facts, reserves)

	require.Equal(t, int64(4), metrics.TotalConsumptions)
	require.InDelta(t, 75.0, metrics.WithReservePct, 0.001)
	require.InDelta(t, 25.0, metrics.WalkInPct, 0.001)

	require.Equal(t, int64(5), metrics.TotalReserves)
	require.Equal(t, int64(4), metrics.ActiveReserves)
	require.Equal(t, int64(1), metrics.CanceledReserves)
	require.InDelta(t, 20.0, metrics.CancellationRatePct, 0.001)
	require.InDelta(t, 75.0, metrics.AttendanceRatePct, 0.001)
	require.InDelta(t, 25.0, metrics.NoShowRatePct, 0.001)

	require.Equal(t, int64(3), metrics.UniqueDiners)
	require.InDelta(t, 4.0/3.0, metrics.AvgConsumptionsPerDiner, 0.001)

	require.Equal(t, map[string]int64{
		"INF-2A": 2,
		"QUI-3C": 1,
		"MEC-1B": 1,
	}, metrics.ByGroup)
	require.Equal(t, map[string]int64{
		"Wednesday": 2,
		"Thursday":  2,
	}, metrics.ByWeekday)
	require.Equal(t, map[int]int64{11: 2, 12: 2}, metrics.ByHour)
}

func TestCompute_Empty(t *testing.T) {
	metrics := stats.Compute(nil, storage.ReserveCounts{})

	require.Zero(t, metrics.TotalConsumptions)
	require.Zero(t, metrics.WithReservePct)
	require.Zero(t, metrics.CancellationRatePct)
	require.Zero(t, metrics.AttendanceRatePct)
	require.Zero(t, metrics.NoShowRatePct)
	require.Zero(t, metrics.AvgConsumptionsPerDiner)
	require.Empty(t, metrics.ByGroup)
	require.Empty(t, metrics.ByWeekday)
	require.Empty(t, metrics.ByHour)
}

func TestCompute_MalformedTimestamps(t *testing.T) {
	facts := []storage.ConsumptionFact{
		{Date: "26/08/2026", ServedAt: "meio-dia", Groups: "INF-2A", StudentID: 1},
	}

	metrics := stats.Compute(facts, storage.ReserveCounts{})

	require.Equal(t, int64(1), metrics.TotalConsumptions)
	require.Empty(t, metrics.ByWeekday)
	require.Empty(t, metrics.ByHour)
	require.Equal(t, map[string]int64{"INF-2A": 1}, metrics.ByGroup)
}
