package storage

import (
	"context"
	"registro/pkg/domain"
)

// ReserveCounts aggregates reservation totals used by attendance reports.
type ReserveCounts struct {
	// Total is the number of reservations in scope.
	Total int64
	// Canceled is the number of canceled reservations in scope.
	Canceled int64
}

// ReserveStorage defines persistence operations for meal reservations.
type ReserveStorage interface {
	// StoreReserves inserts the given reservations and returns the number of
	// rows actually written. A student can hold at most one reservation per
	// date and meal kind; conflicting rows are silently skipped.
	StoreReserves(ctx context.Context, reserves ...domain.Reserve) (int64, error)
	// ActiveReserves returns non-canceled reservations for the given date and
	// meal kind (snack or lunch).
	ActiveReserves(ctx context.Context, date string, snack bool) ([]domain.Reserve, error)
	// ReserveCount returns the number of non-canceled reservations for the
	// given date and meal kind.
	ReserveCount(ctx context.Context, date string, snack bool) (int64, error)
	// ReserveCounts aggregates reservation totals. When snack is non-nil, only
	// reservations of the matching meal kind are counted.
	ReserveCounts(ctx context.Context, snack *bool) (ReserveCounts, error)
}
