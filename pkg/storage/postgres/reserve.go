package postgres

import (
	"context"
	"fmt"
	"registro/pkg/domain"
	"registro/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const reservesTable = "reserves"

// StoreReserves inserts reservations, skipping rows that collide with the
// unique (student, date, kind) constraint. The returned count reflects rows
// actually written.
func (p *PgSQL) StoreReserves(ctx context.Context, reserves ...domain.Reserve) (int64, error) {
	if len(reserves) == 0 {
		return 0, nil
	}

	rows, err := domainReservesToPg(reserves)
	if err != nil {
		return 0, err
	}

	res, err := p.Builder.Insert(reservesTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store reserves into pg: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count inserted reserves: %w", err)
	}

	return inserted, nil
}

func (p *PgSQL) ActiveReserves(ctx context.Context, date string, snack bool) ([]domain.Reserve, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("could not parse reserve date: %w", err)
	}

	var rows []PgReserve
	if err := p.Builder.From(reservesTable).
		Where(
			goqu.I("date").Eq(day),
			goqu.I("snack").Eq(snack),
			goqu.I("canceled").IsFalse(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active reserves from pg: %w", err)
	}

	return pgReservesToDomain(rows), nil
}

func (p *PgSQL) ReserveCount(ctx context.Context, date string, snack bool) (int64, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("could not parse reserve date: %w", err)
	}

	count, err := p.Builder.From(reservesTable).
		Where(
			goqu.I("date").Eq(day),
			goqu.I("snack").Eq(snack),
			goqu.I("canceled").IsFalse(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count reserves in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) ReserveCounts(ctx context.Context, snack *bool) (storage.ReserveCounts, error) {
	var w []goqu.Expression
	if snack != nil {
		w = append(w, goqu.I("snack").Eq(*snack))
	}

	type countRow struct {
		Total    int64 `db:"total"`
		Canceled int64 `db:"canceled"`
	}

	var row countRow
	if _, err := p.Builder.From(reservesTable).
		Where(w...).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("COUNT(*) FILTER (WHERE canceled)").As("canceled"),
		).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return storage.ReserveCounts{}, fmt.Errorf("could not aggregate reserve counts in pg: %w", err)
	}

	return storage.ReserveCounts{
		Total:    row.Total,
		Canceled: row.Canceled,
	}, nil
}
