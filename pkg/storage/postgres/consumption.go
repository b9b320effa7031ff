package postgres

import (
	"context"
	"fmt"
	"registro/pkg/domain"
	"registro/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const consumptionsTable = "consumptions"

// StoreConsumptions inserts consumption rows, skipping students already served
// in the session. The returned count reflects rows actually written.
func (p *PgSQL) StoreConsumptions(ctx context.Context, consumptions ...domain.Consumption) (int64, error) {
	if len(consumptions) == 0 {
		return 0, nil
	}

	rows := make([]PgConsumption, len(consumptions))
	for i := range rows {
		rows[i].FromDomain(consumptions[i])
	}

	res, err := p.Builder.Insert(consumptionsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store consumptions into pg: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count inserted consumptions: %w", err)
	}

	return inserted, nil
}

func (p *PgSQL) DeleteConsumption(ctx context.Context,
	sessionID domain.SessionID,
	studentID domain.StudentID) (*domain.Consumption, error) {
	var row PgConsumption
	found, err := p.Builder.From(consumptionsTable).
		Where(
			goqu.I("session_id").Eq(int64(sessionID)),
			goqu.I("student_id").Eq(int64(studentID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch consumption from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	if _, err := p.DB.ExecContext(ctx,
		`DELETE FROM consumptions WHERE id = $1`, row.ID); err != nil {
		return nil, fmt.Errorf("could not delete consumption in pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PruneConsumptions(ctx context.Context,
	sessionID domain.SessionID,
	keep []domain.StudentID) (int64, error) {
	args := []any{int64(sessionID)}
	query := `DELETE FROM consumptions WHERE session_id = $1`
	if len(keep) > 0 {
		query += ` AND NOT (student_id = ANY($2))`
		ids := make([]int64, 0, len(keep))
		for _, id := range keep {
			ids = append(ids, int64(id))
		}
		args = append(args, ids)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("could not prune consumptions in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count pruned consumptions: %w", err)
	}

	return deleted, nil
}

func (p *PgSQL) ConsumptionsBySession(ctx context.Context,
	sessionID domain.SessionID) ([]domain.Consumption, error) {
	var rows []PgConsumption
	if err := p.Builder.From(consumptionsTable).
		Where(goqu.I("session_id").Eq(int64(sessionID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch consumptions from pg: %w", err)
	}

	out := make([]domain.Consumption, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// ServedMeals joins consumptions with student, group and reservation data to
// produce the serving report rows, newest first.
func (p *PgSQL) ServedMeals(ctx context.Context, sessionID domain.SessionID) ([]domain.ServedMeal, error) {
	type servedRow struct {
		StudentID int64  `db:"student_id"`
		Badge     string `db:"badge"`
		Name      string `db:"name"`
		Groups    string `db:"group_names"`
		Dish      string `db:"dish"`
		ServedAt  string `db:"served_at"`
	}

	var rows []servedRow
	if err := p.Builder.From(consumptionsTable).
		Join(goqu.T(studentsTable),
			goqu.On(goqu.I("students.id").Eq(goqu.I("consumptions.student_id")))).
		LeftJoin(goqu.T(reservesTable),
			goqu.On(goqu.I("reserves.id").Eq(goqu.I("consumptions.reserve_id")))).
		LeftJoin(goqu.T(studentGroupsTable),
			goqu.On(goqu.I("student_groups.student_id").Eq(goqu.I("students.id")))).
		LeftJoin(goqu.T(groupsTable),
			goqu.On(goqu.I("groups.id").Eq(goqu.I("student_groups.group_id")))).
		Where(goqu.I("consumptions.session_id").Eq(int64(sessionID))).
		GroupBy(goqu.I("consumptions.id"), goqu.I("students.id"), goqu.I("reserves.id")).
		Order(goqu.I("consumptions.id").Desc()).
		Select(
			goqu.I("consumptions.student_id").As("student_id"),
			goqu.I("students.badge").As("badge"),
			goqu.I("students.name").As("name"),
			goqu.L("COALESCE(string_agg(groups.name, ', ' ORDER BY groups.name), '')").As("group_names"),
			goqu.L("COALESCE(reserves.dish, ?)", domain.NoReserveDish).As("dish"),
			goqu.I("consumptions.served_at").As("served_at"),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch served meals from pg: %w", err)
	}

	out := make([]domain.ServedMeal, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ServedMeal{
			StudentID: domain.StudentID(r.StudentID),
			Badge:     r.Badge,
			Name:      r.Name,
			Groups:    r.Groups,
			Dish:      r.Dish,
			ServedAt:  r.ServedAt,
		})
	}

	return out, nil
}

func (p *PgSQL) ConsumptionFacts(ctx context.Context,
	meal domain.MealKind) ([]storage.ConsumptionFact, error) {
	w := []goqu.Expression{}
	if meal != "" {
		w = append(w, goqu.I("sessions.meal").Eq(string(meal)))
	}

	type factRow struct {
		Date           time.Time `db:"date"`
		ServedAt       string    `db:"served_at"`
		Groups         string    `db:"group_names"`
		WithoutReserve bool      `db:"without_reserve"`
		StudentID      int64     `db:"student_id"`
	}

	var rows []factRow
	if err := p.Builder.From(consumptionsTable).
		Join(goqu.T(sessionsTable),
			goqu.On(goqu.I("sessions.id").Eq(goqu.I("consumptions.session_id")))).
		LeftJoin(goqu.T(studentGroupsTable),
			goqu.On(goqu.I("student_groups.student_id").Eq(goqu.I("consumptions.student_id")))).
		LeftJoin(goqu.T(groupsTable),
			goqu.On(goqu.I("groups.id").Eq(goqu.I("student_groups.group_id")))).
		Where(w...).
		GroupBy(goqu.I("consumptions.id"), goqu.I("sessions.id")).
		Select(
			goqu.I("sessions.date").As("date"),
			goqu.I("consumptions.served_at").As("served_at"),
			goqu.L("COALESCE(string_agg(groups.name, ', ' ORDER BY groups.name), '')").As("group_names"),
			goqu.I("consumptions.without_reserve").As("without_reserve"),
			goqu.I("consumptions.student_id").As("student_id"),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch consumption facts from pg: %w", err)
	}

	out := make([]storage.ConsumptionFact, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.ConsumptionFact{
			Date:           r.Date.Format(domain.DateLayout),
			ServedAt:       r.ServedAt,
			Groups:         r.Groups,
			WithoutReserve: r.WithoutReserve,
			StudentID:      domain.StudentID(r.StudentID),
		})
	}

	return out, nil
}
