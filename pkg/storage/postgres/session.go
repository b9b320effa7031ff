package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"registro/pkg/domain"
	"registro/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const sessionsTable = "sessions"

// StoreSession inserts a session row. Sessions are unique per meal, period,
// date and time; on conflict nil is returned without an error so callers can
// map duplicates to their own semantics.
func (p *PgSQL) StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error) {
	var row PgSession
	if err := row.FromDomain(session); err != nil {
		return nil, err
	}

	var result PgSession
	found, err := p.Builder.Insert(sessionsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store session into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain()
}

func (p *PgSQL) SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	var row PgSession
	found, err := p.Builder.From(sessionsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) Sessions(ctx context.Context, filter storage.SessionFilter) ([]domain.Session, error) {
	var w []goqu.Expression
	if filter.Date != "" {
		day, err := time.Parse(domain.DateLayout, filter.Date)
		if err != nil {
			return nil, fmt.Errorf("could not parse session date filter: %w", err)
		}
		w = append(w, goqu.I("date").Eq(day))
	}
	if filter.Meal != "" {
		w = append(w, goqu.I("meal").Eq(string(filter.Meal)))
	}

	var rows []PgSession
	if err := p.Builder.From(sessionsTable).
		Where(w...).
		Order(goqu.I("date").Desc(), goqu.I("time").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch sessions from pg: %w", err)
	}

	out := make([]domain.Session, 0, len(rows))
	for i := range rows {
		s, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, nil
}

func (p *PgSQL) UpdateSessionGroups(ctx context.Context,
	id domain.SessionID,
	groups []string) (*domain.Session, error) {
	if groups == nil {
		groups = []string{}
	}
	rawGroups, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("could not marshal session groups: %w", err)
	}

	var row PgSession
	found, err := p.Builder.Update(sessionsTable).
		Set(goqu.Record{"groups": rawGroups}).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update session groups in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
