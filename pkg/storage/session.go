package storage

import (
	"context"
	"registro/pkg/domain"
)

// SessionFilter narrows the set of sessions returned by Sessions. Zero-valued
// fields are ignored.
type SessionFilter struct {
	// Date filters sessions by serving date.
	Date string
	// Meal filters sessions by meal kind.
	Meal domain.MealKind
}

// SessionStorage defines persistence operations for serving sessions.
type SessionStorage interface {
	// StoreSession inserts a session and returns the stored row. A session is
	// unique per meal, period, date and time; on conflict nil is returned
	// without an error.
	StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error)
	// SessionByID fetches a session by its ID. Returns nil when not found.
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	// Sessions lists sessions matching the filter, newest first.
	Sessions(ctx context.Context, filter SessionFilter) ([]domain.Session, error)
	// UpdateSessionGroups replaces the admitted group list of a session and
	// returns the updated row, or nil when the session does not exist.
	UpdateSessionGroups(ctx context.Context, id domain.SessionID, groups []string) (*domain.Session, error)
}
