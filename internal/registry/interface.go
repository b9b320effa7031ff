package registry

import (
	"context"
	"registro/pkg/domain"
	"registro/pkg/storage"
)

// NewSession carries the parameters required to start a serving session.
type NewSession struct {
	// Meal is the kind of meal being served.
	Meal domain.MealKind
	// Period is the school period the session covers.
	Period domain.Period
	// Date is the serving date formatted as domain.DateLayout.
	Date string
	// Time is the serving start clock time ("HH:MM").
	Time string
	// Groups lists the class groups admitted to the session.
	Groups []string
	// SnackDish overrides the dish recorded for auto-provisioned snack
	// reservations. When empty the configured default is used.
	SnackDish string
}

// SnapshotEntry is one served record of an external serving snapshot applied
// by SyncServedState.
type SnapshotEntry struct {
	// Badge is the registration code of the served student.
	Badge string
	// ServedAt is the clock time the meal was handed out.
	ServedAt string
}

// SyncResult summarizes the changes applied by SyncServedState.
type SyncResult struct {
	// Deleted is the number of local consumptions absent from the snapshot.
	Deleted int64
	// Inserted is the number of snapshot entries missing locally.
	Inserted int64
	// Skipped is the number of snapshot entries referencing unknown badges.
	Skipped int
}

// Registry is the domain service coordinating serving sessions, reservations
// and consumptions.
//
//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	// StartSession validates and persists a new serving session, provisioning
	// snack reservations when needed, and records it as the active session.
	StartSession(ctx context.Context, params NewSession) (*domain.Session, error)
	// ActiveSession returns the most recently started session, or nil when no
	// session is active or the recorded session no longer exists.
	ActiveSession(ctx context.Context) (*domain.Session, error)
	// SessionByID fetches a session by its ID.
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	// Sessions lists sessions matching the filter, newest first.
	Sessions(ctx context.Context, filter storage.SessionFilter) ([]domain.Session, error)
	// SetSessionGroups replaces the admitted group list of a session.
	SetSessionGroups(ctx context.Context, id domain.SessionID, groups []string) (*domain.Session, error)

	// EligibleStudents returns the students who may currently be served in the
	// session: reservation holders of the session's groups plus members of
	// walk-in groups, excluding students already served.
	EligibleStudents(ctx context.Context, id domain.SessionID) ([]domain.EligibleStudent, error)
	// RegisterConsumption records that the student with the given badge was
	// served in the session, linking the redeemed reservation when one exists.
	RegisterConsumption(ctx context.Context, id domain.SessionID, badge string) (*domain.Consumption, error)
	// UndoConsumption removes a previously recorded consumption.
	UndoConsumption(ctx context.Context, id domain.SessionID, badge string) error
	// ServedMeals returns the serving report of a session, newest first.
	ServedMeals(ctx context.Context, id domain.SessionID) ([]domain.ServedMeal, error)
	// SyncServedState reconciles the stored consumptions of a session with an
	// external snapshot: consumptions absent from the snapshot are deleted and
	// snapshot entries missing locally are inserted.
	SyncServedState(ctx context.Context, id domain.SessionID, entries []SnapshotEntry) (SyncResult, error)

	// ReserveSnacksForAll creates one snack reservation per known student for
	// the given date, skipping students who already hold one.
	ReserveSnacksForAll(ctx context.Context, date string, dish string) (int64, error)

	// EnqueueServedSync schedules a background upload of the session's served
	// meals to the master spreadsheet. Returns false when an equivalent job is
	// already queued.
	EnqueueServedSync(ctx context.Context, id domain.SessionID) (bool, error)
	// EnqueueMasterSync schedules a background download of the master student
	// roster and reservation list. Returns false when already queued.
	EnqueueMasterSync(ctx context.Context) (bool, error)
}
