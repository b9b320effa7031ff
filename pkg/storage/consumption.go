package storage

import (
	"context"
	"registro/pkg/domain"
)

// ConsumptionFact is a flattened consumption row joined with session data,
// used as the input of attendance reports.
type ConsumptionFact struct {
	// Date is the serving date of the session.
	Date string
	// ServedAt is the clock time the meal was handed out.
	ServedAt string
	// Groups is the comma-joined group list of the served student.
	Groups string
	// WithoutReserve marks servings that were not backed by a reservation.
	WithoutReserve bool
	// StudentID identifies the served student.
	StudentID domain.StudentID
}

// ConsumptionStorage defines persistence operations for served meals.
type ConsumptionStorage interface {
	// StoreConsumptions inserts the given consumptions and returns the number
	// of rows actually written. A student can be served at most once per
	// session; conflicting rows are silently skipped.
	StoreConsumptions(ctx context.Context, consumptions ...domain.Consumption) (int64, error)
	// DeleteConsumption removes the consumption of a student in a session and
	// returns the deleted row, or nil when the student was not served.
	DeleteConsumption(ctx context.Context,
		sessionID domain.SessionID,
		studentID domain.StudentID) (*domain.Consumption, error)
	// PruneConsumptions deletes all consumptions of the session whose student
	// is not in keep, returning the number of deleted rows. An empty keep list
	// deletes every consumption of the session.
	PruneConsumptions(ctx context.Context,
		sessionID domain.SessionID,
		keep []domain.StudentID) (int64, error)
	// ConsumptionsBySession returns all consumptions recorded for a session.
	ConsumptionsBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Consumption, error)
	// ServedMeals returns the served meals of a session joined with student
	// data, newest first.
	ServedMeals(ctx context.Context, sessionID domain.SessionID) ([]domain.ServedMeal, error)
	// ConsumptionFacts returns flattened consumption rows for reporting. When
	// meal is non-empty, only sessions of that meal kind are included.
	ConsumptionFacts(ctx context.Context, meal domain.MealKind) ([]ConsumptionFact, error)
}
