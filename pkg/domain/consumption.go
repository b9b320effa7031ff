package domain

import "time"

// ConsumptionID uniquely identifies a recorded meal consumption.
type ConsumptionID int64

// Consumption records that a student was served during a session. A student
// can be served at most once per session.
type Consumption struct {
	// ID is the unique identifier of the consumption record.
	ID ConsumptionID `json:"id"`
	// StudentID is the identifier of the served student.
	StudentID StudentID `json:"studentId"`
	// SessionID is the identifier of the session the meal was served in.
	SessionID SessionID `json:"sessionId"`

	// ServedAt is the clock time the meal was handed out, formatted as TimeLayout.
	ServedAt string `json:"servedAt"`
	// WithoutReserve marks students served without holding a reservation.
	WithoutReserve bool `json:"withoutReserve"`
	// ReserveID links the reservation redeemed by this consumption, when any.
	ReserveID *ReserveID `json:"reserveId,omitempty"`

	// CreatedAt is the time when the consumption record was created.
	CreatedAt time.Time `json:"createdAt"`
}

// ServedMeal is a read model describing one served meal of a session joined
// with student data, as shown on serving reports and spreadsheet uploads.
type ServedMeal struct {
	// StudentID identifies the served student.
	StudentID StudentID `json:"studentId"`
	// Badge is the student's registration code.
	Badge string `json:"badge"`
	// Name is the student's display name.
	Name string `json:"name"`
	// Groups is the comma-joined sorted list of the student's class groups.
	Groups string `json:"groups"`
	// Dish is the reserved dish, or NoReserveDish for walk-in servings.
	Dish string `json:"dish"`
	// ServedAt is the clock time the meal was handed out.
	ServedAt string `json:"servedAt"`
}

// EligibleStudent is a read model describing a student who may currently be
// served in a session.
type EligibleStudent struct {
	// StudentID identifies the student.
	StudentID StudentID `json:"studentId"`
	// Badge is the student's registration code.
	Badge string `json:"badge"`
	// Name is the student's display name.
	Name string `json:"name"`
	// Groups is the comma-joined sorted list of the student's class groups.
	Groups string `json:"groups"`
	// Dish is the reserved dish, or NoReserveDish when the student qualifies
	// as a walk-in.
	Dish string `json:"dish"`
	// ReserveID links the active reservation backing the eligibility, if any.
	ReserveID *ReserveID `json:"reserveId,omitempty"`
	// Code is the obfuscated badge lookup code used at the serving desk.
	Code string `json:"code"`
}
