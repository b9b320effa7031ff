package domain

import "time"

// SessionID uniquely identifies a serving session.
type SessionID int64

// MealKind represents the kind of meal served in a session.
type MealKind string

const (
	// MealLunch is a lunch serving session. Lunch requires reservations to
	// exist before a session can start.
	MealLunch MealKind = "Almoço"
	// MealSnack is a snack serving session. Snacks may auto-provision
	// reservations for all students when none exist for the date.
	MealSnack MealKind = "Lanche"
)

// Valid reports whether the meal kind is one of the known kinds.
func (m MealKind) Valid() bool {
	return m == MealLunch || m == MealSnack
}

// Snack reports whether the kind maps to snack reservations.
func (m MealKind) Snack() bool { return m == MealSnack }

// Period represents the school period a session is served for.
type Period string

const (
	PeriodIntegral  Period = "Integral"
	PeriodMorning   Period = "Matutino"
	PeriodAfternoon Period = "Vespertino"
	PeriodEvening   Period = "Noturno"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the format of serving clock times recorded for consumptions.
const TimeLayout = "15:04:05"

// Session represents a single meal serving session on a given date.
type Session struct {
	// ID is the unique identifier of the session.
	ID SessionID `json:"id"`
	// Meal is the kind of meal served.
	Meal MealKind `json:"meal"`
	// Period is the school period the session covers.
	Period Period `json:"period"`
	// Date is the serving date formatted as DateLayout.
	Date string `json:"date"`
	// Time is the serving start clock time ("HH:MM").
	Time string `json:"time"`
	// Groups holds the class group names admitted to this session.
	Groups []string `json:"groups"`

	// CreatedAt is the time when the session record was created.
	CreatedAt time.Time `json:"createdAt"`
}
