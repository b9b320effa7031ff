package domain

import "time"

// ReserveID uniquely identifies a meal reservation.
type ReserveID int64

// NoReserveDish is the dish placeholder shown for students served without a
// reservation.
const NoReserveDish = "Sem Reserva"

// Reserve represents a meal reservation made by a student for a given date.
// A student can hold at most one reservation per date and meal kind.
type Reserve struct {
	// ID is the unique identifier of the reservation.
	ID ReserveID `json:"id"`
	// StudentID is the identifier of the student holding the reservation.
	StudentID StudentID `json:"studentId"`

	// Dish is the dish description announced for the date.
	Dish string `json:"dish"`
	// Date is the reservation date formatted as DateLayout.
	Date string `json:"date"`
	// Snack distinguishes snack reservations from lunch reservations.
	Snack bool `json:"snack"`
	// Canceled marks reservations withdrawn before serving.
	Canceled bool `json:"canceled"`

	// CreatedAt is the time when the reservation record was created.
	CreatedAt time.Time `json:"createdAt"`
}
