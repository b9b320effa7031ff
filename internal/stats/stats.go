// Package stats computes attendance reports over recorded consumptions and
// reservations.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"registro/pkg/domain"
	"registro/pkg/storage"
)

// Metrics summarizes serving activity for one scope (all meals, lunch only or
// snack only).
type Metrics struct {
	// TotalConsumptions is the number of served meals in scope.
	TotalConsumptions int64 `json:"totalConsumptions"`
	// WithReservePct is the percentage of servings backed by a reservation.
	WithReservePct float64 `json:"withReservePct"`
	// WalkInPct is the percentage of servings without a reservation.
	WalkInPct float64 `json:"walkInPct"`

	// TotalReserves is the number of reservations in scope.
	TotalReserves int64 `json:"totalReserves"`
	// ActiveReserves is the number of non-canceled reservations in scope.
	ActiveReserves int64 `json:"activeReserves"`
	// CanceledReserves is the number of canceled reservations in scope.
	CanceledReserves int64 `json:"canceledReserves"`
	// CancellationRatePct is canceled over total reservations.
	CancellationRatePct float64 `json:"cancellationRatePct"`
	// AttendanceRatePct is reservation-backed servings over active
	// reservations.
	AttendanceRatePct float64 `json:"attendanceRatePct"`
	// NoShowRatePct is the complement of the attendance rate.
	NoShowRatePct float64 `json:"noShowRatePct"`

	// UniqueDiners is the number of distinct students served.
	UniqueDiners int64 `json:"uniqueDiners"`
	// AvgConsumptionsPerDiner is served meals over distinct students.
	AvgConsumptionsPerDiner float64 `json:"avgConsumptionsPerDiner"`

	// ByGroup counts servings per class group.
	ByGroup map[string]int64 `json:"byGroup"`
	// ByWeekday counts servings per weekday name.
	ByWeekday map[string]int64 `json:"byWeekday"`
	// ByHour counts servings per serving hour (0-23).
	ByHour map[int]int64 `json:"byHour"`
}

// Report aggregates metrics for all serving activity and per meal kind.
type Report struct {
	Global Metrics `json:"global"`
	Lunch  Metrics `json:"lunch"`
	Snack  Metrics `json:"snack"`
}

// Service computes attendance reports from storage.
type Service struct {
	storage storage.Storage
}

// New creates a stats Service backed by the given storage.
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Report computes the full attendance report.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	global, err := s.metrics(ctx, "")
	if err != nil {
		return nil, err
	}

	lunch, err := s.metrics(ctx, domain.MealLunch)
	if err != nil {
		return nil, err
	}

	snack, err := s.metrics(ctx, domain.MealSnack)
	if err != nil {
		return nil, err
	}

	return &Report{Global: *global, Lunch: *lunch, Snack: *snack}, nil
}

func (s *Service) metrics(ctx context.Context, meal domain.MealKind) (*Metrics, error) {
	facts, err := s.storage.ConsumptionFacts(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("could not fetch consumption facts: %w", err)
	}

	var snack *bool
	if meal != "" {
		isSnack := meal.Snack()
		snack = &isSnack
	}
	reserves, err := s.storage.ReserveCounts(ctx, snack)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reserve counts: %w", err)
	}

	return Compute(facts, reserves), nil
}

// Compute derives metrics from flattened consumption rows and reservation
// totals.
func Compute(facts []storage.ConsumptionFact, reserves storage.ReserveCounts) *Metrics {
	metrics := &Metrics{
		TotalConsumptions: int64(len(facts)),
		TotalReserves:     reserves.Total,
		ActiveReserves:    reserves.Total - reserves.Canceled,
		CanceledReserves:  reserves.Canceled,
		ByGroup:           make(map[string]int64),
		ByWeekday:         make(map[string]int64),
		ByHour:            make(map[int]int64),
	}

	var withReserve int64
	diners := make(map[domain.StudentID]struct{})
	for _, fact := range facts {
		if !fact.WithoutReserve {
			withReserve++
		}
		diners[fact.StudentID] = struct{}{}

		for _, group := range strings.Split(fact.Groups, ",") {
			if group = strings.TrimSpace(group); group != "" {
				metrics.ByGroup[group]++
			}
		}

		if day, err := time.Parse(domain.DateLayout, fact.Date); err == nil {
			metrics.ByWeekday[day.Weekday().String()]++
		}
		if clock, err := time.Parse(domain.TimeLayout, fact.ServedAt); err == nil {
			metrics.ByHour[clock.Hour()]++
		}
	}

	metrics.UniqueDiners = int64(len(diners))
	metrics.WithReservePct = percentage(withReserve, metrics.TotalConsumptions)
	metrics.WalkInPct = percentage(metrics.TotalConsumptions-withReserve, metrics.TotalConsumptions)
	metrics.CancellationRatePct = percentage(reserves.Canceled, reserves.Total)
	metrics.AttendanceRatePct = percentage(withReserve, metrics.ActiveReserves)
	if metrics.ActiveReserves > 0 {
		metrics.NoShowRatePct = 100 - metrics.AttendanceRatePct
	}
	if metrics.UniqueDiners > 0 {
		metrics.AvgConsumptionsPerDiner = float64(metrics.TotalConsumptions) / float64(metrics.UniqueDiners)
	}

	return metrics
}

func percentage(part int64, total int64) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}
