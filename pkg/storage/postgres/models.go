package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"registro/pkg/domain"
	"time"
)

type PgStudent struct {
	ID    int64  `db:"id" goqu:"skipinsert"`
	Badge string `db:"badge"`
	Name  string `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgStudent) ToDomain() *domain.Student {
	return &domain.Student{
		ID:        domain.StudentID(p.ID),
		Badge:     p.Badge,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgStudent) FromDomain(student domain.Student) {
	*p = PgStudent{
		ID:        int64(student.ID),
		Badge:     student.Badge,
		Name:      student.Name,
		CreatedAt: student.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  student.UpdatedAt,
			Valid: !student.UpdatedAt.IsZero(),
		},
	}
}

type PgGroup struct {
	ID   int64  `db:"id" goqu:"skipinsert"`
	Name string `db:"name"`
}

func (p *PgGroup) ToDomain() *domain.Group {
	return &domain.Group{
		ID:   domain.GroupID(p.ID),
		Name: p.Name,
	}
}

type PgReserve struct {
	ID        int64 `db:"id" goqu:"skipinsert"`
	StudentID int64 `db:"student_id"`

	Dish     string    `db:"dish"`
	Date     time.Time `db:"date"`
	Snack    bool      `db:"snack"`
	Canceled bool      `db:"canceled"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReserve) ToDomain() *domain.Reserve {
	return &domain.Reserve{
		ID:        domain.ReserveID(p.ID),
		StudentID: domain.StudentID(p.StudentID),
		Dish:      p.Dish,
		Date:      p.Date.Format(domain.DateLayout),
		Snack:     p.Snack,
		Canceled:  p.Canceled,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgReserve) FromDomain(reserve domain.Reserve) error {
	date, err := time.Parse(domain.DateLayout, reserve.Date)
	if err != nil {
		return fmt.Errorf("could not parse reserve date: %w", err)
	}

	*p = PgReserve{
		ID:        int64(reserve.ID),
		StudentID: int64(reserve.StudentID),
		Dish:      reserve.Dish,
		Date:      date,
		Snack:     reserve.Snack,
		Canceled:  reserve.Canceled,
		CreatedAt: reserve.CreatedAt,
	}

	return nil
}

type PgSession struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Meal   string          `db:"meal"`
	Period string          `db:"period"`
	Date   time.Time       `db:"date"`
	Time   string          `db:"time"`
	Groups json.RawMessage `db:"groups"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() (*domain.Session, error) {
	var groups []string
	if len(p.Groups) > 0 {
		if err := json.Unmarshal(p.Groups, &groups); err != nil {
			return nil, fmt.Errorf("could not unmarshal session groups: %w", err)
		}
	}

	return &domain.Session{
		ID:        domain.SessionID(p.ID),
		Meal:      domain.MealKind(p.Meal),
		Period:    domain.Period(p.Period),
		Date:      p.Date.Format(domain.DateLayout),
		Time:      p.Time,
		Groups:    groups,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgSession) FromDomain(session domain.Session) error {
	date, err := time.Parse(domain.DateLayout, session.Date)
	if err != nil {
		return fmt.Errorf("could not parse session date: %w", err)
	}

	groups := session.Groups
	if groups == nil {
		groups = []string{}
	}
	rawGroups, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("could not marshal session groups: %w", err)
	}

	*p = PgSession{
		ID:        int64(session.ID),
		Meal:      string(session.Meal),
		Period:    string(session.Period),
		Date:      date,
		Time:      session.Time,
		Groups:    rawGroups,
		CreatedAt: session.CreatedAt,
	}

	return nil
}

type PgConsumption struct {
	ID        int64 `db:"id" goqu:"skipinsert"`
	StudentID int64 `db:"student_id"`
	SessionID int64 `db:"session_id"`

	ServedAt       string        `db:"served_at"`
	WithoutReserve bool          `db:"without_reserve"`
	ReserveID      sql.NullInt64 `db:"reserve_id"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgConsumption) ToDomain() *domain.Consumption {
	var reserveID *domain.ReserveID
	if p.ReserveID.Valid {
		id := domain.ReserveID(p.ReserveID.Int64)
		reserveID = &id
	}

	return &domain.Consumption{
		ID:             domain.ConsumptionID(p.ID),
		StudentID:      domain.StudentID(p.StudentID),
		SessionID:      domain.SessionID(p.SessionID),
		ServedAt:       p.ServedAt,
		WithoutReserve: p.WithoutReserve,
		ReserveID:      reserveID,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgConsumption) FromDomain(consumption domain.Consumption) {
	var reserveID sql.NullInt64
	if consumption.ReserveID != nil {
		reserveID = sql.NullInt64{Int64: int64(*consumption.ReserveID), Valid: true}
	}

	*p = PgConsumption{
		ID:             int64(consumption.ID),
		StudentID:      int64(consumption.StudentID),
		SessionID:      int64(consumption.SessionID),
		ServedAt:       consumption.ServedAt,
		WithoutReserve: consumption.WithoutReserve,
		ReserveID:      reserveID,
		CreatedAt:      consumption.CreatedAt,
	}
}

func domainReservesToPg(reserves []domain.Reserve) ([]PgReserve, error) {
	out := make([]PgReserve, len(reserves))
	for i := range out {
		if err := out[i].FromDomain(reserves[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgReservesToDomain(reserves []PgReserve) []domain.Reserve {
	out := make([]domain.Reserve, 0, len(reserves))
	for i := range reserves {
		out = append(out, *reserves[i].ToDomain())
	}

	return out
}
