package postgres

import (
	"context"
	"fmt"
	"registro/pkg/domain"
	"registro/pkg/storage"
	"sort"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	studentsTable      = "students"
	groupsTable        = "groups"
	studentGroupsTable = "student_groups"
)

func (p *PgSQL) UpsertStudents(ctx context.Context, students ...domain.Student) ([]domain.Student, error) {
	if len(students) == 0 {
		return nil, nil
	}

	rows := make([]PgStudent, len(students))
	for i := range rows {
		rows[i].FromDomain(students[i])
	}

	var result []PgStudent
	if err := p.Builder.Insert(studentsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("badge", goqu.Record{
			"name":       goqu.I("excluded.name"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgStudent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert students into pg: %w", err)
	}

	out := make([]domain.Student, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StudentByBadge(ctx context.Context, badge string) (*domain.Student, error) {
	var row PgStudent
	found, err := p.Builder.From(studentsTable).
		Where(goqu.I("badge").Eq(badge)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch student by badge: %w", err)
	}
	if !found {
		return nil, nil
	}

	student := row.ToDomain()

	var groups []string
	if err := p.Builder.From(studentGroupsTable).
		Join(goqu.T(groupsTable), goqu.On(goqu.I("groups.id").Eq(goqu.I("student_groups.group_id")))).
		Where(goqu.I("student_groups.student_id").Eq(row.ID)).
		Order(goqu.I("groups.name").Asc()).
		Select(goqu.I("groups.name")).
		Executor().ScanValsContext(ctx, &groups); err != nil {
		return nil, fmt.Errorf("could not fetch student groups: %w", err)
	}
	student.Groups = groups

	return student, nil
}

func (p *PgSQL) StudentRefs(ctx context.Context) ([]storage.StudentRef, error) {
	type refRow struct {
		ID    int64  `db:"id"`
		Badge string `db:"badge"`
	}

	var rows []refRow
	if err := p.Builder.From(studentsTable).
		Select(goqu.I("id"), goqu.I("badge")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch student refs: %w", err)
	}

	out := make([]storage.StudentRef, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.StudentRef{
			ID:    domain.StudentID(r.ID),
			Badge: r.Badge,
		})
	}

	return out, nil
}

// StudentsInGroups resolves membership in two steps: first the set of student
// IDs belonging to any of the given groups, then all memberships of those
// students so the returned group lists are complete.
func (p *PgSQL) StudentsInGroups(ctx context.Context, groupNames []string) ([]domain.Student, error) {
	if len(groupNames) == 0 {
		return nil, nil
	}

	members := p.Builder.From(studentGroupsTable).
		Join(goqu.T(groupsTable), goqu.On(goqu.I("groups.id").Eq(goqu.I("student_groups.group_id")))).
		Where(goqu.I("groups.name").In(groupNames)).
		Select(goqu.I("student_groups.student_id"))

	type membershipRow struct {
		ID        int64  `db:"id"`
		Badge     string `db:"badge"`
		Name      string `db:"name"`
		GroupName string `db:"group_name"`
	}

	var rows []membershipRow
	if err := p.Builder.From(studentsTable).
		Join(goqu.T(studentGroupsTable), goqu.On(goqu.I("student_groups.student_id").Eq(goqu.I("students.id")))).
		Join(goqu.T(groupsTable), goqu.On(goqu.I("groups.id").Eq(goqu.I("student_groups.group_id")))).
		Where(goqu.I("students.id").In(members)).
		Select(
			goqu.I("students.id").As("id"),
			goqu.I("students.badge").As("badge"),
			goqu.I("students.name").As("name"),
			goqu.I("groups.name").As("group_name"),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch students in groups: %w", err)
	}

	byID := make(map[int64]*domain.Student)
	order := make([]int64, 0, len(rows))
	for _, r := range rows {
		s, ok := byID[r.ID]
		if !ok {
			s = &domain.Student{
				ID:    domain.StudentID(r.ID),
				Badge: r.Badge,
				Name:  r.Name,
			}
			byID[r.ID] = s
			order = append(order, r.ID)
		}
		s.Groups = append(s.Groups, r.GroupName)
	}

	out := make([]domain.Student, 0, len(order))
	for _, id := range order {
		s := byID[id]
		sort.Strings(s.Groups)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})

	return out, nil
}

func (p *PgSQL) EnsureGroups(ctx context.Context, names ...string) ([]domain.Group, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]PgGroup, 0, len(names))
	for _, name := range names {
		rows = append(rows, PgGroup{Name: name})
	}

	if _, err := p.Builder.Insert(groupsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not insert groups into pg: %w", err)
	}

	var result []PgGroup
	if err := p.Builder.From(groupsTable).
		Where(goqu.I("name").In(names)).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not fetch groups from pg: %w", err)
	}

	out := make([]domain.Group, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AddGroupMembers(ctx context.Context, members ...domain.GroupMember) error {
	if len(members) == 0 {
		return nil
	}

	type memberRow struct {
		StudentID int64 `db:"student_id"`
		GroupID   int64 `db:"group_id"`
	}

	rows := make([]memberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, memberRow{
			StudentID: int64(m.StudentID),
			GroupID:   int64(m.GroupID),
		})
	}

	if _, err := p.Builder.Insert(studentGroupsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert group members into pg: %w", err)
	}

	return nil
}
