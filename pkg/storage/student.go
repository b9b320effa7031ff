package storage

import (
	"context"
	"registro/pkg/domain"
)

// StudentRef is a lightweight projection of a student used to resolve badges
// to identifiers during bulk operations.
type StudentRef struct {
	// ID is the student's identifier.
	ID domain.StudentID
	// Badge is the student's registration code.
	Badge string
}

// StudentStorage defines persistence operations for students and their class
// groups. Implementations must treat badges as the natural key of students.
type StudentStorage interface {
	// UpsertStudents inserts the given students, updating the name of rows whose
	// badge already exists, and returns the stored rows as they exist in the
	// database (including generated fields). Group membership is not touched.
	UpsertStudents(ctx context.Context, students ...domain.Student) ([]domain.Student, error)
	// StudentByBadge fetches a student by badge with group names populated.
	// Returns nil when not found.
	StudentByBadge(ctx context.Context, badge string) (*domain.Student, error)
	// StudentRefs returns the id/badge pairs of all known students.
	StudentRefs(ctx context.Context) ([]StudentRef, error)
	// StudentsInGroups returns all students belonging to at least one of the
	// given group names, with their full group name lists populated.
	StudentsInGroups(ctx context.Context, groupNames []string) ([]domain.Student, error)

	// EnsureGroups inserts any missing groups with the given names and returns
	// all matching group rows.
	EnsureGroups(ctx context.Context, names ...string) ([]domain.Group, error)
	// AddGroupMembers associates students with groups, ignoring pairs that
	// already exist.
	AddGroupMembers(ctx context.Context, members ...domain.GroupMember) error
}
