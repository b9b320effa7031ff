package domain

import "time"

// StudentID uniquely identifies a student within the system.
// It wraps int64 to provide type safety at the domain layer.
type StudentID int64

// GroupID uniquely identifies a class group.
type GroupID int64

// Student represents an enrolled student who may reserve and consume meals.
type Student struct {
	// ID is the unique identifier of the student.
	ID StudentID `json:"id"`
	// Badge is the unique registration code printed on the student's badge
	// (e.g. "IQ3000123").
	Badge string `json:"badge"`
	// Name is the student's display name.
	Name string `json:"name"`
	// Groups holds the names of the class groups the student belongs to.
	Groups []string `json:"groups"`

	// CreatedAt is the time when the student record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the student record was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Group represents a class group students belong to.
type Group struct {
	ID   GroupID `json:"id"`
	Name string  `json:"name"`
}

// GroupMember associates a student with a class group.
type GroupMember struct {
	StudentID StudentID
	GroupID   GroupID
}

// WalkInPrefix marks a group name on a session's roster whose members are
// eligible to be served without holding a reservation. The prefix is a
// per-session flag, groups themselves are stored under their plain names.
const WalkInPrefix = "#"
