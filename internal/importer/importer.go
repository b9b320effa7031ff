// Package importer loads students, class groups and meal reservations from
// tabular data (CSV files or spreadsheet snapshots) into storage.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"registro/pkg/domain"
	"registro/pkg/logger"
	"registro/pkg/storage"

	"go.uber.org/zap"
)

// Summary reports the outcome of one import run.
type Summary struct {
	// Imported is the number of rows written to storage.
	Imported int64
	// Skipped is the number of rows dropped during parsing or badge
	// resolution.
	Skipped int
}

// Importer applies parsed sheet records to storage.
type Importer struct {
	storage storage.Storage
}

// New creates an Importer backed by the given storage.
func New(storage storage.Storage) *Importer {
	return &Importer{storage: storage}
}

// ReadCSV reads all rows of a CSV stream. Rows may have varying lengths.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}

	return rows, nil
}

// ImportStudents upserts students from sheet rows, creating missing groups
// and adding group memberships. The first row must be the header.
func (i *Importer) ImportStudents(ctx context.Context, rows [][]string) (Summary, error) {
	records, skipped := ParseStudents(rows)
	if skipped > 0 {
		logger.Warn(ctx, "skipped malformed student rows", zap.Int("count", skipped))
	}
	if len(records) == 0 {
		return Summary{Skipped: skipped}, nil
	}

	groupNames := make(map[string]struct{})
	students := make([]domain.Student, 0, len(records))
	for _, record := range records {
		students = append(students, domain.Student{
			Badge:  record.Badge,
			Name:   record.Name,
			Groups: record.Groups,
		})
		for _, group := range record.Groups {
			groupNames[group] = struct{}{}
		}
	}

	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		names := make([]string, 0, len(groupNames))
		for name := range groupNames {
			names = append(names, name)
		}

		groupIDs := make(map[string]domain.GroupID, len(names))
		if len(names) > 0 {
			groups, err := tx.EnsureGroups(ctx, names...)
			if err != nil {
				return fmt.Errorf("could not ensure groups: %w", err)
			}
			for _, group := range groups {
				groupIDs[group.Name] = group.ID
			}
		}

		stored, err := tx.UpsertStudents(ctx, students...)
		if err != nil {
			return fmt.Errorf("could not upsert students: %w", err)
		}
		idByBadge := make(map[string]domain.StudentID, len(stored))
		for _, student := range stored {
			idByBadge[student.Badge] = student.ID
		}

		var members []domain.GroupMember
		for _, record := range records {
			studentID, ok := idByBadge[record.Badge]
			if !ok {
				continue
			}
			for _, group := range record.Groups {
				if groupID, ok := groupIDs[group]; ok {
					members = append(members, domain.GroupMember{
						StudentID: studentID,
						GroupID:   groupID,
					})
				}
			}
		}
		if len(members) > 0 {
			if err := tx.AddGroupMembers(ctx, members...); err != nil {
				return fmt.Errorf("could not add group members: %w", err)
			}
		}

		return nil
	}); err != nil {
		return Summary{}, fmt.Errorf("could not import students: %w", err)
	}

	return Summary{Imported: int64(len(records)), Skipped: skipped}, nil
}

// ImportReserves inserts reservations from sheet rows, resolving badges to
// student IDs. Rows referencing unknown badges are skipped. The first row
// must be the header.
func (i *Importer) ImportReserves(ctx context.Context, rows [][]string) (Summary, error) {
	records, skipped := ParseReserves(rows)
	if skipped > 0 {
		logger.Warn(ctx, "skipped malformed reserve rows", zap.Int("count", skipped))
	}
	if len(records) == 0 {
		return Summary{Skipped: skipped}, nil
	}

	var imported int64
	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		refs, err := tx.StudentRefs(ctx)
		if err != nil {
			return fmt.Errorf("could not fetch student refs: %w", err)
		}
		idByBadge := make(map[string]domain.StudentID, len(refs))
		for _, ref := range refs {
			idByBadge[ref.Badge] = ref.ID
		}

		reserves := make([]domain.Reserve, 0, len(records))
		for _, record := range records {
			studentID, ok := idByBadge[record.Badge]
			if !ok {
				skipped++
				logger.Warn(ctx, "reserve references unknown badge",
					zap.String("badge", record.Badge))

				continue
			}

			reserves = append(reserves, domain.Reserve{
				StudentID: studentID,
				Dish:      record.Dish,
				Date:      record.Date,
				Snack:     record.Snack,
				Canceled:  record.Canceled,
			})
		}

		imported, err = tx.StoreReserves(ctx, reserves...)
		if err != nil {
			return fmt.Errorf("could not store reserves: %w", err)
		}

		return nil
	}); err != nil {
		return Summary{}, fmt.Errorf("could not import reserves: %w", err)
	}

	return Summary{Imported: imported, Skipped: skipped}, nil
}
