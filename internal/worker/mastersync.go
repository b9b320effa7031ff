package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"registro/internal/importer"
	"registro/internal/registry"
	"registro/internal/sheets"
	"registro/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// MasterSyncWorker downloads the master student roster and reservation list,
// writes each worksheet to a CSV snapshot and imports them. The run aborts on
// the first failed stage so a broken roster never feeds the reserve import.
type MasterSyncWorker struct {
	river.WorkerDefaults[registry.MasterSyncArgs]

	sheets   sheets.Client
	importer *importer.Importer
	options  Options
}

// NewMasterSyncWorker constructs a MasterSyncWorker using the provided
// spreadsheet client and importer.
func NewMasterSyncWorker(client sheets.Client, imp *importer.Importer, options Options) *MasterSyncWorker {
	return &MasterSyncWorker{
		sheets:   client,
		importer: imp,
		options:  options,
	}
}

func (w *MasterSyncWorker) Work(ctx context.Context, job *river.Job[registry.MasterSyncArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.pull(ctx, w.options.StudentsWorksheet, w.importer.ImportStudents); err != nil {
		return fmt.Errorf("could not sync students: %w", err)
	}
	if err := w.pull(ctx, w.options.ReservesWorksheet, w.importer.ImportReserves); err != nil {
		return fmt.Errorf("could not sync reserves: %w", err)
	}

	return nil
}

// pull fetches one worksheet, snapshots it and feeds it to the given importer
// stage. An empty worksheet is skipped with a warning.
func (w *MasterSyncWorker) pull(ctx context.Context,
	worksheet string,
	apply func(context.Context, [][]string) (importer.Summary, error)) error {
	ctx = logger.WithFields(ctx, zap.String("worksheet", worksheet))

	rows, err := w.sheets.Values(ctx, worksheet)
	if err != nil {
		return fmt.Errorf("could not read worksheet: %w", err)
	}
	if len(rows) == 0 {
		logger.Warn(ctx, "worksheet is empty, skipping")

		return nil
	}

	if err := w.snapshot(worksheet, rows); err != nil {
		return err
	}

	summary, err := apply(ctx, rows)
	if err != nil {
		return fmt.Errorf("could not import worksheet: %w", err)
	}

	logger.Info(ctx, "imported worksheet",
		zap.Int64("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped))

	return nil
}

// snapshot writes the worksheet rows to a CSV file under the snapshot
// directory, replacing any previous snapshot of the same worksheet.
func (w *MasterSyncWorker) snapshot(worksheet string, rows [][]string) error {
	if err := os.MkdirAll(w.options.SnapshotDir, 0o750); err != nil {
		return fmt.Errorf("could not create snapshot directory: %w", err)
	}

	path := filepath.Join(w.options.SnapshotDir, strings.ToLower(worksheet)+".csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("could not write snapshot file: %w", err)
	}

	return nil
}
