// Package worker runs the background synchronization jobs on the River queue:
// uploading served meals to the master spreadsheet and pulling the student
// roster and reservation list from it.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"registro/internal/config"
	"registro/internal/importer"
	"registro/internal/registry"
	"registro/internal/sheets"
	"registro/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the queue and the spreadsheet layout used by the workers.
type Options struct {
	// MaxWorkers bounds the number of concurrently running jobs.
	MaxWorkers int
	// StudentsWorksheet is the worksheet holding the master student roster.
	StudentsWorksheet string
	// ReservesWorksheet is the worksheet holding the master reservation list.
	ReservesWorksheet string
	// SnapshotDir is where pulled worksheets are written as CSV snapshots.
	SnapshotDir string
}

// NewOptions constructs worker Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Sync.MaxWorkers,
		StudentsWorksheet: cfg.Sheets.StudentsWorksheet,
		ReservesWorksheet: cfg.Sheets.ReservesWorksheet,
		SnapshotDir:       cfg.Sheets.SnapshotDir,
	}
}

// Start registers the synchronization workers and starts the River client on
// the given pool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	reg registry.Registry,
	client sheets.Client,
	imp *importer.Importer,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewServedSyncWorker(reg, client))
	river.AddWorker(workers, NewMasterSyncWorker(client, imp, options))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
