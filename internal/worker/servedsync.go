package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"registro/internal/registry"
	"registro/internal/sheets"
	"registro/pkg/domain"
	"registro/pkg/logger"
	"registro/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ServedSyncWorker uploads the served meals of a session to the worksheet
// named after the session's meal kind. Rows already present on the worksheet
// are not appended again, so repeated runs for the same session are safe.
type ServedSyncWorker struct {
	river.WorkerDefaults[registry.ServedSyncArgs]

	registry registry.Registry
	sheets   sheets.Client
}

// NewServedSyncWorker constructs a ServedSyncWorker using the provided
// registry and spreadsheet client.
func NewServedSyncWorker(reg registry.Registry, client sheets.Client) *ServedSyncWorker {
	return &ServedSyncWorker{
		registry: reg,
		sheets:   client,
	}
}

// Work uploads the session's served meals. A job referencing a deleted
// session is canceled instead of retried.
func (w *ServedSyncWorker) Work(ctx context.Context, job *river.Job[registry.ServedSyncArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int64("sessionID", job.Args.SessionID))

	sessionID := domain.SessionID(job.Args.SessionID)
	session, err := w.registry.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not fetch session: %w", err)
	}

	meals, err := w.registry.ServedMeals(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("could not fetch served meals: %w", err)
	}
	if len(meals) == 0 {
		logger.Warn(ctx, "session has no served meals to upload")

		return nil
	}

	worksheet := string(session.Meal)
	existing, err := w.sheets.Values(ctx, worksheet)
	if err != nil {
		return fmt.Errorf("could not read worksheet: %w", err)
	}
	uploaded := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		uploaded[rowKey(row)] = struct{}{}
	}

	var rows [][]string
	for _, meal := range meals {
		row := servedRow(session, meal)
		if _, ok := uploaded[rowKey(row)]; ok {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		logger.Info(ctx, "served meals already uploaded")

		return nil
	}

	if err := w.sheets.Append(ctx, worksheet, rows); err != nil {
		return fmt.Errorf("could not append served meals: %w", err)
	}

	logger.Info(ctx, "uploaded served meals",
		zap.String("worksheet", worksheet),
		zap.Int("rows", len(rows)))

	return nil
}

// servedRow formats one served meal as its worksheet row.
func servedRow(session *domain.Session, meal domain.ServedMeal) []string {
	group := meal.Groups
	if i := strings.Index(group, ","); i >= 0 {
		group = strings.TrimSpace(group[:i])
	}

	return []string{meal.Badge, session.Date, meal.Name, group, meal.Dish, meal.ServedAt}
}

// rowKey stringifies a row for duplicate detection.
func rowKey(row []string) string {
	return strings.Join(row, "\x1f")
}
