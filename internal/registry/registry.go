// Package registry implements the domain service coordinating serving
// sessions, meal reservations and consumption records.
package registry

import (
	"context"
	"fmt"
	"registro/internal/config"
	"registro/pkg/domain"
	"registro/pkg/logger"
	"registro/pkg/serrors"
	"registro/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure session state handling and background job enqueueing.
// These settings are typically derived from application configuration.
type Options struct {
	// StateFile is the path of the JSON file recording the active session.
	StateFile string
	// DefaultSnackDish is the dish recorded for auto-provisioned snack
	// reservations when the caller does not name one.
	DefaultSnackDish string
	// SyncMaxAttempts is the maximum number of attempts per background
	// synchronization job.
	SyncMaxAttempts int
	// SyncUniquePeriod is the window during which duplicate sync jobs are
	// collapsed.
	SyncUniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		StateFile:        cfg.Registry.StateFile,
		DefaultSnackDish: cfg.Registry.DefaultSnackDish,
		SyncMaxAttempts:  cfg.Sync.MaxAttempts,
		SyncUniquePeriod: cfg.Sync.UniquePeriod,
	}
}

// registry is the concrete implementation of the Registry interface.
// It coordinates persistence with the storage layer and job enqueueing.
type registry struct {
	// options holds runtime configuration affecting sessions and jobs.
	options Options
	// storage is the persistence layer used for all domain records.
	storage storage.Storage
	// now returns the current time; replaced in tests.
	now func() time.Time
}

// New creates a new Registry instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Registry {
	return &registry{
		options: options,
		storage: storage,
		now:     time.Now,
	}
}

// StartSession validates the session parameters, provisions snack
// reservations when a snack session starts on a date without any, and
// persists the session. The new session becomes the active one.
func (r *registry) StartSession(ctx context.Context, params NewSession) (*domain.Session, error) {
	if !params.Meal.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown meal kind %q", params.Meal)
	}
	if _, err := time.Parse(domain.DateLayout, params.Date); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid session date")
	}
	if params.Time == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "missing session time")
	}

	var session *domain.Session
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		count, err := tx.ReserveCount(ctx, params.Date, params.Meal.Snack())
		if err != nil {
			return fmt.Errorf("could not count reserves: %w", err)
		}

		if count == 0 {
			if !params.Meal.Snack() {
				return serrors.With(serrors.ErrBadRequest,
					"no lunch reservations exist for %s", params.Date)
			}

			// snack sessions provision a reservation for every student so the
			// whole school is eligible on first serving
			dish := params.SnackDish
			if dish == "" {
				dish = r.options.DefaultSnackDish
			}
			created, err := reserveSnacksForAll(ctx, tx, params.Date, dish)
			if err != nil {
				return err
			}
			logger.Info(ctx, "provisioned snack reserves for all students",
				zap.String("date", params.Date),
				zap.Int64("created", created))
		}

		session, err = tx.StoreSession(ctx, domain.Session{
			Meal:   params.Meal,
			Period: params.Period,
			Date:   params.Date,
			Time:   params.Time,
			Groups: params.Groups,
		})
		if err != nil {
			return fmt.Errorf("could not store session: %w", err)
		}
		if session == nil {
			return serrors.With(serrors.ErrConflict, "session already exists")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}

	if err := saveActiveSession(r.options.StateFile, session.ID); err != nil {
		logger.Warn(ctx, "could not record active session", zap.Error(err))
	}

	return session, nil
}

// ActiveSession resolves the session recorded in the state file. A stale
// marker pointing at a deleted session is cleared.
func (r *registry) ActiveSession(ctx context.Context) (*domain.Session, error) {
	id, err := loadActiveSession(r.options.StateFile)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	session, err := r.storage.SessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active session: %w", err)
	}
	if session == nil {
		if err := clearActiveSession(r.options.StateFile); err != nil {
			logger.Warn(ctx, "could not clear stale session state", zap.Error(err))
		}

		return nil, nil
	}

	return session, nil
}

// SessionByID fetches a session, returning a not-found error when no matching
// session exists.
func (r *registry) SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	session, err := r.storage.SessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session: %w", err)
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrNotFound, "session not found")
	}

	return session, nil
}

func (r *registry) Sessions(ctx context.Context, filter storage.SessionFilter) ([]domain.Session, error) {
	if filter.Date != "" {
		if _, err := time.Parse(domain.DateLayout, filter.Date); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date filter")
		}
	}

	sessions, err := r.storage.Sessions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list sessions: %w", err)
	}

	return sessions, nil
}

func (r *registry) SetSessionGroups(ctx context.Context,
	id domain.SessionID,
	groups []string) (*domain.Session, error) {
	session, err := r.storage.UpdateSessionGroups(ctx, id, groups)
	if err != nil {
		return nil, fmt.Errorf("could not update session groups: %w", err)
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrNotFound, "session not found")
	}

	return session, nil
}

// EligibleStudents combines the session's group roster with active
// reservations: members of regular groups qualify only while holding an
// active reservation of the session's kind and date, members of groups
// marked with the walk-in prefix qualify unconditionally, and students
// already served are excluded.
func (r *registry) EligibleStudents(ctx context.Context,
	id domain.SessionID) ([]domain.EligibleStudent, error) {
	session, err := r.SessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The walk-in marker is a per-session flag on a regular group name, so
	// membership is resolved against the unprefixed names.
	queryGroups := make([]string, 0, len(session.Groups))
	walkIn := make(map[string]struct{})
	for _, name := range session.Groups {
		if strings.HasPrefix(name, domain.WalkInPrefix) {
			name = strings.TrimPrefix(name, domain.WalkInPrefix)
			walkIn[name] = struct{}{}
		}

		queryGroups = append(queryGroups, name)
	}

	students, err := r.storage.StudentsInGroups(ctx, queryGroups)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session students: %w", err)
	}

	reserves, err := r.storage.ActiveReserves(ctx, session.Date, session.Meal.Snack())
	if err != nil {
		return nil, fmt.Errorf("could not fetch active reserves: %w", err)
	}
	reserveByStudent := make(map[domain.StudentID]domain.Reserve, len(reserves))
	for _, reserve := range reserves {
		reserveByStudent[reserve.StudentID] = reserve
	}

	consumptions, err := r.storage.ConsumptionsBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session consumptions: %w", err)
	}
	served := make(map[domain.StudentID]struct{}, len(consumptions))
	for _, c := range consumptions {
		served[c.StudentID] = struct{}{}
	}

	out := make([]domain.EligibleStudent, 0, len(students))
	for _, student := range students {
		if _, ok := served[student.ID]; ok {
			continue
		}

		eligible := domain.EligibleStudent{
			StudentID: student.ID,
			Badge:     student.Badge,
			Name:      student.Name,
			Groups:    strings.Join(student.Groups, ", "),
			Code:      LookupCode(student.Badge),
		}

		if reserve, ok := reserveByStudent[student.ID]; ok {
			reserveID := reserve.ID
			eligible.ReserveID = &reserveID
			eligible.Dish = reserve.Dish
		} else {
			if !memberOfAny(student.Groups, walkIn) {
				continue
			}
			eligible.Dish = domain.NoReserveDish
		}

		out = append(out, eligible)
	}

	return out, nil
}

// memberOfAny reports whether any of the given group names is in the set.
func memberOfAny(groups []string, set map[string]struct{}) bool {
	for _, g := range groups {
		if _, ok := set[g]; ok {
			return true
		}
	}

	return false
}

// RegisterConsumption persists the serving of one student and schedules an
// upload of the session's served meals. Insertion and job enqueueing share a
// transaction so a failed insert never produces an upload.
func (r *registry) RegisterConsumption(ctx context.Context,
	id domain.SessionID,
	badge string) (*domain.Consumption, error) {
	badge = NormalizeBadge(badge)

	var consumption *domain.Consumption
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not fetch session: %w", err)
		}
		if session == nil {
			return serrors.With(serrors.ErrNotFound, "session not found")
		}

		student, err := tx.StudentByBadge(ctx, badge)
		if err != nil {
			return fmt.Errorf("could not fetch student: %w", err)
		}
		if student == nil {
			return serrors.With(serrors.ErrNotFound, "unknown badge %q", badge)
		}

		reserves, err := tx.ActiveReserves(ctx, session.Date, session.Meal.Snack())
		if err != nil {
			return fmt.Errorf("could not fetch active reserves: %w", err)
		}

		record := domain.Consumption{
			StudentID:      student.ID,
			SessionID:      id,
			ServedAt:       r.now().Format(domain.TimeLayout),
			WithoutReserve: true,
		}
		for _, reserve := range reserves {
			if reserve.StudentID == student.ID {
				reserveID := reserve.ID
				record.ReserveID = &reserveID
				record.WithoutReserve = false

				break
			}
		}

		inserted, err := tx.StoreConsumptions(ctx, record)
		if err != nil {
			return fmt.Errorf("could not store consumption: %w", err)
		}
		if inserted == 0 {
			return serrors.With(serrors.ErrConflict, "student already served in this session")
		}

		stored, err := tx.ConsumptionsBySession(ctx, id)
		if err != nil {
			return fmt.Errorf("could not fetch stored consumption: %w", err)
		}
		for i := range stored {
			if stored[i].StudentID == student.ID {
				consumption = &stored[i]

				break
			}
		}

		if _, err := tx.AddJob(ctx, r.servedSyncArgs(id), nil); err != nil {
			return fmt.Errorf("could not add sync job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return consumption, nil
}

// UndoConsumption deletes the consumption of the student with the given badge.
func (r *registry) UndoConsumption(ctx context.Context, id domain.SessionID, badge string) error {
	badge = NormalizeBadge(badge)

	return r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not fetch session: %w", err)
		}
		if session == nil {
			return serrors.With(serrors.ErrNotFound, "session not found")
		}

		student, err := tx.StudentByBadge(ctx, badge)
		if err != nil {
			return fmt.Errorf("could not fetch student: %w", err)
		}
		if student == nil {
			return serrors.With(serrors.ErrNotFound, "unknown badge %q", badge)
		}

		deleted, err := tx.DeleteConsumption(ctx, id, student.ID)
		if err != nil {
			return fmt.Errorf("could not delete consumption: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "student was not served in this session")
		}

		return nil
	})
}

func (r *registry) ServedMeals(ctx context.Context, id domain.SessionID) ([]domain.ServedMeal, error) {
	if _, err := r.SessionByID(ctx, id); err != nil {
		return nil, err
	}

	meals, err := r.storage.ServedMeals(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch served meals: %w", err)
	}

	return meals, nil
}

// SyncServedState reconciles stored consumptions with an external snapshot in
// one transaction: local records absent from the snapshot are removed, then
// missing snapshot entries are inserted with conflicts ignored. Entries whose
// badge is unknown are counted and skipped.
func (r *registry) SyncServedState(ctx context.Context,
	id domain.SessionID,
	entries []SnapshotEntry) (SyncResult, error) {
	var result SyncResult
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		session, err := tx.SessionByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not fetch session: %w", err)
		}
		if session == nil {
			return serrors.With(serrors.ErrNotFound, "session not found")
		}

		refs, err := tx.StudentRefs(ctx)
		if err != nil {
			return fmt.Errorf("could not fetch student refs: %w", err)
		}
		byBadge := make(map[string]domain.StudentID, len(refs))
		for _, ref := range refs {
			byBadge[ref.Badge] = ref.ID
		}

		reserves, err := tx.ActiveReserves(ctx, session.Date, session.Meal.Snack())
		if err != nil {
			return fmt.Errorf("could not fetch active reserves: %w", err)
		}
		reserveByStudent := make(map[domain.StudentID]domain.ReserveID, len(reserves))
		for _, reserve := range reserves {
			reserveByStudent[reserve.StudentID] = reserve.ID
		}

		keep := make([]domain.StudentID, 0, len(entries))
		records := make([]domain.Consumption, 0, len(entries))
		for _, entry := range entries {
			studentID, ok := byBadge[NormalizeBadge(entry.Badge)]
			if !ok {
				result.Skipped++
				logger.Warn(ctx, "snapshot entry references unknown badge",
					zap.String("badge", entry.Badge))

				continue
			}
			keep = append(keep, studentID)

			record := domain.Consumption{
				StudentID:      studentID,
				SessionID:      id,
				ServedAt:       entry.ServedAt,
				WithoutReserve: true,
			}
			if reserveID, ok := reserveByStudent[studentID]; ok {
				rid := reserveID
				record.ReserveID = &rid
				record.WithoutReserve = false
			}
			records = append(records, record)
		}

		result.Deleted, err = tx.PruneConsumptions(ctx, id, keep)
		if err != nil {
			return fmt.Errorf("could not prune consumptions: %w", err)
		}

		result.Inserted, err = tx.StoreConsumptions(ctx, records...)
		if err != nil {
			return fmt.Errorf("could not store snapshot consumptions: %w", err)
		}

		return nil
	}); err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

// reserveSnacksForAll creates a snack reservation for every known student,
// skipping students who already hold one for the date.
func reserveSnacksForAll(ctx context.Context,
	strg storage.AllStorage,
	date string,
	dish string) (int64, error) {
	refs, err := strg.StudentRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not fetch student refs: %w", err)
	}

	reserves := make([]domain.Reserve, 0, len(refs))
	for _, ref := range refs {
		reserves = append(reserves, domain.Reserve{
			StudentID: ref.ID,
			Dish:      dish,
			Date:      date,
			Snack:     true,
		})
	}

	created, err := strg.StoreReserves(ctx, reserves...)
	if err != nil {
		return 0, fmt.Errorf("could not store snack reserves: %w", err)
	}

	return created, nil
}

func (r *registry) ReserveSnacksForAll(ctx context.Context, date string, dish string) (int64, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date")
	}
	if dish == "" {
		dish = r.options.DefaultSnackDish
	}

	return reserveSnacksForAll(ctx, r.storage, date, dish)
}

func (r *registry) servedSyncArgs(id domain.SessionID) ServedSyncArgs {
	return ServedSyncArgs{
		SessionID:    int64(id),
		maxAttempts:  r.options.SyncMaxAttempts,
		uniquePeriod: r.options.SyncUniquePeriod,
	}
}

func (r *registry) EnqueueServedSync(ctx context.Context, id domain.SessionID) (bool, error) {
	if _, err := r.SessionByID(ctx, id); err != nil {
		return false, err
	}

	added, err := r.storage.AddJob(ctx, r.servedSyncArgs(id), nil)
	if err != nil {
		return false, fmt.Errorf("could not add served sync job: %w", err)
	}

	return added, nil
}

func (r *registry) EnqueueMasterSync(ctx context.Context) (bool, error) {
	added, err := r.storage.AddJob(ctx, MasterSyncArgs{
		maxAttempts:  r.options.SyncMaxAttempts,
		uniquePeriod: r.options.SyncUniquePeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add master sync job: %w", err)
	}

	return added, nil
}
