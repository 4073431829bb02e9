package repository

import (
	"context"
	"errors"
	"fmt"
	"wildwaste/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already exists")
var ErrUnknownReporter error = errors.New("reporting user does not exist")
var ErrReportNotFound error = errors.New("report not found")
var ErrReportGone error = errors.New("report not found or already deleted")

// ReportWithReporter is a trash report joined with the username of the
// user who submitted it, the shape the map view consumes.
type ReportWithReporter struct {
	TrashReport
	Username string `json:"username"`
}

type WasteRepository struct {
	db Storage
}

func NewWasteRepository(db Storage) *WasteRepository {
	return &WasteRepository{
		db: db,
	}
}

func (r *WasteRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &TrashReport{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts a new user row. The username pre-check in the core
// is a fast path only; the unique index on username is the authoritative
// guard, and its violation comes back as ErrDuplicateUsername.
func (r *WasteRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.CreateRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *WasteRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *WasteRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// CreateReport inserts a report row, the database assigning the
// identifier and the reported_at timestamp. A foreign key violation on
// user_id maps to ErrUnknownReporter.
func (r *WasteRepository) CreateReport(ctx context.Context, report TrashReport) (TrashReport, error) {
	err := r.db.CreateRecord(ctx, &report)
	if err != nil {
		if errors.Is(err, db.ErrInvalidReference) {
			return TrashReport{}, ErrUnknownReporter
		}
		return TrashReport{}, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

// GetAllReports returns every report joined with the reporting user's
// username. The join is done as two reads merged in memory, keeping the
// storage port generic.
func (r *WasteRepository) GetAllReports(ctx context.Context) ([]ReportWithReporter, error) {
	reports := []TrashReport{}
	err := r.db.GetAll(ctx, &reports)
	if err != nil {
		return nil, fmt.Errorf("get all reports: %w", err)
	}

	usernames, err := r.reporterNames(ctx, reports)
	if err != nil {
		return nil, err
	}

	joined := make([]ReportWithReporter, 0, len(reports))
	for _, report := range reports {
		joined = append(joined, ReportWithReporter{
			TrashReport: report,
			Username:    usernames[report.UserID],
		})
	}

	return joined, nil
}

// GetReportsByUser returns one user's reports, newest first.
func (r *WasteRepository) GetReportsByUser(ctx context.Context, userID uint) ([]TrashReport, error) {
	reports := []TrashReport{}
	err := r.db.GetAllByOrdered(ctx, "user_id", userID, "reported_at DESC", &reports)
	if err != nil {
		return nil, fmt.Errorf("get reports by user: %w", err)
	}

	return reports, nil
}

// DeleteReport checks the report exists, then deletes it. The check is
// an early exit; if a concurrent caller deletes the row between the two
// statements the zero row count surfaces as ErrReportGone.
func (r *WasteRepository) DeleteReport(ctx context.Context, reportID uint) error {
	var report TrashReport
	err := r.db.GetOneBy(ctx, "id", reportID, &report)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrReportNotFound
		}
		return fmt.Errorf("check report exists: %w", err)
	}

	affected, err := r.db.DeleteBy(ctx, &TrashReport{}, "id", reportID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if affected == 0 {
		return ErrReportGone
	}

	return nil
}

func (r *WasteRepository) reporterNames(ctx context.Context, reports []TrashReport) (map[uint]string, error) {
	if len(reports) == 0 {
		return map[uint]string{}, nil
	}

	idSet := make(map[uint]struct{}, len(reports))
	ids := make([]uint, 0, len(reports))
	for _, report := range reports {
		if _, ok := idSet[report.UserID]; !ok {
			idSet[report.UserID] = struct{}{}
			ids = append(ids, report.UserID)
		}
	}

	users := []User{}
	if err := r.db.GetAllIn(ctx, "id", ids, &users); err != nil {
		return nil, fmt.Errorf("get reporting users: %w", err)
	}

	usernames := make(map[uint]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	return usernames, nil
}
