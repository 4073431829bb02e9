package core

import (
	"context"
	"errors"
	"fmt"
	"wildwaste/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameTaken error = errors.New("username already exists")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrReporterNotFound error = errors.New("reporting user does not exist")
var ErrReportNotFound error = errors.New("report not found")
var ErrReportGone error = errors.New("report not found or already deleted")

// WildWaste holds the service logic over the report repository.
type WildWaste struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewWildWaste is a constructor function for the WildWaste type.
func NewWildWaste(logger *zap.SugaredLogger, repo Repository) *WildWaste {
	return &WildWaste{
		logs: logger,
		repo: repo,
	}
}

// Register hashes the password and creates the user. The username
// lookup is only an early exit; the repository maps the unique index
// violation to the same conflict outcome when two registrations race.
func (w *WildWaste) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	_, err = w.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return UserRecord{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, fmt.Errorf("check username exists: %w", err)
	}

	user, err := w.repo.CreateUser(ctx, msg.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserRecord{}, ErrUsernameTaken
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	w.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Login verifies the credential pair. A missing user and a wrong
// password return the same error so callers cannot enumerate usernames.
func (w *WildWaste) Login(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := w.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// SubmitReport validates the reporter exists and stores the report.
// The foreign key on user_id backs the check up; its violation surfaces
// as the same reporter-not-found outcome.
func (w *WildWaste) SubmitReport(ctx context.Context, msg ReportMessage) (ReportRecord, error) {
	_, err := w.repo.GetUserByID(ctx, msg.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ReportRecord{}, ErrReporterNotFound
		}
		return ReportRecord{}, fmt.Errorf("check reporter exists: %w", err)
	}

	report, err := w.repo.CreateReport(ctx, repository.TrashReport{
		UserID:      msg.UserID,
		Latitude:    msg.Latitude,
		Longitude:   msg.Longitude,
		TrashType:   msg.TrashType,
		Quantity:    msg.Quantity,
		ImageBase64: msg.ImageBase64,
		Notes:       msg.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUnknownReporter) {
			return ReportRecord{}, ErrReporterNotFound
		}
		return ReportRecord{}, fmt.Errorf("create report: %w", err)
	}

	w.logs.Infow("report submitted", "report_id", report.ID, "user_id", report.UserID, "trash_type", report.TrashType)

	return ReportRecord{
		ID:          report.ID,
		UserID:      report.UserID,
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		TrashType:   report.TrashType,
		Quantity:    report.Quantity,
		ImageBase64: report.ImageBase64,
		Notes:       report.Notes,
		ReportedAt:  report.ReportedAt,
	}, nil
}

// ListReports returns every stored report with the reporter's username,
// the payload the map view renders.
func (w *WildWaste) ListReports(ctx context.Context) ([]ReportRecord, error) {
	reports, err := w.repo.GetAllReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all reports: %w", err)
	}

	records := make([]ReportRecord, 0, len(reports))
	for _, report := range reports {
		records = append(records, ReportRecord{
			ID:          report.ID,
			UserID:      report.UserID,
			Username:    report.Username,
			Latitude:    report.Latitude,
			Longitude:   report.Longitude,
			TrashType:   report.TrashType,
			Quantity:    report.Quantity,
			ImageBase64: report.ImageBase64,
			Notes:       report.Notes,
			ReportedAt:  report.ReportedAt,
		})
	}

	return records, nil
}

// ListUserReports returns one user's reports, newest first, including
// the image payload for the personal history view. A user with no
// reports gets an empty slice, not an error.
func (w *WildWaste) ListUserReports(ctx context.Context, userID uint) ([]ReportRecord, error) {
	reports, err := w.repo.GetReportsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reports by user: %w", err)
	}

	records := make([]ReportRecord, 0, len(reports))
	for _, report := range reports {
		records = append(records, ReportRecord{
			ID:          report.ID,
			UserID:      report.UserID,
			Latitude:    report.Latitude,
			Longitude:   report.Longitude,
			TrashType:   report.TrashType,
			Quantity:    report.Quantity,
			ImageBase64: report.ImageBase64,
			Notes:       report.Notes,
			ReportedAt:  report.ReportedAt,
		})
	}

	return records, nil
}

// RemoveReport deletes a report by identifier. No ownership check is
// performed; any caller can delete any report.
func (w *WildWaste) RemoveReport(ctx context.Context, reportID uint) error {
	err := w.repo.DeleteReport(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return ErrReportNotFound
		}
		if errors.Is(err, repository.ErrReportGone) {
			return ErrReportGone
		}
		return fmt.Errorf("delete report: %w", err)
	}

	w.logs.Infow("report deleted", "report_id", reportID)
	return nil
}
