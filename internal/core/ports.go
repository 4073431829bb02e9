package core

import (
	"context"
	"wildwaste/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateReport(ctx context.Context, report repository.TrashReport) (repository.TrashReport, error)
	GetAllReports(ctx context.Context) ([]repository.ReportWithReporter, error)
	GetReportsByUser(ctx context.Context, userID uint) ([]repository.TrashReport, error)
	DeleteReport(ctx context.Context, reportID uint) error
}
