package handler

import (
	"context"
	"net/http"
	"wildwaste/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WasteService . WasteService
type WasteService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Login(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	SubmitReport(ctx context.Context, msg core.ReportMessage) (core.ReportRecord, error)
	ListReports(ctx context.Context) ([]core.ReportRecord, error)
	ListUserReports(ctx context.Context, userID uint) ([]core.ReportRecord, error)
	RemoveReport(ctx context.Context, reportID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
