package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entities any) error
	GetAllByOrdered(ctx context.Context, column string, value any, order string, entities any) error
	GetAllIn(ctx context.Context, column string, values any, entities any) error
	DeleteBy(ctx context.Context, model any, column string, value any) (int64, error)
}
