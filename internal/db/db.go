package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")
var ErrInvalidReference = errors.New("referenced record does not exist")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// CreateRecord inserts a single record, filling in database-assigned
// fields (primary key, creation timestamp) on the passed pointer.
// Constraint violations surface as ErrDuplicate or ErrInvalidReference.
func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInvalidReference
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entities any) error {
	tx := f.DB.WithContext(ctx).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAllByOrdered(ctx context.Context, column string, value any, order string, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Order(order).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting ordered records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAllIn(ctx context.Context, column string, values any, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), values).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// DeleteBy removes matching rows and reports how many were affected,
// so callers can tell a successful delete from one that raced a
// concurrent delete of the same row.
func (f *PostgresDB) DeleteBy(ctx context.Context, model any, column string, value any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
