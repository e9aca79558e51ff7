package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
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

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// InsertIfAbsent inserts the record unless a row with the same value in the
// conflict columns exists. The insert and the conflict check are a single
// statement, so concurrent callers cannot both insert.
func (f *PostgresDB) InsertIfAbsent(ctx context.Context, record any, conflictColumns ...string) (bool, error) {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	tx := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		DoNothing: true,
	}).Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert if absent: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
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

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, dest any, order string, limit int, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Order(order).Limit(limit).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("finding records: %w", tx.Error)
	}
	return nil
}

// IncrementColumns applies the deltas to the row's numeric columns in one
// UPDATE, never read-modify-write. Returns ErrNotFound when no row matches.
func (f *PostgresDB) IncrementColumns(ctx context.Context, model any, id string, deltas map[string]float64) error {
	updates := make(map[string]any, len(deltas))
	for column, delta := range deltas {
		updates[column] = gorm.Expr(fmt.Sprintf("%s + ?", column), delta)
	}

	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("incrementing columns: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateWhere applies the updates to every row matching the query and reports
// how many rows changed. Callers use the count to detect guarded updates that
// lost a race.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(query, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
