package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	InsertIfAbsent(ctx context.Context, record any, conflictColumns ...string) (bool, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, dest any, order string, limit int, query string, args ...any) error
	IncrementColumns(ctx context.Context, model any, id string, deltas map[string]float64) error
	UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error)
}
