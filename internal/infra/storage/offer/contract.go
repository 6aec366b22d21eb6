package offer

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс выполнения запросов, реализуется *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
