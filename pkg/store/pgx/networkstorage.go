package pgx

import (
	"context"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	Begin(ctx context.Context) (pgxv5.Tx, error)
}

// NetworkDBStorage implements the NetworkStorage interface on top of
// PostgreSQL. Graph and analysis payloads are stored as JSONB so the
// API can serve them back without re-running a build.
type NetworkDBStorage struct {
	conn pgxIConn
}

// NewNetworkDBStorageWithConnection creates a NetworkDBStorage using an
// existing database connection or pool.
func NewNetworkDBStorageWithConnection(conn pgxIConn) *NetworkDBStorage {
	return &NetworkDBStorage{conn: conn}
}
