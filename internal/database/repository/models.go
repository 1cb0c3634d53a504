package repository

import (
	"context"
	"database/sql"
	"time"
)

// Session represents a named host location row.
type Session struct {
	ID        string
	Name      string
	Path      string
	UpdatedAt time.Time
}

// Navigation represents one navigation log row.
type Navigation struct {
	ID        string
	SessionID string
	Path      string
	View      string
	CreatedAt time.Time
}

// Querier is satisfied by both *sql.DB and *sql.Tx, so a repo can run
// inside a caller's transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
