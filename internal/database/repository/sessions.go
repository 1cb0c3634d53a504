package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SessionRepo handles sessions.
type SessionRepo struct {
	db Querier
}

func NewSessionRepo(db Querier) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Upsert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, name, path, updated_at) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET path=excluded.path, updated_at=excluded.updated_at;
	`, s.ID, s.Name, s.Path, s.UpdatedAt)
	return err
}

func (r *SessionRepo) ByName(ctx context.Context, name string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, path, updated_at FROM sessions WHERE name = ?`, name)
	var s Session
	if err := row.Scan(&s.ID, &s.Name, &s.Path, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
