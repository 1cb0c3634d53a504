package repository

import "context"

// NavigationRepo handles the navigation log.
type NavigationRepo struct {
	db Querier
}

func NewNavigationRepo(db Querier) *NavigationRepo { return &NavigationRepo{db: db} }

func (r *NavigationRepo) Insert(ctx context.Context, n Navigation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO navigations(id, session_id, path, view, created_at) VALUES (?, ?, ?, ?, ?)
	`, n.ID, n.SessionID, n.Path, n.View, n.CreatedAt)
	return err
}

// Recent lists the newest navigations of a session first.
func (r *NavigationRepo) Recent(ctx context.Context, sessionID string, limit int) ([]Navigation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, path, view, created_at FROM navigations
	WHERE session_id = ?
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Navigation
	for rows.Next() {
		var n Navigation
		if err := rows.Scan(&n.ID, &n.SessionID, &n.Path, &n.View, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
