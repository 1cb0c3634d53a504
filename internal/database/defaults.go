package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/viewshell/internal/database/repository"
)

// DefaultSessionName is used when no session name is configured.
const DefaultSessionName = "default"

// SessionID derives the stable id of a named session.
func SessionID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("session:"+name)).String()
}

// EnsureSession returns the named session, creating it at startPath when it
// does not exist yet. It is idempotent and safe to run on every startup.
func EnsureSession(ctx context.Context, db *sql.DB, name, startPath string) (repository.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSessionName
	}
	repo := repository.NewSessionRepo(db)
	existing, err := repo.ByName(ctx, name)
	if err != nil {
		return repository.Session{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	if startPath == "" {
		startPath = "/"
	}
	s := repository.Session{ID: SessionID(name), Name: name, Path: startPath, UpdatedAt: Now()}
	if err := repo.Upsert(ctx, s); err != nil {
		return repository.Session{}, err
	}
	return s, nil
}
