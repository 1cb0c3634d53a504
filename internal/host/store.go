package host

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/viewshell/internal/database"
	"github.com/jask/viewshell/internal/database/repository"
)

const storeTimeout = 2 * time.Second

// Store persists one session's location and navigation log.
type Store struct {
	db      *sql.DB
	session repository.Session
	navs    *repository.NavigationRepo
}

// OpenStore ensures the named session exists and returns a store bound to it.
func OpenStore(ctx context.Context, db *sql.DB, sessionName, startPath string) (*Store, error) {
	s, err := database.EnsureSession(ctx, db, sessionName, startPath)
	if err != nil {
		return nil, fmt.Errorf("ensure session: %w", err)
	}
	return &Store{db: db, session: s, navs: repository.NewNavigationRepo(db)}, nil
}

// Session returns the session as it was last saved.
func (s *Store) Session() repository.Session { return s.session }

// Save records path as the session's location and appends it to the log.
// Both rows are written in one transaction.
func (s *Store) Save(ctx context.Context, path, view string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	now := database.Now()
	next := s.session
	next.Path = path
	next.UpdatedAt = now
	nav := repository.Navigation{
		ID:        uuid.NewString(),
		SessionID: next.ID,
		Path:      path,
		View:      view,
		CreatedAt: now,
	}
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := repository.NewSessionRepo(tx).Upsert(ctx, next); err != nil {
			return fmt.Errorf("save session path: %w", err)
		}
		if err := repository.NewNavigationRepo(tx).Insert(ctx, nav); err != nil {
			return fmt.Errorf("log navigation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.session = next
	return nil
}

// Recent lists the newest navigations of the session first.
func (s *Store) Recent(ctx context.Context, limit int) ([]repository.Navigation, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.navs.Recent(ctx, s.session.ID, limit)
}
