package host

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jask/viewshell/internal/router"
)

const memoryHistoryLimit = 100

// Entry is one recorded navigation.
type Entry struct {
	Path string
	View router.ViewID
	At   time.Time
}

// Location implements router.Host.
type Location struct {
	ctx     context.Context
	resolve func(string) router.ViewID
	store   *Store
	log     *zap.Logger

	path    string
	back    pathStack
	entries []Entry
	lastErr error
	now     func() time.Time
}

// NewLocation builds a location. resolve labels logged paths with their view;
// store may be nil to keep everything in memory.
func NewLocation(ctx context.Context, resolve func(string) router.ViewID, store *Store, log *zap.Logger) *Location {
	if log == nil {
		log = zap.NewNop()
	}
	return &Location{
		ctx:     ctx,
		resolve: resolve,
		store:   store,
		log:     log,
		path:    router.HomePath,
		now:     time.Now,
	}
}

// Start picks the path to open with: override when set, else the persisted
// session path, else "/". The chosen path becomes the current host path.
func (l *Location) Start(override string) string {
	switch {
	case override != "":
		l.path = override
		l.record(override)
	case l.store != nil && l.store.Session().Path != "":
		l.path = l.store.Session().Path
	default:
		l.path = router.HomePath
	}
	l.log.Debug("location start", zap.String("path", l.path), zap.Bool("override", override != ""))
	return l.path
}

// SetPath stores a path written by the router and pushes the previous one on
// the back stack. Persistence errors are logged and kept for LastError.
func (l *Location) SetPath(path string) {
	l.back.Push(l.path)
	l.path = path
	l.record(path)
}

// Back pops the back stack and makes that path current. The caller passes
// the result to router.Sync.
func (l *Location) Back() (string, bool) {
	prev, ok := l.back.Pop()
	if !ok {
		return "", false
	}
	l.path = prev
	l.record(prev)
	return prev, true
}

// Path returns the current host path.
func (l *Location) Path() string { return l.path }

// Persistent reports whether paths are saved to a session.
func (l *Location) Persistent() bool { return l.store != nil }

// LastError returns and clears the most recent persistence error.
func (l *Location) LastError() error {
	err := l.lastErr
	l.lastErr = nil
	return err
}

// History returns up to limit recent navigations, newest first. With a store
// it includes earlier runs of the same session.
func (l *Location) History(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	if l.store == nil {
		n := min(limit, len(l.entries))
		out := make([]Entry, 0, n)
		for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, l.entries[i])
		}
		return out, nil
	}
	rows, err := l.store.Recent(l.ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, Entry{Path: r.Path, View: router.ViewID(r.View), At: r.CreatedAt})
	}
	return out, nil
}

func (l *Location) record(path string) {
	view := l.resolve(path)
	l.entries = append(l.entries, Entry{Path: path, View: view, At: l.now()})
	if len(l.entries) > memoryHistoryLimit {
		l.entries = l.entries[len(l.entries)-memoryHistoryLimit:]
	}
	if l.store == nil {
		return
	}
	if err := l.store.Save(l.ctx, path, string(view)); err != nil {
		l.lastErr = err
		l.log.Error("persist location", zap.String("path", path), zap.Error(err))
	}
}
