package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/viewshell/internal/host"
	"github.com/jask/viewshell/internal/router"
	"github.com/jask/viewshell/internal/views"
)

// Location is the part of the host address bar the shell drives directly.
type Location interface {
	Back() (string, bool)
	LastError() error
	History(limit int) ([]host.Entry, error)
	Persistent() bool
}

type Options struct {
	Title    string
	Router   *router.Router
	Location Location
	Views    *views.Registry
	Keys     *KeyRegistry
	Logger   *zap.Logger
}

// activeView is the shell's rendering subscription: the router writes the
// resolved view into it after every navigation.
type activeView struct {
	id      router.ViewID
	changes int
}

type Model struct {
	width     int
	height    int
	title     string
	router    *router.Router
	loc       Location
	views     *views.Registry
	keys      *KeyRegistry
	log       *zap.Logger
	active    *activeView
	screens   ScreenStack
	cursor    int
	status    string
	statusErr bool
	quitting  bool
}

func New(opts Options) Model {
	if opts.Router == nil {
		opts.Router = router.Default()
	}
	if opts.Views == nil {
		opts.Views = views.Default(colorAccent)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings(linkLabels(opts.Router)))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Title == "" {
		opts.Title = "viewshell"
	}
	active := &activeView{id: opts.Router.Current()}
	opts.Router.Subscribe(func(v router.ViewID) {
		active.id = v
		active.changes++
	})
	m := Model{
		width:  100,
		height: 30,
		title:  opts.Title,
		router: opts.Router,
		loc:    opts.Location,
		views:  opts.Views,
		keys:   opts.Keys,
		log:    opts.Logger,
		active: active,
	}
	m.syncCursor()
	return m
}

func linkLabels(r *router.Router) []string {
	links := r.Links()
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Label)
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return scopeShell
}

// ActiveView returns the view the shell is rendering.
func (m Model) ActiveView() router.ViewID { return m.active.id }

// Path returns the current navigation path.
func (m Model) Path() string { return m.router.Path() }

// activeLink is the index of the link whose route renders the active view.
func (m Model) activeLink() int {
	rt, ok := m.router.Route(m.active.id)
	if !ok {
		return -1
	}
	for i, l := range m.router.Links() {
		if l.Path == rt.Path {
			return i
		}
	}
	return -1
}

func (m *Model) syncCursor() {
	if i := m.activeLink(); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) navigate(path string) {
	from := m.active.id
	m.router.Navigate(path)
	m.afterNavigation(from)
}

func (m *Model) back() {
	if m.loc == nil {
		m.SetStatus("No earlier page")
		return
	}
	prev, ok := m.loc.Back()
	if !ok {
		m.SetStatus("No earlier page")
		return
	}
	from := m.active.id
	m.router.Sync(prev)
	m.afterNavigation(from)
}

func (m *Model) afterNavigation(from router.ViewID) {
	m.syncCursor()
	m.log.Debug("navigated",
		zap.String("path", m.router.Path()),
		zap.String("from", string(from)),
		zap.String("view", string(m.active.id)),
	)
	if m.loc != nil {
		if err := m.loc.LastError(); err != nil {
			m.SetError(err)
			return
		}
	}
	m.SetStatus("")
}
