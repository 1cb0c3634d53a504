package router

import (
	"fmt"
	"strings"
)

// ViewID names the view collaborator that renders a route.
type ViewID string

const (
	ViewHome ViewID = "home"
	ViewX    ViewID = "x"
	ViewY    ViewID = "y"
)

// HomePath is the root path. It is also the fallback of the default table.
const HomePath = "/"

// Route associates an exact path with a view. Label is the text shown for the
// route in the navigation list.
type Route struct {
	Label string
	Path  string
	View  ViewID
}

// Link is one navigation menu entry.
type Link struct {
	Label string
	Path  string
}

// Host is the environment that displays the navigation path (the address bar).
// Navigate writes every new path to it; changes the host makes itself come
// back through Sync.
type Host interface {
	SetPath(path string)
}

// Subscriber is told the resolved view after every navigation.
type Subscriber func(view ViewID)

// Router maps navigation paths to views over a fixed route table.
type Router struct {
	routes   []Route
	index    map[string]int
	fallback int
	path     string
	current  ViewID
	host     Host
	subs     []Subscriber
}

// DefaultRoutes returns the Home, X and Y routes in menu order.
func DefaultRoutes() []Route {
	return []Route{
		{Label: "Home", Path: HomePath, View: ViewHome},
		{Label: "X", Path: "/x", View: ViewX},
		{Label: "Y", Path: "/y", View: ViewY},
	}
}

// Default builds a Router over DefaultRoutes with "/" as the fallback.
func Default() *Router {
	return New(DefaultRoutes(), HomePath)
}

// New builds a Router over routes. fallbackPath must be one of the registered
// paths; unmatched paths resolve to its view. The router starts resolved to
// the fallback route.
//
// New panics on an empty table, an empty or duplicate path, or an
// unregistered fallback, since the table is static program data.
func New(routes []Route, fallbackPath string) *Router {
	if len(routes) == 0 {
		panic("router: route table is empty")
	}
	table := make([]Route, len(routes))
	copy(table, routes)
	index := make(map[string]int, len(table))
	for i, rt := range table {
		if rt.Path == "" {
			panic(fmt.Sprintf("router: route %q has an empty path", rt.Label))
		}
		if other, exists := index[rt.Path]; exists {
			panic(fmt.Sprintf("router: duplicate path %q across routes %q and %q", rt.Path, table[other].Label, rt.Label))
		}
		index[rt.Path] = i
	}
	fb, ok := index[fallbackPath]
	if !ok {
		panic(fmt.Sprintf("router: fallback path %q is not registered", fallbackPath))
	}
	return &Router{
		routes:   table,
		index:    index,
		fallback: fb,
		path:     table[fb].Path,
		current:  table[fb].View,
	}
}

// WithHost attaches the host that Navigate writes paths to.
func (r *Router) WithHost(h Host) *Router {
	r.host = h
	return r
}

// Subscribe registers fn to be called with the resolved view after every
// Navigate and Sync, in registration order.
func (r *Router) Subscribe(fn Subscriber) *Router {
	if fn != nil {
		r.subs = append(r.subs, fn)
	}
	return r
}

// Resolve returns the view registered for path, or the fallback view when no
// route matches. It never fails.
func (r *Router) Resolve(path string) ViewID {
	if rt, ok := r.Match(path); ok {
		return rt.View
	}
	return r.routes[r.fallback].View
}

// Match returns the route path matches exactly, ignoring any query string or
// fragment. It reports false when Resolve would use the fallback.
func (r *Router) Match(path string) (Route, bool) {
	i, ok := r.index[matchKey(path)]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Navigate makes path the current navigation path, writes it to the host and
// notifies subscribers. The path is stored exactly as given, even when it
// resolves to the fallback.
func (r *Router) Navigate(path string) {
	r.set(path)
	if r.host != nil {
		r.host.SetPath(path)
	}
	r.notify()
}

// Sync accepts a path changed by the host itself (startup, back). It behaves
// like Navigate without writing the path back to the host.
func (r *Router) Sync(path string) {
	r.set(path)
	r.notify()
}

func (r *Router) set(path string) {
	r.path = path
	r.current = r.Resolve(path)
}

func (r *Router) notify() {
	for _, fn := range r.subs {
		fn(r.current)
	}
}

// Path returns the current navigation path.
func (r *Router) Path() string { return r.path }

// Current returns the view resolved from the current path.
func (r *Router) Current() ViewID { return r.current }

// Links returns the navigation menu in table order. Each call returns a new
// slice.
func (r *Router) Links() []Link {
	out := make([]Link, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, Link{Label: rt.Label, Path: rt.Path})
	}
	return out
}

// Routes returns a copy of the route table.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Route returns the first route that renders view.
func (r *Router) Route(view ViewID) (Route, bool) {
	for _, rt := range r.routes {
		if rt.View == view {
			return rt, true
		}
	}
	return Route{}, false
}

// matchKey drops the query string and fragment from path.
func matchKey(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i]
	}
	return path
}
