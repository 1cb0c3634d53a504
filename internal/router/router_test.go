package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingHost struct{ paths []string }

func (h *recordingHost) SetPath(path string) { h.paths = append(h.paths, path) }

func TestResolveRegisteredPaths(t *testing.T) {
	r := Default()
	for _, rt := range DefaultRoutes() {
		if got := r.Resolve(rt.Path); got != rt.View {
			t.Fatalf("Resolve(%q) = %q, want %q", rt.Path, got, rt.View)
		}
	}
}

func TestResolveFallsBackToHome(t *testing.T) {
	r := Default()
	for _, p := range []string{"", "/unknown", "/x/", "/X", "x", "/y/z", " /x", "//"} {
		if got := r.Resolve(p); got != ViewHome {
			t.Fatalf("Resolve(%q) = %q, want %q", p, got, ViewHome)
		}
	}
}

func TestResolveIgnoresQueryAndFragment(t *testing.T) {
	r := Default()
	tests := []struct {
		path string
		want ViewID
	}{
		{"/x?tab=1", ViewX},
		{"/y#top", ViewY},
		{"/?q=1#a", ViewHome},
		{"/nope?x", ViewHome},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLinksFixedOrder(t *testing.T) {
	r := Default()
	want := []Link{{Label: "Home", Path: "/"}, {Label: "X", Path: "/x"}, {Label: "Y", Path: "/y"}}
	if diff := cmp.Diff(want, r.Links()); diff != "" {
		t.Fatalf("Links() mismatch (-want +got):\n%s", diff)
	}
	r.Navigate("/y")
	links := r.Links()
	links[0].Label = "mutated"
	if diff := cmp.Diff(want, r.Links()); diff != "" {
		t.Fatalf("Links() after navigate/mutation (-want +got):\n%s", diff)
	}
}

func TestInitialStateIsHome(t *testing.T) {
	r := Default()
	if r.Current() != ViewHome {
		t.Fatalf("Current() = %q, want home", r.Current())
	}
	if r.Path() != HomePath {
		t.Fatalf("Path() = %q, want %q", r.Path(), HomePath)
	}
}

func TestNavigateLastWriteWins(t *testing.T) {
	r := Default()
	r.Navigate("/x")
	if r.Current() != ViewX {
		t.Fatalf("after /x Current() = %q", r.Current())
	}
	r.Navigate("/y")
	if r.Current() != ViewY {
		t.Fatalf("after /y Current() = %q", r.Current())
	}
}

func TestNavigatePathRoundTrip(t *testing.T) {
	r := Default()
	for _, p := range []string{"/", "/x", "/y", "/unknown"} {
		r.Navigate(p)
		if r.Path() != p {
			t.Fatalf("Path() = %q, want %q", r.Path(), p)
		}
	}
	if r.Current() != ViewHome {
		t.Fatalf("/unknown should resolve to home, got %q", r.Current())
	}
}

func TestNavigateWritesHostAndNotifies(t *testing.T) {
	host := &recordingHost{}
	var seen []ViewID
	r := Default().WithHost(host).Subscribe(func(v ViewID) { seen = append(seen, v) })

	r.Navigate("/x")
	r.Navigate("/missing")

	if diff := cmp.Diff([]string{"/x", "/missing"}, host.paths); diff != "" {
		t.Fatalf("host paths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ViewID{ViewX, ViewHome}, seen); diff != "" {
		t.Fatalf("notifications (-want +got):\n%s", diff)
	}
}

func TestSyncDoesNotWriteHost(t *testing.T) {
	host := &recordingHost{}
	notified := 0
	r := Default().WithHost(host).Subscribe(func(ViewID) { notified++ })

	r.Sync("/y")

	if len(host.paths) != 0 {
		t.Fatalf("Sync wrote to host: %v", host.paths)
	}
	if notified != 1 {
		t.Fatalf("notified = %d, want 1", notified)
	}
	if r.Current() != ViewY || r.Path() != "/y" {
		t.Fatalf("state = (%q, %q), want (y, /y)", r.Current(), r.Path())
	}
}

func TestActivateXLinkFromHome(t *testing.T) {
	r := Default()
	var transitions []ViewID
	r.Subscribe(func(v ViewID) { transitions = append(transitions, v) })

	from := r.Current()
	for _, l := range r.Links() {
		if l.Label == "X" {
			r.Navigate(l.Path)
		}
	}

	if from != ViewHome {
		t.Fatalf("start = %q, want home", from)
	}
	if len(transitions) != 1 || transitions[0] != ViewX {
		t.Fatalf("transitions = %v, want [x]", transitions)
	}
	if r.Path() != "/x" {
		t.Fatalf("Path() = %q, want /x", r.Path())
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	tests := []struct {
		name     string
		routes   []Route
		fallback string
	}{
		{"empty", nil, "/"},
		{"empty path", []Route{{Label: "A", Path: "", View: "a"}}, ""},
		{"duplicate", []Route{{Label: "A", Path: "/", View: "a"}, {Label: "B", Path: "/", View: "b"}}, "/"},
		{"missing fallback", DefaultRoutes(), "/home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			New(tt.routes, tt.fallback)
		})
	}
}

func TestNewCopiesTable(t *testing.T) {
	routes := DefaultRoutes()
	r := New(routes, "/")
	routes[1].Path = "/changed"
	if r.Resolve("/x") != ViewX {
		t.Fatalf("table should not alias caller slice")
	}
}

func TestCustomFallback(t *testing.T) {
	r := New(DefaultRoutes(), "/y")
	if r.Resolve("/nowhere") != ViewY {
		t.Fatalf("expected fallback to y")
	}
	if r.Current() != ViewY || r.Path() != "/y" {
		t.Fatalf("initial state should be the fallback route")
	}
}

func TestRouteLookup(t *testing.T) {
	r := Default()
	rt, ok := r.Route(ViewY)
	if !ok || rt.Label != "Y" || rt.Path != "/y" {
		t.Fatalf("Route(y) = %+v, %v", rt, ok)
	}
	if _, ok := r.Route("nope"); ok {
		t.Fatalf("unexpected route for unknown view")
	}
}

func TestClosest(t *testing.T) {
	r := Default()
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"/xx", "/x", true},
		{"x", "/x", true},
		{"/y?q=1", "", false},
		{"/x", "", false},
		{"/", "", false},
		{"/zzzz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Closest(tt.in)
		if ok != tt.ok || got.Path != tt.want {
			t.Errorf("Closest(%q) = (%q, %v), want (%q, %v)", tt.in, got.Path, ok, tt.want, tt.ok)
		}
	}
	if r.Resolve("/xx") != ViewHome {
		t.Fatalf("Closest must not change Resolve")
	}
}

func TestMatchIgnoresQueryAndFragment(t *testing.T) {
	r := Default()
	for _, tc := range []struct {
		path string
		want string
		ok   bool
	}{
		{"/", "/", true},
		{"/?q=1", "/", true},
		{"/x#top", "/x", true},
		{"/y?a=b#c", "/y", true},
		{"/unknown", "", false},
		{"", "", false},
		{"/X", "", false},
	} {
		rt, ok := r.Match(tc.path)
		if ok != tc.ok || rt.Path != tc.want {
			t.Fatalf("Match(%q) = (%q, %v), want (%q, %v)", tc.path, rt.Path, ok, tc.want, tc.ok)
		}
	}
}
