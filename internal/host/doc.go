// Package host is the terminal's address bar.
//
// A Location holds the navigation path as the host environment sees it,
// keeps a back stack, and optionally persists every path to a session so
// the shell reopens where it was left. The router writes to it through
// SetPath; paths the host changes on its own (startup, back) are handed to
// the router through Sync by the caller.
package host
