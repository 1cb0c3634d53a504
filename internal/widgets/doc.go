// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (boxes, bars, vertical stacks, popup overlay)
//
// Not allowed here:
// - key handling, routing, or any knowledge of which view is active
package widgets
