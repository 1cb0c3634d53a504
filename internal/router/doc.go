// Package router resolves navigation paths to view identifiers.
//
// The route table is fixed when the Router is built: an ordered list of
// exact-match paths, each naming one view. One path is designated the
// fallback, which makes resolution total. Any path that does not match a
// registered route resolves to the fallback view instead of failing, so
// callers never handle a "not found" case.
//
// The Router owns the single current navigation path. Navigate writes it
// (and forwards it to the Host), Sync accepts a path that the host changed on
// its own, and subscribers are told the resolved view after either one.
//
// # Basic Usage
//
//	r := router.Default()
//	r.Subscribe(func(view router.ViewID) {
//	    render(view)
//	})
//
//	r.Resolve("/x")       // router.ViewX
//	r.Resolve("/missing") // router.ViewHome
//
//	r.Navigate("/y")
//	r.Current() // router.ViewY
//	r.Path()    // "/y"
//
// Query strings and fragments are ignored for matching, but the raw path is
// kept as the current path:
//
//	r.Navigate("/x?tab=2")
//	r.Current() // router.ViewX
//	r.Path()    // "/x?tab=2"
package router
