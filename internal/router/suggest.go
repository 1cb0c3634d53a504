package router

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typed path may be from a registered one
// before Closest gives up.
const maxSuggestDistance = 2

// Closest returns the link whose path is nearest to path by edit distance.
// A missing leading slash is added before comparing. Ties go to the earlier
// route. It reports false when path already matches a route exactly or
// nothing is within reach. Resolve is unaffected.
func (r *Router) Closest(path string) (Link, bool) {
	key := matchKey(path)
	if key == "" {
		return Link{}, false
	}
	if _, ok := r.Match(key); ok {
		return Link{}, false
	}
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	best := -1
	bestDist := maxSuggestDistance + 1
	for i, rt := range r.routes {
		d := levenshtein.ComputeDistance(key, rt.Path)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Link{}, false
	}
	return Link{Label: r.routes[best].Label, Path: r.routes[best].Path}, true
}
