// Package address resolves and composes slash-delimited vertex paths over any
// graph that can locate a child by name and report a vertex's parent.
//
// Names are not escaped: a name containing Separator yields a path that does
// not round-trip.
package address

import (
	"slices"
	"strings"
)

// Separator delimits path segments.
const Separator = "/"

// Locator finds a direct child of parent by name. The graph's null vertex as
// parent means "search the roots".
type Locator[V comparable] interface {
	LocateChild(parent V, name string) (V, bool)
}

// Namer exposes the per-vertex name and the authoritative parent.
type Namer[V comparable] interface {
	VertexName(v V) string
	Parent(v V) (V, bool)
}

// Segments splits path on Separator. One leading separator marks the path
// as absolute and is dropped; every other empty segment is kept, since ""
// is a legal vertex name. "" and "/" have no segments.
func Segments(path string) []string {
	path = strings.TrimPrefix(path, Separator)
	if path == "" {
		return nil
	}

	return strings.Split(path, Separator)
}

// Resolve walks path from start one segment at a time. The first segment that
// fails to resolve short-circuits to (null, false). An empty path resolves to
// start itself, which is reported as found unless start is null.
func Resolve[V comparable](g Locator[V], start, null V, path string) (V, bool) {
	v := start
	for _, seg := range Segments(path) {
		next, ok := g.LocateChild(v, seg)
		if !ok {
			return null, false
		}
		v = next
	}

	return v, v != null
}

// Chain returns the names from the top-most ancestor down to v. The walk
// stops after limit steps so a cyclic parent chain cannot loop forever.
func Chain[V comparable](g Namer[V], v, null V, limit int) []string {
	var names []string
	for steps := 0; v != null && steps < limit; steps++ {
		names = append(names, g.VertexName(v))
		p, ok := g.Parent(v)
		if !ok {
			break
		}
		v = p
	}
	slices.Reverse(names)

	return names
}

// Compose joins the Chain of v with Separator; the null vertex maps to "".
func Compose[V comparable](g Namer[V], v, null V, limit int) string {
	return strings.Join(Chain(g, v, null, limit), Separator)
}

// Join builds a path from segments; Segments(Join(s...)) == s for any s
// whose first element is not empty.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}
