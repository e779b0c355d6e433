// SPDX-License-Identifier: MIT
//
// File: methods_path.go
// Role: Addressable view: resolve slash-delimited name paths through
//       LocateChild and compose the path of a vertex through Parent.
// Policy:
//   - Misses report (NullVertex, false); nothing here returns an error.
//   - Names are not escaped: a "/" inside a name breaks round-tripping.

package core

import "github.com/katalvlaran/scenegraph/internal/address"

// PathSeparator delimits path segments.
const PathSeparator = address.Separator

// LocateRelative resolves path starting at start, one LocateChild call per
// segment. start == NullVertex searches the roots. One leading "/" is
// ignored, so "/a/b" and "a/b" resolve alike; any other empty segment looks
// up a child named "".
//
// Complexity: O(depth × branching).
func (g *Graph) LocateRelative(path string, start VertexIndex) (VertexIndex, bool) {
	if start != NullVertex && !g.valid(start) {
		return NullVertex, false
	}

	return address.Resolve[VertexIndex](g, start, NullVertex, path)
}

// Locate resolves an absolute path from the roots.
func (g *Graph) Locate(path string) (VertexIndex, bool) {
	return g.LocateRelative(path, NullVertex)
}

// Contains reports whether an absolute path resolves to a vertex.
func (g *Graph) Contains(path string) bool {
	_, ok := g.Locate(path)

	return ok
}

// Path returns the names from v's root down to v joined by "/". NullVertex
// and out-of-range indices map to the root path "".
//
// Complexity: O(depth(v)).
func (g *Graph) Path(v VertexIndex) string {
	if !g.valid(v) {
		return ""
	}

	return address.Compose[VertexIndex](g, v, NullVertex, len(g.vertices))
}

// PathSegments returns the names that Path joins.
func (g *Graph) PathSegments(v VertexIndex) []string {
	if !g.valid(v) {
		return nil
	}

	return address.Chain[VertexIndex](g, v, NullVertex, len(g.vertices))
}

// PathLength returns len(Path(v)) without building the string.
func (g *Graph) PathLength(v VertexIndex) int {
	if !g.valid(v) {
		return 0
	}
	n := len(g.vertices[v].name)
	p, ok := g.Parent(v)
	for steps := 1; ok && steps < len(g.vertices); steps++ {
		n += len(PathSeparator) + len(g.vertices[p].name)
		p, ok = g.Parent(p)
	}

	return n
}
