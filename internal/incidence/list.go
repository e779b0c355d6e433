// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Per-vertex incidence list and the index-shift primitive used when a
//       vertex is removed from the middle of a dense arena.
// Determinism:
//   - Entries keep insertion order; every operation preserves the relative
//     order of the entries it does not touch.

// Package incidence stores edge lists as dense slices of neighbour indices.
//
// A List holds, for one vertex, the index of the vertex at the other end of
// each incident edge. Parallel edges are repeated entries. Removal is
// positional (first match) or total (all matches), and Reindex rewrites a
// list after the arena dropped one slot.
package incidence

import (
	"iter"
	"slices"
)

// Index is the set of unsigned integer types usable as vertex positions.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// List is an ordered multiset of neighbour indices.
type List[V Index] []V

// Push appends v.
func (l *List[V]) Push(v V) { *l = append(*l, v) }

// Len returns the number of entries, counting parallel edges separately.
func (l List[V]) Len() int { return len(l) }

// Contains reports whether at least one entry equals v.
func (l List[V]) Contains(v V) bool { return slices.Contains(l, v) }

// Count returns how many entries equal v.
func (l List[V]) Count(v V) int {
	n := 0
	for _, x := range l {
		if x == v {
			n++
		}
	}

	return n
}

// RemoveFirst deletes the first entry equal to v and reports whether one existed.
//
// Complexity: O(len(l)).
func (l *List[V]) RemoveFirst(v V) bool {
	i := slices.Index(*l, v)
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)

	return true
}

// RemoveAll deletes every entry equal to v and returns how many were removed.
//
// Complexity: O(len(l)).
func (l *List[V]) RemoveAll(v V) int {
	before := len(*l)
	*l = slices.DeleteFunc(*l, func(x V) bool { return x == v })

	return before - len(*l)
}

// Reindex rewrites the list after slot u was removed from the arena.
//
// Entries equal to u are dropped; entries greater than u are decremented by
// one; entries below u are untouched. The rewrite is in place and returns the
// number of dropped entries.
//
// Complexity: O(len(l)), no allocation.
func (l *List[V]) Reindex(u V) (dropped int) {
	out := (*l)[:0]
	for _, x := range *l {
		if x == u {
			dropped++
			continue
		}
		if x > u {
			x--
		}
		out = append(out, x)
	}
	*l = out

	return dropped
}

// Clone returns an independent copy; a nil list clones to nil.
func (l List[V]) Clone() List[V] { return slices.Clone(l) }

// All returns a lazy sequence over the entries. The sequence ranges over the
// list as it was when All was called; appending to or removing from the
// list while the sequence is consumed is undefined.
func (l List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, x := range l {
			if !yield(x) {
				return
			}
		}
	}
}
