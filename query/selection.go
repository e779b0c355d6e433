package query

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/traverse"
)

// Selection is a set of vertex indices backed by a 32-bit roaring bitmap.
// Like any index held outside the graph it is invalidated by RemoveVertex.
type Selection struct {
	rb *roaring.Bitmap
}

// NewSelection returns a selection holding vs.
func NewSelection(vs ...core.VertexIndex) *Selection {
	s := &Selection{rb: roaring.New()}
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Add inserts v. NullVertex is ignored.
func (s *Selection) Add(v core.VertexIndex) {
	if v.IsNull() {
		return
	}
	s.rb.Add(uint32(v))
}

// Remove deletes v.
func (s *Selection) Remove(v core.VertexIndex) {
	s.rb.Remove(uint32(v))
}

// Contains reports whether v is selected.
func (s *Selection) Contains(v core.VertexIndex) bool {
	return s.rb.Contains(uint32(v))
}

// Len returns the number of selected vertices.
func (s *Selection) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	return &Selection{rb: s.rb.Clone()}
}

// And keeps only the vertices also in other.
func (s *Selection) And(other *Selection) {
	s.rb.And(other.rb)
}

// Or adds every vertex of other.
func (s *Selection) Or(other *Selection) {
	s.rb.Or(other.rb)
}

// All yields the selected vertices in ascending index order.
func (s *Selection) All() iter.Seq[core.VertexIndex] {
	return func(yield func(core.VertexIndex) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.VertexIndex(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the selected vertices in ascending order.
func (s *Selection) Slice() []core.VertexIndex {
	out := make([]core.VertexIndex, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Subtree selects root and every vertex reachable from it through
// references. A vertex with several parents is included when any of them is
// inside the subtree. An invalid root yields an empty selection.
func Subtree(g *core.Graph, root core.VertexIndex) *Selection {
	s := NewSelection()
	if !g.HasVertex(root) {
		return s
	}
	res, err := traverse.Walk(g, root, traverse.WithOrder(traverse.BreadthFirst))
	if err != nil {
		return s
	}
	for _, v := range res.Order {
		s.Add(v)
	}

	return s
}
