package traverse_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenegraph/core"
	"github.com/katalvlaran/scenegraph/traverse"
)

// buildBinaryTree creates a complete binary hierarchy of the given depth
// (2^depth-1 boxes). Vertex i-1 holds "T-i"; the parent of T-i is T-(i/2).
func buildBinaryTree(t *testing.T, depth int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < 1<<depth; i++ {
		var opts []core.VertexOption
		if i > 1 {
			opts = append(opts, core.WithParent(core.VertexIndex(i/2-1)))
		}
		_, err := g.AddVertex(core.NewBox(), fmt.Sprintf("T-%d", i), core.Node{}, opts...)
		require.NoError(t, err)
	}

	return g
}

func names(g *core.Graph, vs []core.VertexIndex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = g.VertexName(v)
	}

	return out
}

func TestWalk_NilAndMissing(t *testing.T) {
	res, err := traverse.Walk(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	g := core.NewGraph()
	res, err = traverse.Walk(g, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrStartVertexNotFound)

	_, err = traverse.Walk(g, core.NullVertex, traverse.WithOrder(traverse.Order(7)))
	assert.ErrorIs(t, err, traverse.ErrUnknownOrder)
}

func TestWalk_DepthFirstPreOrder(t *testing.T) {
	g := buildBinaryTree(t, 3)

	res, err := traverse.Walk(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-4", "T-5", "T-3", "T-6", "T-7"}, names(g, res.Order))
	assert.Equal(t, 2, res.Depth[6])
	assert.Equal(t, core.VertexIndex(2), res.Parent[6])
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent)
}

func TestWalk_BreadthFirst(t *testing.T) {
	g := buildBinaryTree(t, 3)

	res, err := traverse.Walk(g, 0, traverse.WithOrder(traverse.BreadthFirst))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-3", "T-4", "T-5", "T-6", "T-7"}, names(g, res.Order))
}

func TestWalk_MaxDepth(t *testing.T) {
	g := buildBinaryTree(t, 4)

	for _, order := range []traverse.Order{traverse.DepthFirst, traverse.BreadthFirst} {
		t.Run(order.String(), func(t *testing.T) {
			res, err := traverse.Walk(g, 0, traverse.WithOrder(order), traverse.WithMaxDepth(1))
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"T-1", "T-2", "T-3"}, names(g, res.Order))

			res, err = traverse.Walk(g, 0, traverse.WithOrder(order), traverse.WithMaxDepth(0))
			require.NoError(t, err)
			assert.Equal(t, []string{"T-1"}, names(g, res.Order))
		})
	}
}

func TestWalk_ForestFromNull(t *testing.T) {
	g := buildBinaryTree(t, 2)
	extra, err := g.AddVertex(core.NewSphere(), "solo", core.Node{})
	require.NoError(t, err)

	res, err := traverse.Walk(g, core.NullVertex)
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-3", "solo"}, names(g, res.Order))
	assert.Equal(t, 0, res.Depth[extra])
}

func TestWalk_SharedChildAndCycle(t *testing.T) {
	g := buildBinaryTree(t, 2) // T-1 → T-2, T-3
	_, err := g.AddReference(2, 1) // T-3 → T-2: T-2 has two parents
	require.NoError(t, err)
	_, err = g.AddReference(1, 0) // T-2 → T-1: cycle
	require.NoError(t, err)

	res, err := traverse.Walk(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-3"}, names(g, res.Order), "each vertex once")

	res, err = traverse.Walk(g, 2, traverse.WithOrder(traverse.BreadthFirst))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-3", "T-2", "T-1"}, names(g, res.Order))
}

func TestWalk_FilterChild(t *testing.T) {
	g := buildBinaryTree(t, 3)

	res, err := traverse.Walk(g, 0, traverse.WithFilterChild(func(_, child core.VertexIndex) bool {
		return g.VertexName(child) != "T-2"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-3", "T-6", "T-7"}, names(g, res.Order))
	assert.Equal(t, 1, res.Skipped)
	assert.False(t, res.Visited(1))
}

func TestWalk_Hooks(t *testing.T) {
	g := buildBinaryTree(t, 2)
	var events []string
	res, err := traverse.Walk(g, 0,
		traverse.WithOnVisit(func(v core.VertexIndex, d int) error {
			events = append(events, fmt.Sprintf("in %s@%d", g.VertexName(v), d))
			return nil
		}),
		traverse.WithOnExit(func(v core.VertexIndex, _ int) error {
			events = append(events, "out "+g.VertexName(v))
			return nil
		}))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.Equal(t, []string{"in T-1@0", "in T-2@1", "out T-2", "in T-3@1", "out T-3", "out T-1"}, events)
}

func TestWalk_HookErrorsAbort(t *testing.T) {
	g := buildBinaryTree(t, 3)
	boom := errors.New("boom")

	res, err := traverse.Walk(g, 0, traverse.WithOnVisit(func(v core.VertexIndex, _ int) error {
		if g.VertexName(v) == "T-5" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, []string{"T-1", "T-2", "T-4", "T-5"}, names(g, res.Order), "partial result")

	_, err = traverse.Walk(g, 0, traverse.WithOnExit(func(core.VertexIndex, int) error { return boom }))
	assert.ErrorIs(t, err, boom)

	_, err = traverse.Walk(g, 0, traverse.WithOrder(traverse.BreadthFirst),
		traverse.WithOnVisit(func(core.VertexIndex, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestWalk_Cancelled(t *testing.T) {
	g := buildBinaryTree(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := traverse.Walk(g, 0, traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]traverse.Order{
		"dfs": traverse.DepthFirst, "depth-first": traverse.DepthFirst,
		"bfs": traverse.BreadthFirst, "breadth-first": traverse.BreadthFirst,
	} {
		got, err := traverse.ParseOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := traverse.ParseOrder("random")
	assert.ErrorIs(t, err, traverse.ErrUnknownOrder)
	assert.Equal(t, "order(9)", traverse.Order(9).String())
}
