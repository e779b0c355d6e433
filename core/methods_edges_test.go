// SPDX-License-Identifier: MIT
// Package core_test verifies the generic directed-multigraph edge space.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenegraph/core"
)

func TestAddEdge_HasEdge(t *testing.T) {
	f := newSceneFixture(t)
	g := f.g

	assert.False(t, g.HasEdge(f.camera, f.lamp))
	e, err := g.AddEdge(f.camera, f.lamp)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: f.camera, To: f.lamp}, e)
	assert.Equal(t, f.camera, g.Source(e))
	assert.Equal(t, f.lamp, g.Target(e))
	assert.True(t, g.HasEdge(f.camera, f.lamp))
	assert.False(t, g.HasEdge(f.lamp, f.camera), "edges are directed")

	require.NoError(t, g.RemoveEdge(e))
	assert.False(t, g.HasEdge(f.camera, f.lamp))
	requireMirrors(t, g)
}

func TestAddEdge_SelfLoopAndInvalid(t *testing.T) {
	f := newSceneFixture(t)

	_, err := f.g.AddEdge(f.lens, f.lens)
	require.NoError(t, err)
	assert.True(t, f.g.HasEdge(f.lens, f.lens))
	assert.Equal(t, 2, f.g.Degree(f.lens))

	_, err = f.g.AddEdge(f.lens, core.NullVertex)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = f.g.AddEdge(100, f.lens)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	requireMirrors(t, f.g)
}

func TestRemoveEdge_RemovesExactlyOneParallel(t *testing.T) {
	f := newSceneFixture(t)
	g := f.g
	u, v := f.scene, f.prop

	e1, err := g.AddEdge(u, v)
	require.NoError(t, err)
	_, err = g.AddEdge(u, v)
	require.NoError(t, err)
	require.Equal(t, 2, g.OutDegree(u))
	require.Equal(t, 2, g.InDegree(v))

	require.NoError(t, g.RemoveEdge(e1))
	assert.True(t, g.HasEdge(u, v))
	assert.Equal(t, 1, g.OutDegree(u))
	assert.Equal(t, 1, g.InDegree(v))

	require.NoError(t, g.RemoveEdge(e1))
	assert.False(t, g.HasEdge(u, v))
	assert.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(core.Edge{From: core.NullVertex, To: v}), core.ErrVertexNotFound)
	requireMirrors(t, g)
}

func TestRemoveEdges_RemovesAllBetweenOrderedPair(t *testing.T) {
	f := newSceneFixture(t)
	g := f.g
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(f.lamp, f.prop)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(f.prop, f.lamp)
	require.NoError(t, err)
	_, err = g.AddEdge(f.lamp, f.scene)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdges(f.lamp, f.prop))
	assert.False(t, g.HasEdge(f.lamp, f.prop))
	assert.True(t, g.HasEdge(f.prop, f.lamp), "reverse direction untouched")
	assert.True(t, g.HasEdge(f.lamp, f.scene))

	require.NoError(t, g.RemoveEdges(f.lamp, f.prop), "removing nothing is fine")
	assert.ErrorIs(t, g.RemoveEdges(f.lamp, 77), core.ErrVertexNotFound)
	requireMirrors(t, g)
}

func TestOutInEdges_Order(t *testing.T) {
	f := newSceneFixture(t)
	g := f.g
	for _, to := range []core.VertexIndex{f.prop, f.lamp, f.prop} {
		_, err := g.AddEdge(f.scene, to)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(f.lens, f.prop)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: f.scene, To: f.prop},
		{From: f.scene, To: f.lamp},
		{From: f.scene, To: f.prop},
	}, slices.Collect(g.OutEdges(f.scene)))
	assert.Equal(t, []core.Edge{
		{From: f.scene, To: f.prop},
		{From: f.scene, To: f.prop},
		{From: f.lens, To: f.prop},
	}, slices.Collect(g.InEdges(f.prop)))
	assert.Equal(t, []core.VertexIndex{f.prop, f.lamp, f.prop}, slices.Collect(g.AdjacentVertices(f.scene)))

	assert.Equal(t, 3, g.OutDegree(f.scene))
	assert.Equal(t, 0, g.InDegree(f.scene))
	assert.Equal(t, 3, g.Degree(f.prop))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestOutEdges_OutOfRange(t *testing.T) {
	g := core.NewGraph()

	assert.Empty(t, slices.Collect(g.OutEdges(3)))
	assert.Empty(t, slices.Collect(g.InEdges(core.NullVertex)))
	assert.Empty(t, slices.Collect(g.AdjacentVertices(0)))
	assert.Equal(t, 0, g.Degree(0))
	assert.False(t, g.HasEdge(0, 1))
}

func TestOutEdges_EarlyBreak(t *testing.T) {
	f := newSceneFixture(t)
	for i := 0; i < 5; i++ {
		_, err := f.g.AddEdge(f.scene, f.prop)
		require.NoError(t, err)
	}
	n := 0
	for range f.g.OutEdges(f.scene) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestEdgeSpaces_AreIndependent(t *testing.T) {
	f := newSceneFixture(t)

	assert.False(t, f.g.HasEdge(f.scene, f.camera), "references are not generic edges")
	_, err := f.g.AddEdge(f.camera, f.scene)
	require.NoError(t, err)
	assert.False(t, f.g.HasReference(f.camera, f.scene))
	assert.Equal(t, 0, f.g.OutDegree(f.scene))
}
