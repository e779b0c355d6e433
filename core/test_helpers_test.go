// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and invariant checks shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenegraph/core"
)

// Common vertex names used across core tests.
const (
	NameScene  = "scene"
	NameCamera = "camera"
	NameLens   = "lens"
	NameProps  = "props"
	NameLamp   = "lamp"
	NameCube   = "cube"
)

// sceneFixture is the small forest most tests start from:
//
//	scene (sphere)
//	├── camera (mesh)
//	│   └── lens (sphere)
//	└── lamp (light)
//	props (box)           second root
type sceneFixture struct {
	g                               *core.Graph
	scene, camera, lens, lamp, prop core.VertexIndex
}

func newSceneFixture(t *testing.T, opts ...core.GraphOption) sceneFixture {
	t.Helper()
	g := core.NewGraph(opts...)
	f := sceneFixture{g: g}
	var err error

	f.scene, err = g.AddVertex(core.NewSphere(), NameScene, core.Node{Content: "root"})
	require.NoError(t, err)
	f.camera, err = g.AddVertex(&core.Mesh{AssetPath: "camera.glb"}, NameCamera, core.Node{}, core.WithParent(f.scene))
	require.NoError(t, err)
	f.lens, err = g.AddVertex(&core.Sphere{Radius: 0.1}, NameLens, core.Node{}, core.WithParent(f.camera))
	require.NoError(t, err)
	f.lamp, err = g.AddVertex(core.NewLight(), NameLamp, core.Node{Flags: 1}, core.WithParent(f.scene))
	require.NoError(t, err)
	f.prop, err = g.AddVertex(core.NewBox(), NameProps, core.Node{})
	require.NoError(t, err)

	return f
}

// requireMirrors checks, for every vertex, that each out-edge has a matching
// in-edge entry on its target (with multiplicity) and that each child
// reference has a matching parent entry, and vice versa.
func requireMirrors(t *testing.T, g *core.Graph) {
	t.Helper()
	out := map[core.Edge]int{}
	in := map[core.Edge]int{}
	children := map[core.Edge]int{}
	parents := map[core.Edge]int{}
	for v := range g.Vertices() {
		for e := range g.OutEdges(v) {
			require.Equal(t, v, e.From)
			require.True(t, g.HasVertex(e.To), "dangling out-edge %v", e)
			out[e]++
		}
		for e := range g.InEdges(v) {
			require.Equal(t, v, e.To)
			require.True(t, g.HasVertex(e.From), "dangling in-edge %v", e)
			in[e]++
		}
		for e := range g.Children(v) {
			require.Equal(t, v, e.Parent())
			require.True(t, g.HasVertex(e.Child()), "dangling child %v", e)
			children[e]++
		}
		for e := range g.Parents(v) {
			require.Equal(t, v, e.Child())
			require.True(t, g.HasVertex(e.Parent()), "dangling parent %v", e)
			parents[e]++
		}
	}
	require.Equal(t, out, in, "out/in mirror")
	require.Equal(t, children, parents, "children/parents mirror")
}
