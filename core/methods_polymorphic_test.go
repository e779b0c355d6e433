// SPDX-License-Identifier: MIT
// Package core_test verifies tagged payload access and Visitor dispatch.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenegraph/core"
)

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range core.Kinds() {
		assert.True(t, k.Valid())
		got, err := core.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := core.ParseKind("teapot")
	assert.ErrorIs(t, err, core.ErrUnknownTag)
	assert.False(t, core.Kind(9).Valid())
	assert.Equal(t, "kind(9)", core.Kind(9).String())
}

func TestKind_HoldsAndObject(t *testing.T) {
	f := newSceneFixture(t)

	k, ok := f.g.Kind(f.camera)
	require.True(t, ok)
	assert.Equal(t, core.KindMesh, k)
	assert.True(t, f.g.Holds(core.KindLight, f.lamp))
	assert.False(t, f.g.Holds(core.KindBox, f.lamp))
	assert.False(t, f.g.Holds(core.KindBox, core.NullVertex))

	_, ok = f.g.Kind(core.NullVertex)
	assert.False(t, ok)
	assert.Nil(t, f.g.Object(42))
	assert.IsType(t, &core.Box{}, f.g.Object(f.prop))
}

// Exactly one typed accessor succeeds for each vertex; the rest report a
// mismatch through the failing form and false through the Try form.
func TestTypedAccessors_ExactlyOneSucceeds(t *testing.T) {
	f := newSceneFixture(t)
	g := f.g

	for v := range g.Vertices() {
		kind, ok := g.Kind(v)
		require.True(t, ok)

		results := map[core.Kind]error{}
		_, results[core.KindSphere] = g.Sphere(v)
		_, results[core.KindBox] = g.Box(v)
		_, results[core.KindMesh] = g.Mesh(v)
		_, results[core.KindLight] = g.Light(v)

		tries := map[core.Kind]bool{}
		_, tries[core.KindSphere] = g.TrySphere(v)
		_, tries[core.KindBox] = g.TryBox(v)
		_, tries[core.KindMesh] = g.TryMesh(v)
		_, tries[core.KindLight] = g.TryLight(v)

		for k, err := range results {
			if k == kind {
				assert.NoError(t, err, "vertex %d kind %s", v, k)
				assert.True(t, tries[k])
				continue
			}
			assert.ErrorIs(t, err, core.ErrTagMismatch, "vertex %d kind %s", v, k)
			assert.False(t, tries[k])
		}
	}
}

func TestValue_TryValue(t *testing.T) {
	f := newSceneFixture(t)

	p, err := f.g.Value(core.KindSphere, f.lens)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, p.(*core.Sphere).Radius, 1e-12)

	_, err = f.g.Value(core.KindBox, f.lens)
	assert.ErrorIs(t, err, core.ErrTagMismatch)
	_, err = f.g.Value(core.KindBox, 77)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	p, ok := f.g.TryValue(core.KindBox, f.lens)
	assert.False(t, ok)
	assert.Nil(t, p)

	m, err := core.ValueOf[*core.Mesh](f.g, f.camera)
	require.NoError(t, err)
	assert.Equal(t, "camera.glb", m.AssetPath)
	_, ok = core.TryValueOf[*core.Light](f.g, f.camera)
	assert.False(t, ok)
}

func TestTypedAccessor_SharesStorage(t *testing.T) {
	f := newSceneFixture(t)

	l, err := f.g.Light(f.lamp)
	require.NoError(t, err)
	l.Y = 12

	again, ok := f.g.TryLight(f.lamp)
	require.True(t, ok)
	assert.Equal(t, 12.0, again.Y)
}

// kindNamer is a full Visitor implementation.
type kindNamer struct{}

func (kindNamer) VisitSphere(v core.VertexIndex, s *core.Sphere) string {
	return fmt.Sprintf("%d:sphere(r=%g)", v, s.Radius)
}
func (kindNamer) VisitBox(v core.VertexIndex, _ *core.Box) string   { return fmt.Sprintf("%d:box", v) }
func (kindNamer) VisitMesh(v core.VertexIndex, m *core.Mesh) string { return fmt.Sprintf("%d:mesh(%s)", v, m.AssetPath) }
func (kindNamer) VisitLight(v core.VertexIndex, _ *core.Light) string {
	return fmt.Sprintf("%d:light", v)
}

func TestVisit_RoutesByKind(t *testing.T) {
	f := newSceneFixture(t)

	var got []string
	for v := range f.g.Vertices() {
		s, err := core.Visit[string](f.g, kindNamer{}, v)
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{
		"0:sphere(r=1)",
		"1:mesh(camera.glb)",
		"2:sphere(r=0.1)",
		"3:light",
		"4:box",
	}, got)

	_, err := core.Visit[string](f.g, kindNamer{}, core.NullVertex)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVisitorFuncs_NilFieldYieldsZero(t *testing.T) {
	f := newSceneFixture(t)
	calls := 0
	visitor := core.VisitorFuncs[int]{
		Sphere: func(core.VertexIndex, *core.Sphere) int { calls++; return 1 },
	}

	n, err := core.Visit[int](f.g, visitor, f.scene)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = core.Visit[int](f.g, visitor, f.prop)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, calls)
}

func TestVisitVertex_Untyped(t *testing.T) {
	f := newSceneFixture(t)
	visitor := core.VisitorFuncs[any]{
		Light: func(_ core.VertexIndex, l *core.Light) any { return l.DirX },
	}

	out, err := f.g.VisitVertex(visitor, f.lamp)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out)
}

func TestVisit_CorruptedKind(t *testing.T) {
	f := newSceneFixture(t)
	core.CorruptKindForTest(f.g, f.prop, core.Kind(200))

	_, err := core.Visit[string](f.g, kindNamer{}, f.prop)
	assert.ErrorIs(t, err, core.ErrUnknownTag)

	clone := f.g.Clone()
	assert.Same(t, f.g.Object(f.prop), clone.Object(f.prop), "unknown kinds are not deep-copied")
}
