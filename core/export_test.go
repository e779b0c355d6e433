// SPDX-License-Identifier: MIT

package core

// Test bridge exposing private state to core_test only. Files ending in
// _test.go never reach production builds.

// CorruptKindForTest overwrites the stored kind of v without touching its
// payload, producing a record AddVertex would never create.
func CorruptKindForTest(g *Graph, v VertexIndex, k Kind) {
	g.vertices[v].kind = k
}
