// Package scenegraph is an in-memory scene graph: a forest of named vertices
// carrying sphere, box, mesh or light payloads, addressable by slash paths.
//
// 🚀 What is in the box?
//
//	• Two edge spaces over one dense vertex arena:
//		generic directed edges (a multigraph, self-loops allowed)
//		parent/child references (the hierarchy paths are built from)
//	• Tagged payloads with exhaustive visitor dispatch
//	• Property and component tables that follow every reindex
//	• Paths: Locate("scene/camera/lens") ⇄ Path(v)
//	• Hierarchy walks, CEL queries, YAML manifests and a tree renderer
//
// Indices are dense. RemoveVertex(u) drops everything touching u and shifts
// every index above u down by one, so hold paths or Node IDs, not indices,
// across removals.
//
// Under the hood:
//
//	core/           Graph, payloads, references, paths, property tables
//	traverse/       depth-first and breadth-first hierarchy walks
//	query/          CEL vertex filters and roaring-bitmap selections
//	render/         box-drawing tree output with optional lipgloss styling
//	manifest/       YAML scene documents built into a Graph
//	cmd/scenegraph  CLI: tree, locate, path, inspect, find, stats, walk
//
// Quick picture:
//
//	scene [sphere]
//	├── camera [mesh]
//	│   └── lens [sphere]
//	└── lamp [light]
//	props [box]
//
//	go get github.com/katalvlaran/scenegraph
package scenegraph
