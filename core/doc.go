// Package core provides a minimal, allocation-friendly in-memory spatial
// Graph: uniquely identified nodes with integer planar coordinates, joined
// by weighted undirected edges stored as paired directed arcs.
//
// The Graph G = (V,E) has deliberately narrow semantics:
//
//   - Always undirected – AddEdge materializes both arcs a→b and b→a
//   - Always weighted – weights are non-negative int64 values
//   - Multi-graph – parallel edges between the same endpoints accumulate
//   - Tolerant adjacency – arcs may reference IDs with no Node entry
//   - Last-write-wins nodes – AddNode overwrites on duplicate ID
//
// Why use core.Graph?
//
//   - Single type, zero flags — the spatial shortest-path use case needs
//     exactly one graph shape, so there is nothing to configure.
//   - Total operations — no error juggling while loading thousands of rows;
//     the one signaled error is ErrNegativeWeight at edge insertion.
//   - Clone support — deep copy for snapshot-and-swap rebuilds.
//
// Core methods:
//
//	// Mutation
//	AddNode(n Node)                          // O(1), overwrite on duplicate
//	AddEdge(from, to, weight int64) error    // O(1) amortized, both arcs
//	Clear()                                  // O(1)
//
//	// Query
//	Node(id int64) (Node, bool)              // O(1)
//	HasNode(id int64) bool                   // O(1)
//	Nodes() []Node                           // O(V log V), sorted by ID
//	Arcs(id int64) []Edge                    // O(d), insertion order, copy
//	NodeCount() int                          // O(1)
//	ArcCount() int                           // O(V), directed arcs (2× edges)
//
//	// Cloning
//	Clone() *Graph                           // O(V+E) deep copy
//
// Node struct fields:
//
//	ID int64   // unique, externally assigned (32-bit-range expected)
//	X  int64   // planar coordinate, unused by path-finding
//	Y  int64   // planar coordinate, unused by path-finding
//
// Edge struct fields:
//
//	From   int64   // source node ID of this arc
//	To     int64   // destination node ID of this arc
//	Weight int64   // non-negative traversal cost
//
// Thread safety:
//
//   - Graph carries no locks. Build it single-threaded, then share it
//     read-only across goroutines; or wrap the whole Graph in your own
//     synchronization (RWMutex or snapshot-and-swap) if mutation and
//     queries must overlap.
//
// See the dijkstra package for the shortest-path cost query and the builder
// package for deterministic fixture topologies.
package core
