// Package core defines the central Graph, Node, and Edge types and provides
// the primitives for building and querying spatial graphs in memory.
//
// A Graph owns two mappings: node ID → Node, and node ID → ordered adjacency
// list of outgoing arcs. Logical edges are undirected; each one materializes
// as two independent directed arcs so that adjacency lookups stay O(1) per
// direction.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNegativeWeight - edge weight below zero rejected at insertion.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an attempt to insert an edge with a negative
	// weight. Dijkstra's optimality proof requires non-negative weights, so
	// negative weights are rejected at the door rather than left to corrupt
	// query results later.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Node represents a spatial point in the graph.
//
// ID uniquely identifies this Node within its Graph and is assigned
// externally (it is expected to fit the 32-bit integer range, e.g. a
// storage-layer primary key). X and Y are planar coordinates carried for
// display and context; the shortest-path query never reads them.
type Node struct {
	// ID is the unique identifier for this Node.
	ID int64

	// X is the horizontal planar coordinate.
	X int64

	// Y is the vertical planar coordinate.
	Y int64
}

// Edge represents one directed arc as stored in an adjacency list.
//
// A logical edge between two nodes is undirected: inserting it materializes
// one arc From→To and one synthesized mirror To→From, each carrying the same
// non-negative Weight and each stored independently in the adjacency list of
// its own source node.
type Edge struct {
	// From is the source node ID of this arc.
	From int64

	// To is the destination node ID of this arc.
	To int64

	// Weight is the non-negative cost of traversing this arc.
	Weight int64
}

// Graph is the core in-memory spatial graph.
//
// It is always weighted and undirected, permits parallel edges between the
// same endpoints (multi-graph semantics), and tolerates arcs referencing
// node IDs that have no Node entry — the shortest-path query needs only
// adjacency, not node attributes.
//
// Graph carries no internal locking. Mutation (AddNode/AddEdge) must not be
// interleaved with queries; read-only access from multiple goroutines against
// an unchanging Graph is safe without coordination.
type Graph struct {
	// nodes maps node ID → Node. Last insertion wins on duplicate IDs.
	nodes map[int64]Node

	// adjacency maps node ID → ordered list of outgoing arcs.
	adjacency map[int64][]Edge
}

// NewGraph creates an empty Graph with no nodes and no adjacency entries.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int64]Node),
		adjacency: make(map[int64][]Edge),
	}
}
