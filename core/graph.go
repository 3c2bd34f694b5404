// Package core provides the fundamental in-memory spatial Graph
// implementation.
//
// All operations are total over their inputs: duplicate nodes overwrite,
// parallel edges accumulate, and unknown IDs answer with zero values.
// The only signaled error is ErrNegativeWeight from AddEdge.
package core

import "sort"

// AddNode inserts n into the graph, keyed by its ID.
// If a node with the same ID already exists, it is overwritten
// (last-write-wins). Coordinates are not validated.
//
// Complexity: O(1)
func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// AddEdge inserts a logical undirected edge between from and to with the
// given weight: one arc from→to is appended to from's adjacency list, and a
// synthesized mirror arc to→from is appended to to's adjacency list. Both
// arcs are fresh values carrying the same weight.
//
// Neither endpoint needs a Node entry; adjacency for unknown IDs is
// tolerated. Parallel edges between the same endpoints are not deduplicated —
// both remain, and the query implicitly prefers the cheaper one.
//
// Returns ErrNegativeWeight if weight < 0; Dijkstra requires non-negative
// weights.
//
// Complexity: O(1) amortized per insertion.
func (g *Graph) AddEdge(from, to, weight int64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})

	return nil
}

// Node returns the Node with the given ID and whether it exists.
//
// Complexity: O(1)
func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether the graph contains a Node entry with the given ID.
// An ID may appear in adjacency lists without having a Node entry; HasNode
// reports only on the node mapping.
//
// Complexity: O(1)
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all Node entries sorted by ascending ID.
// The slice is freshly allocated; mutating it does not affect the graph.
//
// Complexity: O(V log V)
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Arcs returns a copy of the outgoing arcs recorded for the given node ID,
// in insertion order. Returns nil if the ID has no adjacency entry.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph) Arcs(id int64) []Edge {
	arcs, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Edge, len(arcs))
	copy(out, arcs)

	return out
}

// NodeCount returns the number of Node entries in the graph.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// ArcCount returns the total number of directed arcs stored in the graph.
// Each logical undirected edge contributes two arcs.
//
// Complexity: O(V)
func (g *Graph) ArcCount() int {
	total := 0
	for _, arcs := range g.adjacency {
		total += len(arcs)
	}

	return total
}

// Clear removes all nodes and arcs, returning the graph to its
// freshly-constructed state.
//
// Complexity: O(1)
func (g *Graph) Clear() {
	g.nodes = make(map[int64]Node)
	g.adjacency = make(map[int64][]Edge)
}

// Clone returns a deep copy of the graph: the node mapping and every
// adjacency slice are duplicated, so mutations on the clone never touch the
// original. Useful for snapshot-and-swap schemes where a hosting system
// rebuilds the graph while queries run against the old snapshot.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for id, n := range g.nodes {
		c.nodes[id] = n
	}
	for id, arcs := range g.adjacency {
		dup := make([]Edge, len(arcs))
		copy(dup, arcs)
		c.adjacency[id] = dup
	}

	return c
}
