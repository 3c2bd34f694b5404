// Package dijkstra implements the pairwise shortest-path cost query on
// core spatial graphs.
//
// The implementation is the lazy-deletion variant of Dijkstra's algorithm:
// improved distances push duplicate entries onto the frontier instead of
// decreasing keys in place, and stale entries are discarded on pop by
// comparing against the recorded best distance. Popping the target ends the
// query immediately — with non-negative weights the first pop of a node
// carries its optimal cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is expanded at most once: up to V useful pops.
//   - Each arc relaxation may push one frontier entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance map.
//   - O(E) worst-case frontier entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - The distance map is seeded only with the source; absence of an entry
//     means "infinity", so no upfront O(V) initialization pass is needed.
//   - Unknown endpoints are not validated: a source with no adjacency simply
//     exhausts the frontier after the seed pop and answers Unreachable.
//   - Negative weights cannot occur here because core.AddEdge rejects them.
package dijkstra

import (
	"container/heap"

	"github.com/kelvaren/waypath/core"
)

// ShortestPath returns the minimum total edge weight of any path between
// from and to in g, or Unreachable if no path exists. It accepts functional
// options to customize behavior (WithMaxCost).
//
// The query is total: unknown node IDs, an empty graph, or a nil graph all
// answer Unreachable rather than signaling an error. Querying a node against
// itself answers 0 without traversing any arcs, even when the ID is unknown
// to the graph.
//
// Each call allocates its own transient search state, so concurrent queries
// against an unchanging graph are safe without coordination.
//
// Complexity: O((V + E) log V) over the reachable subgraph.
func ShortestPath(g *core.Graph, from, to int64, opts ...Option) int64 {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) A nil graph behaves as an empty one: the seed pop still answers
	//    the from == to identity, everything else is unreachable.
	if g == nil {
		if from == to {
			return 0
		}

		return Unreachable
	}

	// 3) Seed the search state: best-known distances and the min-cost
	//    frontier, both fresh per query.
	dist := make(map[int64]int64)
	dist[from] = 0

	pq := make(frontier, 0, 1)
	heap.Init(&pq)
	heap.Push(&pq, &candidate{cost: 0, id: from})

	// 4) Greedy expansion in ascending cost order.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*candidate)

		// 4a) First pop of the target is optimal: stop here.
		if item.id == to {
			return item.cost
		}

		// 4b) Lazy deletion: a popped cost above the recorded best marks a
		//     stale duplicate from an earlier, since-improved push.
		if best, ok := dist[item.id]; ok && item.cost > best {
			continue
		}

		// 4c) Relax every outgoing arc of the popped node.
		for _, arc := range g.Arcs(item.id) {
			next := item.cost + arc.Weight

			// Respect the cost budget; nodes beyond it stay unexplored.
			if next > cfg.MaxCost {
				continue
			}

			// Record strictly improving candidates and push them; existing
			// frontier entries for arc.To are left to go stale.
			if best, ok := dist[arc.To]; !ok || next < best {
				dist[arc.To] = next
				heap.Push(&pq, &candidate{cost: next, id: arc.To})
			}
		}
	}

	// 5) Frontier exhausted without popping the target: no path exists.
	return Unreachable
}

// candidate is one frontier entry: a node ID and the cumulative cost at
// which it was pushed. Duplicates for the same ID are expected under lazy
// deletion; only the cheapest survives the stale check.
type candidate struct {
	cost int64 // cumulative cost from the source
	id   int64 // node ID
}

// frontier is a min-heap of *candidate ordered by ascending cost, the
// transient priority queue behind one ShortestPath call. Ties are broken by
// heap order, which is immaterial for correctness: tied pops carry equal,
// already-optimal costs.
type frontier []*candidate

// Len returns the number of entries in the frontier.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two entries in the frontier.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new entry x onto the frontier.
// Called by heap.Push; x must be of type *candidate.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*candidate)) }

// Pop removes and returns the smallest entry from the frontier.
// Called by heap.Pop; returns interface{} that must be cast to *candidate.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
