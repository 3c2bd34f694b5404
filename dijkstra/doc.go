// Package dijkstra provides the pairwise shortest-path cost query for
// weighted spatial graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath answers the minimum total edge weight between two node
//     IDs in O((V + E) log V) time over the reachable subgraph.
//   - It expands a min-cost frontier greedily and returns the moment the
//     target is popped — the first pop is optimal under non-negative weights.
//   - Only the scalar cost is produced; no node sequence is reconstructed.
//
// When to use:
//
//   - Answering "how far is A from B" over a static weighted graph, e.g.
//     spatial nodes loaded from storage rows by an external collaborator.
//   - As the query half of a load-then-serve pattern: build a core.Graph
//     once, then answer many independent cost queries against it.
//
// Key features:
//
//   - Total API: no error returns. Unknown IDs, empty graphs, and severed
//     components all answer the Unreachable sentinel; identity queries
//     answer 0.
//   - Lazy-deletion frontier: improved distances push duplicates instead of
//     decreasing keys, and stale pops are skipped by a cost comparison — no
//     decrease-key-capable structure is needed.
//   - WithMaxCost: bounds exploration by cumulative cost, saving work when
//     only nearby targets matter.
//
// Sentinel semantics:
//
//   - Unreachable == math.MaxInt64. Callers must treat it as "no path
//     exists", never as a finite distance. A legitimately enormous finite
//     cost could in principle collide with the sentinel; keep summed weights
//     comfortably below math.MaxInt64 (storage-assigned 32-bit-range weights
//     leave ample headroom).
//
// Thread safety:
//
//   - Each call allocates its own search state, so concurrent ShortestPath
//     calls against an unchanging core.Graph are safe. Synchronize
//     externally if the graph is mutated while queries run.
//
// See also:
//
//   - core.Graph: graph construction, node/edge insertion, adjacency access.
//   - builder: deterministic topologies for exercising the query in tests.
package dijkstra
