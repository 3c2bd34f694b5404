// Package builder assembles deterministic spatial graph fixtures for tests,
// benchmarks, and examples.
//
// Each constructor lays its nodes out on an integer lattice, so every Node
// carries meaningful planar coordinates, and assigns IDs starting at 1 in a
// documented order. There is no randomness anywhere: the same constructors
// in the same order always produce byte-for-byte identical graphs.
//
// Available topologies:
//
//	Path(n, w)        — 1—2—…—n along the x-axis, uniform weight w
//	Grid(cols, rows, w) — row-major lattice with 4-neighbor edges
//	Complete(n, w)    — K_n, every pair joined
//
// Compose them through the single orchestrator:
//
//	g, err := builder.BuildGraph(
//	    builder.Grid(3, 3, 1),
//	)
//
// and refine the result with direct core.Graph calls (extra edges, replaced
// nodes) where a topology alone is not enough.
//
// Errors:
//
//	ErrTooFewNodes   – topology requested with n < 1
//	ErrBadDimensions – grid with non-positive cols or rows
//
// Weight validation is delegated to core.AddEdge, so a negative weight
// surfaces as core.ErrNegativeWeight wrapped in the BuildGraph context.
package builder
