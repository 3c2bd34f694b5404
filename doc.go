// Package waypath is an in-memory weighted spatial graph with a single
// question at its heart: what is the cheapest total edge weight between
// two nodes?
//
// 🚀 What is waypath?
//
//	A small, pure-Go library that brings together:
//		• Core primitives: spatial nodes (integer planar coordinates) and
//		  weighted undirected edges, stored as paired directed arcs
//		• Shortest paths: Dijkstra with a lazy-deletion priority queue and
//		  early exit on the target
//		• Builders: deterministic path/grid/complete topologies for fixtures
//
// ✨ Why choose waypath?
//
//   - Minimal API – build a graph with AddNode/AddEdge, query with ShortestPath
//   - Total operations – unknown endpoints answer with a sentinel, not an error
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/     — fundamental Graph, Node, Edge types and mutation primitives
//	dijkstra/ — the shortest-path cost query
//	builder/  — deterministic topology constructors for tests and benchmarks
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	four spatial nodes joined by four weighted edges; ShortestPath(1, 4)
//	answers the cheapest corner-to-corner cost.
//
// The graph itself carries no locks: populate it once, then query it from
// as many goroutines as you like, or wrap it in your own synchronization
// if you rebuild it while queries are in flight.
//
//	go get github.com/kelvaren/waypath
package waypath
