// Package dijkstra defines the result sentinel and configuration options
// for the shortest-path cost query on core spatial graphs.
//
// ShortestPath computes the minimum total edge weight between two node IDs
// using Dijkstra's algorithm with non-negative weights. The query is total
// over its inputs: there are no error returns, and pairs with no connecting
// path answer with the Unreachable sentinel.
//
// Options:
//
//	– WithMaxCost: cap on cumulative cost; candidates beyond it are not explored.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the sentinel cost returned when no path exists between the
// queried endpoints. It is the maximum representable cost, so callers must
// treat it as "no path", never as a literal finite distance; arithmetic on
// it would overflow.
const Unreachable int64 = math.MaxInt64

// ErrBadMaxCost indicates that WithMaxCost was given a negative value,
// which is not meaningful for a cost budget. Raised via panic from the
// option constructor, as invalid configuration is a programming error.
var ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

// Options configures the behavior of a single ShortestPath query.
//
// MaxCost – cumulative-cost budget; candidate paths whose cost would exceed
// it are not recorded or pushed. Must be ≥ 0. Default is math.MaxInt64
// (no cap), under which the query explores everything reachable.
type Options struct {
	MaxCost int64 // Maximum cumulative cost to explore
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost sets a cumulative-cost budget for the query.
// Nodes whose cheapest-known cost from the source would exceed max are never
// explored, so a target beyond the budget answers Unreachable even when a
// (more expensive) path exists.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - MaxCost: math.MaxInt64 (no budget; explore all reachable nodes).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
	}
}
