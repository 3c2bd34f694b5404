// builder.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons...). Creates g, runs cons in order.
//   - All public factories are declared in topologies.go.
//   - Determinism: same constructors in the same order ⇒ identical graphs,
//     including node IDs, coordinates, and arc insertion order.
//   - Safety: constructors never panic; they validate parameters early and
//     return sentinel errors.
package builder

import (
	"errors"
	"fmt"

	"github.com/kelvaren/waypath/core"
)

// Sentinel errors for builder constructors.
var (
	// ErrTooFewNodes indicates a topology was requested with fewer nodes
	// than its shape requires.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrBadDimensions indicates a grid was requested with a non-positive
	// column or row count.
	ErrBadDimensions = errors.New("builder: grid dimensions must be positive")
)

// Constructor applies a deterministic graph mutation. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign every node real planar coordinates.
//   - Preserve determinism for the same call order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K) for K
// constructors.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
