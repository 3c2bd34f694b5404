// topologies.go - deterministic spatial topology constructors.
//
// Every constructor assigns node IDs starting at 1 and places nodes on an
// integer lattice, so fixtures have realistic coordinates without any
// randomness. Edge weight is uniform per constructor; compose constructors
// and follow up with direct AddEdge calls for irregular fixtures.
package builder

import "github.com/kelvaren/waypath/core"

// Path returns a Constructor producing a simple path 1—2—…—n laid out on
// the x-axis: node i sits at (i-1, 0), and consecutive nodes are joined by
// an undirected edge of the given weight.
//
// Requires n ≥ 1 (ErrTooFewNodes otherwise) and weight ≥ 0
// (core.ErrNegativeWeight surfaces from AddEdge).
//
// Complexity: O(n)
func Path(n int, weight int64) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return ErrTooFewNodes
		}
		for i := 1; i <= n; i++ {
			g.AddNode(core.Node{ID: int64(i), X: int64(i - 1), Y: 0})
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(int64(i), int64(i+1), weight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor producing a cols×rows lattice: the node at
// column x, row y (zero-based) has ID GridID(cols, x, y) and coordinates
// (x, y), with 4-neighbor edges of the given weight.
//
// Requires cols ≥ 1 and rows ≥ 1 (ErrBadDimensions otherwise).
//
// Complexity: O(cols·rows)
func Grid(cols, rows int, weight int64) Constructor {
	return func(g *core.Graph) error {
		if cols < 1 || rows < 1 {
			return ErrBadDimensions
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				g.AddNode(core.Node{ID: GridID(cols, x, y), X: int64(x), Y: int64(y)})
			}
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if x+1 < cols {
					if err := g.AddEdge(GridID(cols, x, y), GridID(cols, x+1, y), weight); err != nil {
						return err
					}
				}
				if y+1 < rows {
					if err := g.AddEdge(GridID(cols, x, y), GridID(cols, x, y+1), weight); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID maps zero-based grid coordinates to the node ID assigned by Grid:
// row-major order starting at 1.
func GridID(cols, x, y int) int64 {
	return int64(y*cols + x + 1)
}

// Complete returns a Constructor producing the complete graph K_n on nodes
// 1..n, every pair joined by an undirected edge of the given weight. Nodes
// are laid out on the x-axis like Path.
//
// Requires n ≥ 1 (ErrTooFewNodes otherwise).
//
// Complexity: O(n²)
func Complete(n int, weight int64) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return ErrTooFewNodes
		}
		for i := 1; i <= n; i++ {
			g.AddNode(core.Node{ID: int64(i), X: int64(i - 1), Y: 0})
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err := g.AddEdge(int64(i), int64(j), weight); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
