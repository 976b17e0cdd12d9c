// SPDX-License-Identifier: MIT
//
// topologies.go: Path, Cycle, Grid, Complete and RandomSparse constructors.
//
// Edge emission order is fixed (i asc, then j asc) so neighbor order, and
// therefore every seeded search over the result, is reproducible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/network"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Path builds the chain 0-1-…-(n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodPath, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds the ring 0-1-…-(n-1)-0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < min=3: %w", methodCycle, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid builds a rows×cols lattice; vertex (r,c) has index r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Complete builds K_n. Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodComplete, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph over n vertices, including each
// unordered pair independently with probability p. Requires WithSeed/WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Links returns a Constructor adding explicit links between vertex IDs
// (offset is not applied). Each entry is {u, v}; endpoints missing from the
// graph are created with the VertexFn, attributes come from the EdgeFn.
func Links(pairs ...[2]int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			for _, id := range p {
				if g.HasVertex(id) {
					continue
				}
				v := cfg.vertexFn(id, cfg.rng)
				v.ID = id
				if err := g.AddVertex(v); err != nil {
					return fmt.Errorf("Links: AddVertex(%d): %w", id, err)
				}
			}
			if err := g.AddEdge(p[0], p[1], cfg.edgeFn(p[0], p[1], cfg.rng)); err != nil {
				return fmt.Errorf("Links: AddEdge(%d,%d): %w", p[0], p[1], err)
			}
		}
		return nil
	}
}
