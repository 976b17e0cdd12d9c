// SPDX-License-Identifier: MIT
//
// api.go: public entry points for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/network"
)

// Constructor applies a deterministic graph mutation using the resolved config.
type Constructor func(g *network.Graph, cfg builderConfig) error

// BuildGraph creates a new network.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*network.Graph, error) {
	g := network.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *network.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// addVertices registers n vertices with IDs cfg.id(0..n-1).
func addVertices(g *network.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		v := cfg.vertexFn(cfg.id(i), cfg.rng)
		v.ID = cfg.id(i)
		if err := g.AddVertex(v); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, v.ID, err)
		}
	}
	return nil
}

// link adds the link between topology indices i and j.
func link(g *network.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	if err := g.AddEdge(u, v, cfg.edgeFn(u, v, cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	return nil
}
