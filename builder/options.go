// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors panic on meaningless inputs (nil functions);
// constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/qosroute/network"
)

// BuilderOption customizes constructor behavior.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and attribute functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithVertexFn sets the vertex attribute generator.
func WithVertexFn(fn VertexFn) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexFn(nil)")
	}
	return func(c *builderConfig) { c.vertexFn = fn }
}

// WithEdgeFn sets the link attribute generator.
func WithEdgeFn(fn EdgeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeFn(nil)")
	}
	return func(c *builderConfig) { c.edgeFn = fn }
}

// WithIDOffset shifts generated vertex IDs by off (IDs become off..off+n-1).
func WithIDOffset(off int) BuilderOption {
	return func(c *builderConfig) { c.offset = off }
}

// WithUniformAttributes draws link bandwidth uniformly from [bwMin, bwMax] and
// vertex and link reliabilities uniformly from [relMin, relMax]. Delays are
// drawn from [1, 10] ms for links and [0.5, 2] ms for vertices, the ranges
// used by the reference data set. Requires WithSeed or WithRand.
func WithUniformAttributes(bwMin, bwMax, relMin, relMax float64) BuilderOption {
	return func(c *builderConfig) {
		c.vertexFn = func(id int, r *rand.Rand) network.Vertex {
			return network.Vertex{
				ID:              id,
				ProcessingDelay: uniform(r, 0.5, 2),
				Reliability:     uniform(r, relMin, relMax),
			}
		}
		c.edgeFn = func(_, _ int, r *rand.Rand) network.Edge {
			return network.Edge{
				Bandwidth:   uniform(r, bwMin, bwMax),
				Delay:       uniform(r, 1, 10),
				Reliability: uniform(r, relMin, relMax),
			}
		}
	}
}

// ConstVertex returns a VertexFn producing identical attributes for every vertex.
func ConstVertex(processingDelay, reliability float64) VertexFn {
	return func(id int, _ *rand.Rand) network.Vertex {
		return network.Vertex{ID: id, ProcessingDelay: processingDelay, Reliability: reliability}
	}
}

// ConstEdge returns an EdgeFn producing identical attributes for every link.
func ConstEdge(bandwidth, delay, reliability float64) EdgeFn {
	return func(_, _ int, _ *rand.Rand) network.Edge {
		return network.Edge{Bandwidth: bandwidth, Delay: delay, Reliability: reliability}
	}
}

// uniform draws from [lo, hi]; a nil r yields the midpoint.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	if r == nil {
		return (lo + hi) / 2
	}
	return lo + r.Float64()*(hi-lo)
}
