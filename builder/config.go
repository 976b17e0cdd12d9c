// SPDX-License-Identifier: MIT
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • vertexFn = constant (ProcessingDelay 1ms, Reliability 0.999)
//   • edgeFn   = constant (Bandwidth 500Mbps, Delay 5ms, Reliability 0.99)
//   • rng      = nil (pure/deterministic unless seeded)
//   • offset   = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/qosroute/network"
)

// VertexFn produces the attributes of vertex id.
type VertexFn func(id int, r *rand.Rand) network.Vertex

// EdgeFn produces the attributes of the link u–v.
type EdgeFn func(u, v int, r *rand.Rand) network.Edge

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	vertexFn VertexFn
	edgeFn   EdgeFn
	rng      *rand.Rand
	offset   int
}

// Fixture defaults shared by tests and the CLI generator.
const (
	DefaultProcessingDelay   = 1.0
	DefaultVertexReliability = 0.999
	DefaultBandwidth         = 500.0
	DefaultLinkDelay         = 5.0
	DefaultLinkReliability   = 0.99
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertexFn: ConstVertex(DefaultProcessingDelay, DefaultVertexReliability),
		edgeFn:   ConstEdge(DefaultBandwidth, DefaultLinkDelay, DefaultLinkReliability),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a topology index to a vertex ID.
func (c builderConfig) id(i int) int { return c.offset + i }
