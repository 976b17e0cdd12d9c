package qos

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qosroute/network"
)

// CheckQuery validates the five inputs shared by every engine entry point.
// It is the single up-front validation step; engines absorb everything that
// can go wrong afterwards into their Result.
//
// Errors: ErrUnknownEndpoint, ErrSameEndpoints, ErrInvalidDemand, ErrInvalidWeights.
func CheckQuery(g *network.Graph, src, dst int, demand float64, w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if math.IsNaN(demand) || demand < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDemand, demand)
	}
	if !g.HasVertex(src) {
		return fmt.Errorf("%w: source %d", ErrUnknownEndpoint, src)
	}
	if !g.HasVertex(dst) {
		return fmt.Errorf("%w: destination %d", ErrUnknownEndpoint, dst)
	}
	if src == dst {
		return fmt.Errorf("%w: %d", ErrSameEndpoints, src)
	}
	return nil
}
