package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Name is the algorithm label stamped on results.
const Name = "Dijkstra"

// Sentinel errors for Dijkstra.
var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a Dijkstra run.
type Options struct {
	MaxDistance       float64 // Maximum distance to explore
	StopAtDestination bool    // Settle dst and stop

	err error
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDistance limits exploration to vertices within max (max ≥ 0).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			if o.err == nil {
				o.err = fmt.Errorf("%w: max distance %v", ErrOptionViolation, max)
			}
			return
		}
		o.MaxDistance = max
	}
}

// WithStopAtDestination ends the search once the destination is settled.
func WithStopAtDestination() Option {
	return func(o *Options) {
		o.StopAtDestination = true
	}
}

// DefaultOptions explores the whole admissible component.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
