package dfs

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/qosroute/internal/rng"
)

var (
	// ErrGraphNil is returned when a nil *network.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoPath indicates the target was not reached.
	ErrNoPath = errors.New("dfs: no admissible path to target")
)

// Picker selects the index in [0, n) of the frontier entry to expand next.
// n is always ≥ 1.
type Picker func(n int) int

// LIFO is the classic depth-first picker: always the most recent entry.
func LIFO(n int) int { return n - 1 }

// UniformPicker picks uniformly at random using r.
func UniformPicker(r *rand.Rand) Picker {
	return func(n int) int { return r.Intn(n) }
}

// Option configures RandomPath.
type Option func(*Options)

// Options holds RandomPath parameters.
type Options struct {
	// Rand drives the default uniform picker. Nil ⇒ rng.FromSeed(0).
	Rand *rand.Rand

	// Picker overrides the frontier selection strategy.
	Picker Picker

	// MaxExpansions, if > 0, caps the number of vertex expansions.
	MaxExpansions int
}

// DefaultOptions returns Options with a nil Rand (deterministic default
// stream), no picker override and no expansion cap.
func DefaultOptions() Options {
	return Options{}
}

// WithRand sets the random source for the default picker.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a fresh random source for the default picker.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithPicker installs a custom frontier selection strategy.
func WithPicker(p Picker) Option {
	return func(o *Options) {
		if p != nil {
			o.Picker = p
		}
	}
}

// WithMaxExpansions caps vertex expansions; n ≤ 0 means no cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}
