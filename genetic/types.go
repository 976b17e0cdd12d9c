package genetic

import (
	"errors"
	"fmt"
	"math/rand"
)

// Name is the algorithm label stamped on results.
const Name = "GA"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("genetic: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("genetic: invalid option supplied")
)

const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 100
	DefaultMutationRate   = 0.2
	DefaultElite          = 5
	DefaultParentPool     = 20
)

// Options configures Run.
type Options struct {
	PopulationSize int
	Generations    int
	MutationRate   float64

	// Elite individuals are copied unchanged into the next generation.
	Elite int

	// ParentPool is how many of the fittest individuals are eligible as parents.
	ParentPool int

	// Seed initializes the random source when Rand is nil.
	Seed int64
	Rand *rand.Rand

	// OnGeneration, if set, is called after each generation with the best
	// fitness of the population that generation produced.
	OnGeneration func(gen int, best float64)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference parameters.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		Elite:          DefaultElite,
		ParentPool:     DefaultParentPool,
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithPopulationSize sets the population size (n ≥ 1).
func WithPopulationSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("population size %d < 1", n)
			return
		}
		o.PopulationSize = n
	}
}

// WithGenerations sets the number of generations (n ≥ 0).
func WithGenerations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("generations %d < 0", n)
			return
		}
		o.Generations = n
	}
}

// WithMutationRate sets the per-child mutation probability in [0, 1].
func WithMutationRate(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			o.fail("mutation rate %v outside [0,1]", p)
			return
		}
		o.MutationRate = p
	}
}

// WithElite sets how many top individuals survive unchanged (n ≥ 0).
func WithElite(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("elite %d < 0", n)
			return
		}
		o.Elite = n
	}
}

// WithParentPool sets the size of the parent pool (n ≥ 1).
func WithParentPool(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("parent pool %d < 1", n)
			return
		}
		o.ParentPool = n
	}
}

// WithSeed sets a deterministic seed (0 selects the package default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a random source; it takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithOnGeneration registers a per-generation progress hook.
func WithOnGeneration(fn func(gen int, best float64)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}
