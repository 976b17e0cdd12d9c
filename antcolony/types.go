package antcolony

import (
	"errors"
	"fmt"
	"math/rand"
)

// Name is the algorithm label stamped on results.
const Name = "ACS"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("antcolony: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("antcolony: invalid option supplied")
)

// Reference parameters.
const (
	DefaultAnts       = 20
	DefaultIterations = 10
	DefaultAlpha      = 1.0
	DefaultBeta       = 2.0
	DefaultRho        = 0.1
	DefaultPhi        = 0.1
	DefaultQ0         = 0.3
	DefaultTau0       = 0.1
	DefaultMaxSteps   = 200
)

// epsilon keeps 1/cost finite for zero-cost arcs and paths.
const epsilon = 1e-9

// Options configures a Colony.
type Options struct {
	Ants       int
	Iterations int

	// Alpha and Beta weight pheromone and heuristic in the transition value.
	Alpha float64
	Beta  float64

	// Rho is the global evaporation/deposit rate, Phi the local update rate.
	Rho float64
	Phi float64

	// Q0 is the probability of exploiting the best arc instead of sampling.
	Q0 float64

	Tau0     float64
	MaxSteps int

	Seed int64
	Rand *rand.Rand

	// OnIteration, if set, is called after each iteration's global update
	// with the iteration-best cost (+Inf when no ant arrived) and the best
	// cost so far.
	OnIteration func(iter int, iterBest, best float64)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference parameters.
func DefaultOptions() Options {
	return Options{
		Ants:       DefaultAnts,
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Rho:        DefaultRho,
		Phi:        DefaultPhi,
		Q0:         DefaultQ0,
		Tau0:       DefaultTau0,
		MaxSteps:   DefaultMaxSteps,
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithAnts sets the number of ants per iteration (n ≥ 1).
func WithAnts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("ants %d < 1", n)
			return
		}
		o.Ants = n
	}
}

// WithIterations sets the number of iterations (n ≥ 0).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("iterations %d < 0", n)
			return
		}
		o.Iterations = n
	}
}

// WithAlpha sets the pheromone exponent (≥ 0).
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if !(a >= 0) {
			o.fail("alpha %v < 0", a)
			return
		}
		o.Alpha = a
	}
}

// WithBeta sets the heuristic exponent (≥ 0).
func WithBeta(b float64) Option {
	return func(o *Options) {
		if !(b >= 0) {
			o.fail("beta %v < 0", b)
			return
		}
		o.Beta = b
	}
}

// WithRho sets the global evaporation rate in (0, 1).
func WithRho(rho float64) Option {
	return func(o *Options) {
		if !(rho > 0 && rho < 1) {
			o.fail("rho %v outside (0,1)", rho)
			return
		}
		o.Rho = rho
	}
}

// WithPhi sets the local update rate in [0, 1].
func WithPhi(phi float64) Option {
	return func(o *Options) {
		if !(phi >= 0 && phi <= 1) {
			o.fail("phi %v outside [0,1]", phi)
			return
		}
		o.Phi = phi
	}
}

// WithQ0 sets the exploitation probability in [0, 1].
func WithQ0(q0 float64) Option {
	return func(o *Options) {
		if !(q0 >= 0 && q0 <= 1) {
			o.fail("q0 %v outside [0,1]", q0)
			return
		}
		o.Q0 = q0
	}
}

// WithTau0 sets the initial pheromone level (> 0).
func WithTau0(tau0 float64) Option {
	return func(o *Options) {
		if !(tau0 > 0) {
			o.fail("tau0 %v ≤ 0", tau0)
			return
		}
		o.Tau0 = tau0
	}
}

// WithMaxSteps caps the moves of a single ant (n ≥ 1).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("max steps %d < 1", n)
			return
		}
		o.MaxSteps = n
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

// WithOnIteration registers a per-iteration progress hook.
func WithOnIteration(fn func(iter int, iterBest, best float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}
