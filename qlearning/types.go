package qlearning

import (
	"errors"
	"fmt"
	"math/rand"
)

// Name is the algorithm label stamped on results.
const Name = "Q-Learning"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("qlearning: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("qlearning: invalid option supplied")
)

// Reference parameters.
const (
	DefaultEpisodes       = 500
	DefaultAlpha          = 0.7
	DefaultGamma          = 0.9
	DefaultEpsilon        = 1.0
	DefaultEpsilonDecay   = 0.994
	DefaultEpsilonMin     = 0.01
	DefaultMaxSteps       = 100
	DefaultGoalReward     = 10000.0
	DefaultDeadEndPenalty = -10000.0
)

// Options configures an Agent.
type Options struct {
	Alpha float64
	Gamma float64

	// Epsilon is the initial exploration rate, multiplied by EpsilonDecay
	// after every episode and floored at EpsilonMin.
	Epsilon      float64
	EpsilonDecay float64
	EpsilonMin   float64

	// MaxSteps caps both training episodes and greedy extraction.
	MaxSteps int

	GoalReward     float64
	DeadEndPenalty float64

	Seed int64
	Rand *rand.Rand

	// OnEpisode, if set, is called after each episode.
	OnEpisode func(ep int, stats EpisodeStats)

	err error
}

// Option mutates Options.
type Option func(*Options)

// EpisodeStats summarizes one training episode.
type EpisodeStats struct {
	Steps   int
	Reward  float64
	Reached bool
	Epsilon float64
}

// TrainStats summarizes a Train call.
type TrainStats struct {
	Episodes int     `json:"episodes"`
	Reached  int     `json:"reached"`
	Epsilon  float64 `json:"epsilon"`
	States   int     `json:"states"`
}

// DefaultOptions returns the reference parameters.
func DefaultOptions() Options {
	return Options{
		Alpha:          DefaultAlpha,
		Gamma:          DefaultGamma,
		Epsilon:        DefaultEpsilon,
		EpsilonDecay:   DefaultEpsilonDecay,
		EpsilonMin:     DefaultEpsilonMin,
		MaxSteps:       DefaultMaxSteps,
		GoalReward:     DefaultGoalReward,
		DeadEndPenalty: DefaultDeadEndPenalty,
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

func unit(x float64) bool { return x >= 0 && x <= 1 }

// WithAlpha sets the learning rate in (0, 1].
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if !(a > 0 && a <= 1) {
			o.fail("alpha %v outside (0,1]", a)
			return
		}
		o.Alpha = a
	}
}

// WithGamma sets the discount factor in [0, 1].
func WithGamma(g float64) Option {
	return func(o *Options) {
		if !unit(g) {
			o.fail("gamma %v outside [0,1]", g)
			return
		}
		o.Gamma = g
	}
}

// WithEpsilon sets the schedule: start rate, per-episode decay and floor,
// all in [0, 1] with floor ≤ start.
func WithEpsilon(start, decay, floor float64) Option {
	return func(o *Options) {
		if !unit(start) || !unit(decay) || !unit(floor) || floor > start {
			o.fail("epsilon schedule (%v, %v, %v) invalid", start, decay, floor)
			return
		}
		o.Epsilon, o.EpsilonDecay, o.EpsilonMin = start, decay, floor
	}
}

// WithMaxSteps caps episode and extraction length (n ≥ 1).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("max steps %d < 1", n)
			return
		}
		o.MaxSteps = n
	}
}

// WithRewards sets the goal bonus (> 0) and dead-end penalty (< 0).
func WithRewards(goal, deadEnd float64) Option {
	return func(o *Options) {
		if !(goal > 0) || !(deadEnd < 0) {
			o.fail("rewards goal=%v deadEnd=%v", goal, deadEnd)
			return
		}
		o.GoalReward, o.DeadEndPenalty = goal, deadEnd
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

// WithOnEpisode registers a per-episode hook.
func WithOnEpisode(fn func(ep int, stats EpisodeStats)) Option {
	return func(o *Options) { o.OnEpisode = fn }
}
