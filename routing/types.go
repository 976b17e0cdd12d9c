package routing

import (
	"errors"
	"time"

	"github.com/katalvlaran/qosroute/qos"
)

var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrUnknownAlgorithm is returned for names or values outside AllAlgorithms.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")
)

// GeneticParams tunes the genetic engine. Zero fields keep the engine default.
type GeneticParams struct {
	PopulationSize int     `json:"population_size,omitempty" yaml:"population_size" validate:"gte=0,lte=10000"`
	Generations    int     `json:"generations,omitempty" yaml:"generations" validate:"gte=0,lte=100000"`
	MutationRate   float64 `json:"mutation_rate,omitempty" yaml:"mutation_rate" validate:"gte=0,lte=1"`
	Elite          int     `json:"elite,omitempty" yaml:"elite" validate:"gte=0,lte=10000"`
	ParentPool     int     `json:"parent_pool,omitempty" yaml:"parent_pool" validate:"gte=0,lte=10000"`
}

// AntColonyParams tunes the ACS engine. Zero fields keep the engine default.
type AntColonyParams struct {
	Ants       int     `json:"ants,omitempty" yaml:"ants" validate:"gte=0,lte=10000"`
	Iterations int     `json:"iterations,omitempty" yaml:"iterations" validate:"gte=0,lte=100000"`
	Alpha      float64 `json:"alpha,omitempty" yaml:"alpha" validate:"gte=0"`
	Beta       float64 `json:"beta,omitempty" yaml:"beta" validate:"gte=0"`
	Rho        float64 `json:"rho,omitempty" yaml:"rho" validate:"gte=0,lt=1"`
	Phi        float64 `json:"phi,omitempty" yaml:"phi" validate:"gte=0,lte=1"`
	Q0         float64 `json:"q0,omitempty" yaml:"q0" validate:"gte=0,lte=1"`
	Tau0       float64 `json:"tau0,omitempty" yaml:"tau0" validate:"gte=0"`
	MaxSteps   int     `json:"max_steps,omitempty" yaml:"max_steps" validate:"gte=0,lte=100000"`
}

// QLearningParams tunes the Q-learning engine. Zero fields keep the engine default.
type QLearningParams struct {
	Episodes     int     `json:"episodes,omitempty" yaml:"episodes" validate:"gte=0,lte=1000000"`
	Alpha        float64 `json:"alpha,omitempty" yaml:"alpha" validate:"gte=0,lte=1"`
	Gamma        float64 `json:"gamma,omitempty" yaml:"gamma" validate:"gte=0,lte=1"`
	Epsilon      float64 `json:"epsilon,omitempty" yaml:"epsilon" validate:"gte=0,lte=1"`
	EpsilonDecay float64 `json:"epsilon_decay,omitempty" yaml:"epsilon_decay" validate:"gte=0,lte=1"`
	EpsilonMin   float64 `json:"epsilon_min,omitempty" yaml:"epsilon_min" validate:"gte=0,lte=1"`
	MaxSteps     int     `json:"max_steps,omitempty" yaml:"max_steps" validate:"gte=0,lte=100000"`
}

// Request is one path query.
type Request struct {
	Source      int         `json:"source"`
	Destination int         `json:"destination"`
	Demand      float64     `json:"demand"`
	Weights     qos.Weights `json:"weights"`
	Algorithm   Algorithm   `json:"algorithm"`

	// Seed drives the stochastic engines; 0 selects their default seed.
	Seed int64 `json:"seed,omitempty"`

	Genetic   GeneticParams   `json:"genetic,omitempty"`
	AntColony AntColonyParams `json:"ant_colony,omitempty"`
	QLearning QLearningParams `json:"q_learning,omitempty"`
}

// Event describes one completed Solve call.
type Event struct {
	Request Request
	Result  qos.Result
	Elapsed time.Duration

	// ShortCircuited is true when the reachability check answered without
	// running the engine.
	ShortCircuited bool
}

// Observer receives an Event after every Solve. Implementations must be
// safe for concurrent use when Solve is called concurrently.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Option configures Solve and Compare.
type Option func(*settings)

type settings struct {
	observers    []Observer
	newID        func() string
	reachability bool
}

// WithObserver adds an Observer.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithRunIDs replaces the uuid run ID generator.
func WithRunIDs(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithoutReachabilityCheck makes Solve always run the engine.
func WithoutReachabilityCheck() Option {
	return func(s *settings) { s.reachability = false }
}
