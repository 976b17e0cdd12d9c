package qos

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors of the cost model.
var (
	// ErrInvalidWeights indicates a weight triple that is negative, NaN or does not sum to 1.
	ErrInvalidWeights = errors.New("qos: weights must be non-negative and sum to 1")

	// ErrMissingLinkInfo indicates a (u,v) pair without a link.
	ErrMissingLinkInfo = errors.New("qos: missing link information")

	// ErrInvalidPath indicates a path too short to evaluate.
	ErrInvalidPath = errors.New("qos: path must contain at least two vertices")

	// ErrNoFeasiblePath indicates the search budget was exhausted without reaching the destination.
	ErrNoFeasiblePath = errors.New("qos: no feasible path")

	// ErrIncompletePath indicates a search stopped at a dead end and returned a partial path.
	ErrIncompletePath = errors.New("qos: path does not reach destination")

	// ErrUnknownEndpoint indicates a source or destination absent from the graph.
	ErrUnknownEndpoint = errors.New("qos: unknown endpoint")

	// ErrSameEndpoints indicates source == destination; a path needs two distinct ends.
	ErrSameEndpoints = errors.New("qos: source equals destination")

	// ErrInvalidDemand indicates a negative or NaN bandwidth demand.
	ErrInvalidDemand = errors.New("qos: invalid bandwidth demand")
)

const (
	// MaxBandwidth normalizes the resource cost of a link: MaxBandwidth / bandwidth.
	MaxBandwidth = 1000.0

	// SentinelReliabilityCost replaces −ln(r) for r ≤ 0.
	SentinelReliabilityCost = 999.0

	// WeightTolerance is the allowed deviation of the weight sum from 1.
	WeightTolerance = 1e-5
)

// Weights is the QoS weight triple.
type Weights struct {
	Delay       float64 `json:"delay" yaml:"delay"`
	Reliability float64 `json:"reliability" yaml:"reliability"`
	Resource    float64 `json:"resource" yaml:"resource"`
}

// DefaultWeights returns the balanced triple (0.33, 0.33, 0.34).
func DefaultWeights() Weights {
	return Weights{Delay: 0.33, Reliability: 0.33, Resource: 0.34}
}

// NewWeights builds and validates a weight triple.
func NewWeights(delay, reliability, resource float64) (Weights, error) {
	w := Weights{Delay: delay, Reliability: reliability, Resource: resource}
	return w, w.Validate()
}

// Validate returns an error wrapping ErrInvalidWeights unless every weight is
// finite and ≥ 0 and the sum is within WeightTolerance of 1.
func (w Weights) Validate() error {
	for _, x := range [...]float64{w.Delay, w.Reliability, w.Resource} {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return fmt.Errorf("%w: got %+v", ErrInvalidWeights, w)
		}
	}
	if sum := w.Delay + w.Reliability + w.Resource; math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("%w: sum %.6f", ErrInvalidWeights, sum)
	}
	return nil
}

// Apply returns the weighted sum of the three components of b.
func (w Weights) Apply(b Breakdown) float64 {
	return w.Delay*b.TotalDelay + w.Reliability*b.ReliabilityCost + w.Resource*b.ResourceCost
}

// Breakdown is the cost of a link, step or path.
type Breakdown struct {
	TotalDelay      float64 `json:"total_delay"`
	ReliabilityCost float64 `json:"reliability_cost"`
	ResourceCost    float64 `json:"resource_cost"`
	TotalCost       float64 `json:"total_cost"`
}

func (b Breakdown) add(o Breakdown) Breakdown {
	return Breakdown{
		TotalDelay:      b.TotalDelay + o.TotalDelay,
		ReliabilityCost: b.ReliabilityCost + o.ReliabilityCost,
		ResourceCost:    b.ResourceCost + o.ResourceCost,
		TotalCost:       b.TotalCost + o.TotalCost,
	}
}

// Status classifies a search outcome.
type Status int

const (
	// StatusFound means Path runs from source to destination.
	StatusFound Status = iota

	// StatusNoPath means no path was found; Path is nil.
	StatusNoPath

	// StatusPartial means the search gave up at a dead end; Path starts at the
	// source but does not reach the destination.
	StatusPartial
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no_path"
	case StatusPartial:
		return "partial"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status name for JSON and YAML output.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a name produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	for _, c := range [...]Status{StatusFound, StatusNoPath, StatusPartial} {
		if string(b) == c.String() {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("qos: unknown status %q", b)
}

// Result is the outcome of one engine run.
type Result struct {
	RunID     string    `json:"run_id,omitempty"`
	Algorithm string    `json:"algorithm"`
	Status    Status    `json:"status"`
	Path      []int     `json:"path"`
	Breakdown Breakdown `json:"breakdown"`
	Note      string    `json:"note,omitempty"`
}

// Found reports whether the result reaches the destination.
func (r Result) Found() bool { return r.Status == StatusFound }

// Err maps the status to ErrNoFeasiblePath / ErrIncompletePath, or nil when found.
func (r Result) Err() error {
	switch r.Status {
	case StatusFound:
		return nil
	case StatusPartial:
		return ErrIncompletePath
	default:
		return ErrNoFeasiblePath
	}
}

// NoPath returns the distinguished empty result.
func NoPath(algorithm, note string) Result {
	return Result{Algorithm: algorithm, Status: StatusNoPath, Note: note}
}
