package qos

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qosroute/network"
)

// reliabilityCost returns −ln(r), SentinelReliabilityCost for r ≤ 0 and 0 for r ≥ 1.
func reliabilityCost(r float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return SentinelReliabilityCost
	}
	if r >= 1 {
		return 0
	}
	return -math.Log(r)
}

// delayTerm clamps raw delays to be non-negative.
func delayTerm(d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

// linkTerms returns the link-only part of u→v: delay, −ln reliability, resource.
func linkTerms(g *network.Graph, u, v int) (Breakdown, error) {
	e, ok := g.Link(u, v)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %d→%d", ErrMissingLinkInfo, u, v)
	}
	return Breakdown{
		TotalDelay:      delayTerm(e.Delay),
		ReliabilityCost: reliabilityCost(e.Reliability),
		ResourceCost:    MaxBandwidth / e.Bandwidth,
	}, nil
}

// vertexTerms returns the processing delay and −ln reliability of id.
func vertexTerms(g *network.Graph, id int) (delay, rel float64, err error) {
	v, ok := g.Vertex(id)
	if !ok {
		return 0, 0, fmt.Errorf("%w: vertex %d", ErrMissingLinkInfo, id)
	}
	return delayTerm(v.ProcessingDelay), reliabilityCost(v.Reliability), nil
}

// LinkCost returns the metrics of the directed link u→v with u's processing
// delay and reliability attributed to it. TotalCost is left zero; use
// WeightedLinkCost for the scalar.
//
// Errors: ErrMissingLinkInfo when u and v are not adjacent.
// Complexity: O(deg(u)).
func LinkCost(g *network.Graph, u, v int) (Breakdown, error) {
	b, err := linkTerms(g, u, v)
	if err != nil {
		return Breakdown{}, err
	}
	d, r, err := vertexTerms(g, u)
	if err != nil {
		return Breakdown{}, err
	}
	b.TotalDelay += d
	b.ReliabilityCost += r

	return b, nil
}

// WeightedLinkCost returns w applied to LinkCost(g, u, v).
//
// Errors: ErrInvalidWeights, ErrMissingLinkInfo.
func WeightedLinkCost(g *network.Graph, u, v int, w Weights) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	b, err := LinkCost(g, u, v)
	if err != nil {
		return 0, err
	}
	return w.Apply(b), nil
}

// StepBreakdown returns the metrics of hop u→v on a path from src to dst,
// attributed so that summing over the hops of a path yields EvaluatePath:
//
//   - u's processing delay is charged unless u == src;
//   - u's reliability is always charged;
//   - v's reliability is charged when v == dst.
//
// TotalCost is filled with w applied to the components (w is not validated).
func StepBreakdown(g *network.Graph, u, v, src, dst int, w Weights) (Breakdown, error) {
	b, err := linkTerms(g, u, v)
	if err != nil {
		return Breakdown{}, err
	}
	d, r, err := vertexTerms(g, u)
	if err != nil {
		return Breakdown{}, err
	}
	if u != src {
		b.TotalDelay += d
	}
	b.ReliabilityCost += r
	if v == dst {
		_, rv, err := vertexTerms(g, v)
		if err != nil {
			return Breakdown{}, err
		}
		b.ReliabilityCost += rv
	}
	b.TotalCost = w.Apply(b)

	return b, nil
}

// StepCost is the scalar of StepBreakdown.
func StepCost(g *network.Graph, u, v, src, dst int, w Weights) (float64, error) {
	b, err := StepBreakdown(g, u, v, src, dst, w)
	if err != nil {
		return 0, err
	}
	return b.TotalCost, nil
}

// EvaluatePath computes the canonical Breakdown of path under w.
//
// Errors:
//   - ErrInvalidWeights if w is invalid.
//   - ErrInvalidPath if len(path) < 2.
//   - ErrMissingLinkInfo if any hop lacks a link.
//
// Deterministic: identical inputs give bit-identical results (fixed summation order).
// Complexity: O(len(path) · maxDegree).
func EvaluatePath(g *network.Graph, path []int, w Weights) (Breakdown, error) {
	if err := w.Validate(); err != nil {
		return Breakdown{}, err
	}
	if len(path) < 2 {
		return Breakdown{}, fmt.Errorf("%w: length %d", ErrInvalidPath, len(path))
	}

	src, dst := path[0], path[len(path)-1]
	var total Breakdown
	for i := 0; i+1 < len(path); i++ {
		step, err := StepBreakdown(g, path[i], path[i+1], src, dst, w)
		if err != nil {
			return Breakdown{}, err
		}
		total = total.add(step)
	}
	total.TotalCost = w.Apply(total)

	return total, nil
}

// PathCost returns the weighted cost of path, or +Inf when it cannot be
// evaluated. Used as a fitness that sorts broken candidates last.
func PathCost(g *network.Graph, path []int, w Weights) float64 {
	b, err := EvaluatePath(g, path, w)
	if err != nil {
		return math.Inf(1)
	}
	return b.TotalCost
}

// NewResult evaluates path and wraps it as a found Result.
func NewResult(g *network.Graph, path []int, w Weights, algorithm, note string) (Result, error) {
	b, err := EvaluatePath(g, path, w)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Algorithm: algorithm,
		Status:    StatusFound,
		Path:      path,
		Breakdown: b,
		Note:      note,
	}, nil
}

// Partial wraps a path that starts at the source but stops short of the
// destination. The breakdown is evaluated when the path has at least one hop.
func Partial(g *network.Graph, path []int, w Weights, algorithm, note string) Result {
	r := Result{Algorithm: algorithm, Status: StatusPartial, Path: path, Note: note}
	if b, err := EvaluatePath(g, path, w); err == nil {
		r.Breakdown = b
	}
	return r
}
