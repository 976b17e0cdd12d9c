package antcolony

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qosroute/internal/rng"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

// Colony binds a graph, demand and weight triple to a pheromone table that
// survives across Run calls. It is not safe for concurrent use.
type Colony struct {
	g      *network.Graph
	demand float64
	w      qos.Weights
	opts   Options
	rnd    *rand.Rand

	pher *Pheromone
	eta  map[Arc]float64
}

// NewColony validates the inputs and seeds every admissible arc with Tau0.
// Arcs whose weighted link cost cannot be computed are left out of the
// heuristic table and never chosen.
func NewColony(g *network.Graph, demand float64, w qos.Weights, opts ...Option) (*Colony, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(demand) || demand < 0 {
		return nil, fmt.Errorf("%w: %v", qos.ErrInvalidDemand, demand)
	}

	c := &Colony{
		g: g, demand: demand, w: w,
		opts: o,
		rnd:  rng.Or(o.Rand, o.Seed),
		pher: NewPheromone(),
		eta:  make(map[Arc]float64),
	}
	for _, u := range g.VertexIDs() {
		for _, v := range g.AdmissibleNeighbors(u, demand) {
			cost, err := qos.WeightedLinkCost(g, u, v, w)
			if err != nil {
				continue
			}
			c.eta[Arc{u, v}] = 1 / (cost + epsilon)
			c.pher.Set(u, v, o.Tau0)
		}
	}
	return c, nil
}

// Pheromone exposes the colony's table.
func (c *Colony) Pheromone() *Pheromone { return c.pher }

// Run searches from src to dst, continuing from the current pheromone state.
//
// Errors: qos.ErrUnknownEndpoint, qos.ErrSameEndpoints.
func (c *Colony) Run(src, dst int) (qos.Result, error) {
	if err := qos.CheckQuery(c.g, src, dst, c.demand, c.w); err != nil {
		return qos.Result{}, err
	}

	var (
		best     []int
		bestCost = math.Inf(1)
	)
	for it := 0; it < c.opts.Iterations; it++ {
		iterPath, iterCost := c.iterate(src, dst)
		if iterPath != nil && iterCost < bestCost {
			best, bestCost = iterPath, iterCost
		}
		if c.opts.OnIteration != nil {
			c.opts.OnIteration(it, iterCost, bestCost)
		}
	}

	if best == nil {
		return qos.NoPath(Name, fmt.Sprintf("no ant reached %d from %d in %d iterations", dst, src, c.opts.Iterations)), nil
	}
	res, err := qos.NewResult(c.g, best, c.w, Name,
		fmt.Sprintf("best over %d iterations × %d ants", c.opts.Iterations, c.opts.Ants))
	if err != nil {
		return qos.NoPath(Name, err.Error()), nil
	}
	return res, nil
}

// Run is the one-shot form: a fresh Colony searching src→dst once.
func Run(g *network.Graph, src, dst int, demand float64, w qos.Weights, opts ...Option) (qos.Result, error) {
	c, err := NewColony(g, demand, w, opts...)
	if err != nil {
		return qos.Result{}, err
	}
	return c.Run(src, dst)
}

// iterate runs every ant once, then applies the global update. It returns
// the iteration-best path and cost, or nil and +Inf.
func (c *Colony) iterate(src, dst int) ([]int, float64) {
	var (
		iterBest []int
		iterCost = math.Inf(1)
	)
	for a := 0; a < c.opts.Ants; a++ {
		p := c.walk(src, dst)
		if p == nil {
			continue
		}
		if cost := qos.PathCost(c.g, p, c.w); cost < iterCost {
			iterBest, iterCost = p, cost
		}
	}

	c.pher.Evaporate(c.opts.Rho)
	if iterBest != nil {
		deposit := c.opts.Rho / (iterCost + epsilon)
		for i := 0; i+1 < len(iterBest); i++ {
			u, v := iterBest[i], iterBest[i+1]
			c.pher.Set(u, v, (1-c.opts.Rho)*c.pher.Get(u, v)+deposit)
		}
	}
	return iterBest, iterCost
}
