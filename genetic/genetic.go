package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qosroute/dfs"
	"github.com/katalvlaran/qosroute/internal/rng"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

// individual is a candidate path with its cached fitness.
type individual struct {
	path []int
	cost float64
}

// runner holds the per-run state of the engine.
type runner struct {
	g        *network.Graph
	src, dst int
	demand   float64
	w        qos.Weights
	opts     Options
	rnd      *rand.Rand
}

// Run searches for a low-cost admissible path from src to dst.
//
// Errors are returned only for invalid input (nil graph, unknown or equal
// endpoints, invalid demand or weights, bad options). An exhausted search is
// reported as a qos.NoPath result with a nil error.
func Run(g *network.Graph, src, dst int, demand float64, w qos.Weights, opts ...Option) (qos.Result, error) {
	if g == nil {
		return qos.Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return qos.Result{}, o.err
	}
	if err := qos.CheckQuery(g, src, dst, demand, w); err != nil {
		return qos.Result{}, err
	}

	r := &runner{
		g: g, src: src, dst: dst, demand: demand, w: w,
		opts: o,
		rnd:  rng.Or(o.Rand, o.Seed),
	}
	return r.run(), nil
}

func (r *runner) run() qos.Result {
	pop := r.seed()
	if len(pop) == 0 {
		return qos.NoPath(Name, fmt.Sprintf("no feasible path from %d to %d for demand %v", r.src, r.dst, r.demand))
	}

	for gen := 0; gen < r.opts.Generations; gen++ {
		pop = r.nextGeneration(pop)
		if r.opts.OnGeneration != nil {
			r.opts.OnGeneration(gen, bestOf(pop).cost)
		}
	}

	best := bestOf(pop)
	if math.IsInf(best.cost, 1) {
		return qos.NoPath(Name, "no individual could be evaluated")
	}
	res, err := qos.NewResult(r.g, best.path, r.w, Name,
		fmt.Sprintf("best of %d individuals after %d generations", len(pop), r.opts.Generations))
	if err != nil {
		return qos.NoPath(Name, err.Error())
	}
	return res
}

// seed samples the initial population.
func (r *runner) seed() []individual {
	size := r.opts.PopulationSize
	pop := make([]individual, 0, size)
	for attempt := 0; attempt < 2*size && len(pop) < size; attempt++ {
		p, err := dfs.RandomPath(r.g, r.src, r.dst, r.demand, dfs.WithRand(r.rnd))
		if err != nil {
			continue
		}
		pop = append(pop, r.score(p))
	}
	return pop
}

func (r *runner) score(p []int) individual {
	return individual{path: p, cost: qos.PathCost(r.g, p, r.w)}
}

// nextGeneration applies elitism, selection, crossover and mutation.
func (r *runner) nextGeneration(pop []individual) []individual {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].cost < pop[j].cost })

	size := r.opts.PopulationSize
	next := make([]individual, 0, size)
	next = append(next, pop[:min(r.opts.Elite, len(pop), size)]...)

	parents := pop[:min(r.opts.ParentPool, len(pop))]
	for len(next) < size {
		p1, p2 := r.pickParents(parents)
		child := r.crossover(p1.path, p2.path)
		if r.rnd.Float64() < r.opts.MutationRate {
			child = r.mutate(child)
		}
		next = append(next, r.score(child))
	}
	return next
}

// pickParents draws two distinct parents; a pool of one yields that parent twice.
func (r *runner) pickParents(pool []individual) (individual, individual) {
	if len(pool) < 2 {
		return pool[0], pool[0]
	}
	i, j := rng.SampleTwo(r.rnd, len(pool))
	return pool[i], pool[j]
}

func bestOf(pop []individual) individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.cost < best.cost {
			best = ind
		}
	}
	return best
}
