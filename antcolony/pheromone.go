package antcolony

import "sort"

// MinPheromone is the floor applied by evaporation; it keeps every level
// strictly positive however many rounds pass.
const MinPheromone = 1e-12

// unknownPheromone is returned for arcs the table has never seen.
const unknownPheromone = 1e-6

// Arc is a directed edge u→v.
type Arc struct {
	From, To int
}

// Pheromone is a directed pheromone table. It is not safe for concurrent use.
type Pheromone struct {
	tau map[Arc]float64
}

// NewPheromone returns an empty table.
func NewPheromone() *Pheromone {
	return &Pheromone{tau: make(map[Arc]float64)}
}

// Get returns tau(u,v); arcs never set read as a tiny positive level.
func (p *Pheromone) Get(u, v int) float64 {
	if t, ok := p.tau[Arc{u, v}]; ok {
		return t
	}
	return unknownPheromone
}

// Set stores tau(u,v).
func (p *Pheromone) Set(u, v int, tau float64) {
	p.tau[Arc{u, v}] = tau
}

// Has reports whether the table tracks u→v.
func (p *Pheromone) Has(u, v int) bool {
	_, ok := p.tau[Arc{u, v}]
	return ok
}

// Len returns the number of tracked arcs.
func (p *Pheromone) Len() int { return len(p.tau) }

// Evaporate multiplies every known level by (1−rho), never going below
// MinPheromone.
func (p *Pheromone) Evaporate(rho float64) {
	for a, t := range p.tau {
		p.tau[a] = max(t*(1-rho), MinPheromone)
	}
}

// Min returns the smallest tracked level, or 0 for an empty table.
func (p *Pheromone) Min() float64 {
	first := true
	var m float64
	for _, t := range p.tau {
		if first || t < m {
			m, first = t, false
		}
	}
	return m
}

// Arcs returns the tracked arcs sorted by (From, To).
func (p *Pheromone) Arcs() []Arc {
	out := make([]Arc, 0, len(p.tau))
	for a := range p.tau {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
