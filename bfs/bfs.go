package bfs

import (
	"fmt"

	"github.com/katalvlaran/qosroute/network"
)

// Explore runs a breadth-first search from src over the links admitted by
// the options.
func Explore(g *network.Graph, src int, opts ...Option) (*Reach, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSource, src)
	}

	n := g.Order()
	s := &search{
		g:    g,
		opts: o,
		fifo: make([]int, 0, n),
		reach: &Reach{
			Source: src,
			Order:  make([]int, 0, n),
			Hops:   make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	s.reach.Hops[src] = 0
	s.fifo = append(s.fifo, src)
	return s.reach, s.run()
}

// Reachable reports whether dst is reachable from src over links with
// Bandwidth ≥ demand.
func Reachable(g *network.Graph, src, dst int, demand float64) (bool, error) {
	r, err := Explore(g, src, WithDemand(demand))
	if err != nil {
		return false, err
	}
	return r.Contains(dst), nil
}

type search struct {
	g     *network.Graph
	opts  Options
	fifo  []int
	head  int
	reach *Reach
}

func (s *search) run() error {
	for ; s.head < len(s.fifo); s.head++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		u := s.fifo[s.head]
		hops := s.reach.Hops[u]
		s.reach.Order = append(s.reach.Order, u)
		if s.opts.Visit != nil {
			if err := s.opts.Visit(u, hops); err != nil {
				return fmt.Errorf("bfs: visit %d: %w", u, err)
			}
		}
		if s.opts.HopLimit > 0 && hops >= s.opts.HopLimit {
			continue
		}
		s.expand(u, hops+1)
	}
	return nil
}

func (s *search) expand(u, hops int) {
	for _, v := range s.g.AdmissibleNeighbors(u, s.opts.Demand) {
		if s.reach.Contains(v) {
			continue
		}
		if s.opts.LinkFilter != nil && !s.opts.LinkFilter(u, v) {
			continue
		}
		s.reach.Hops[v] = hops
		s.reach.Parent[v] = u
		s.fifo = append(s.fifo, v)
	}
}
