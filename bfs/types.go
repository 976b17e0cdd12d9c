package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned for a nil *network.Graph.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrUnknownSource is returned when the source vertex is not in the graph.
	ErrUnknownSource = errors.New("bfs: source vertex not in graph")

	// ErrNotReached is returned by Reach.Route for a vertex outside the search tree.
	ErrNotReached = errors.New("bfs: vertex not reached")

	// ErrOptionViolation wraps every rejected Option.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts Options. A rejected value is kept and reported by Explore.
type Option func(*Options)

// Options controls one Explore call.
type Options struct {
	Ctx context.Context

	// Demand excludes links whose bandwidth is below it.
	Demand float64

	// HopLimit bounds the search radius; 0 means unbounded.
	HopLimit int

	// LinkFilter vetoes the hop u→v when it returns false.
	LinkFilter func(u, v int) bool

	// Visit runs once per dequeued vertex; a non-nil error stops the search.
	Visit func(id, hops int) error

	err error
}

// DefaultOptions returns a background context, demand 0 and no hop limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func (o *Options) reject(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithContext makes Explore stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDemand keeps only links with Bandwidth ≥ d. d must be ≥ 0.
func WithDemand(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.reject("negative demand %v", d)
			return
		}
		o.Demand = d
	}
}

// WithHopLimit stops expanding vertices n hops from the source. n must be ≥ 0.
func WithHopLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.reject("negative hop limit %d", n)
			return
		}
		o.HopLimit = n
	}
}

// WithLinkFilter excludes the hops fn rejects, e.g. links under maintenance.
func WithLinkFilter(fn func(u, v int) bool) Option {
	return func(o *Options) { o.LinkFilter = fn }
}

// WithVisit installs a per-vertex hook.
func WithVisit(fn func(id, hops int) error) Option {
	return func(o *Options) { o.Visit = fn }
}

// Reach is the search tree rooted at the source.
type Reach struct {
	Source int
	Order  []int       // dequeue order
	Hops   map[int]int // hop count from Source
	Parent map[int]int // tree predecessor; Source has none
}

// Contains reports whether id was reached.
func (r *Reach) Contains(id int) bool {
	_, ok := r.Hops[id]
	return ok
}

// Route returns a fewest-hop vertex sequence from Source to dst.
func (r *Reach) Route(dst int) ([]int, error) {
	h, ok := r.Hops[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dst)
	}
	route := make([]int, h+1)
	for i, v := h, dst; i >= 0; i-- {
		route[i] = v
		v = r.Parent[v]
	}
	return route, nil
}
