package dfs

import (
	"fmt"

	"github.com/katalvlaran/qosroute/internal/rng"
	"github.com/katalvlaran/qosroute/network"
)

// RandomPath samples a simple admissible path from start to target.
//
// Loop:
//  1. Take the frontier entry chosen by the picker.
//  2. If it sits on target, return its path.
//  3. Otherwise, if its vertex was not expanded yet, push one entry per
//     admissible neighbor absent from the entry's own path.
//
// The returned slice is freshly allocated. start == target yields [start].
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNoPath.
func RandomPath(g *network.Graph, start, target int, demand float64, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	pick := o.Picker
	if pick == nil {
		pick = UniformPicker(rng.Or(o.Rand, 0))
	}

	var (
		f        Frontier
		expanded = make(map[int]struct{})
		budget   = o.MaxExpansions
	)
	f.Push(start, []int{start})

	for f.Len() > 0 {
		at, path := f.Take(pick(f.Len()))
		if at == target {
			return path, nil
		}
		if _, done := expanded[at]; done {
			continue
		}
		if budget > 0 && len(expanded) >= budget {
			break
		}
		expanded[at] = struct{}{}

		for _, next := range g.AdmissibleNeighbors(at, demand) {
			if contains(path, next) {
				continue
			}
			np := make([]int, len(path)+1)
			copy(np, path)
			np[len(path)] = next
			f.Push(next, np)
		}
	}

	return nil, fmt.Errorf("%w: %d→%d (demand %v)", ErrNoPath, start, target, demand)
}

func contains(p []int, id int) bool {
	for _, x := range p {
		if x == id {
			return true
		}
	}
	return false
}
