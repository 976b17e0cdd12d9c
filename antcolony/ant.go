package antcolony

import "math"

// candidate is a reachable next vertex and its transition value.
type candidate struct {
	to    int
	value float64
}

// walk builds one ant's path from src. It returns nil when the ant gets
// stuck or runs out of steps.
func (c *Colony) walk(src, dst int) []int {
	path := []int{src}
	visited := map[int]struct{}{src: {}}
	cur := src

	for step := 0; step < c.opts.MaxSteps && cur != dst; step++ {
		next, ok := c.choose(cur, visited)
		if !ok {
			return nil
		}
		c.localUpdate(cur, next)
		path = append(path, next)
		visited[next] = struct{}{}
		cur = next
	}

	if cur != dst {
		return nil
	}
	return path
}

// choose applies the pseudo-random proportional rule at u.
func (c *Colony) choose(u int, visited map[int]struct{}) (int, bool) {
	cands := c.candidates(u, visited)
	if len(cands) == 0 {
		return 0, false
	}

	if c.rnd.Float64() < c.opts.Q0 {
		best := cands[0]
		for _, cd := range cands[1:] {
			if cd.value > best.value {
				best = cd
			}
		}
		return best.to, true
	}

	var total float64
	for _, cd := range cands {
		total += cd.value
	}
	r := c.rnd.Float64() * total
	var acc float64
	for _, cd := range cands {
		acc += cd.value
		if acc >= r {
			return cd.to, true
		}
	}
	return cands[len(cands)-1].to, true
}

// candidates lists unvisited admissible neighbors of u with their values,
// in adjacency order.
func (c *Colony) candidates(u int, visited map[int]struct{}) []candidate {
	var out []candidate
	for _, v := range c.g.AdmissibleNeighbors(u, c.demand) {
		if _, seen := visited[v]; seen {
			continue
		}
		eta, ok := c.eta[Arc{u, v}]
		if !ok {
			continue
		}
		tau := c.pher.Get(u, v)
		out = append(out, candidate{
			to:    v,
			value: math.Pow(tau, c.opts.Alpha) * math.Pow(eta, c.opts.Beta),
		})
	}
	return out
}

func (c *Colony) localUpdate(u, v int) {
	c.pher.Set(u, v, (1-c.opts.Phi)*c.pher.Get(u, v)+c.opts.Phi*c.opts.Tau0)
}
