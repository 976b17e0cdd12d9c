// File: methods_adjacent.go
// Role: Neighborhood queries and admissibility under a bandwidth demand.
//
// Determinism:
//   - Neighbors and AdmissibleNeighbors preserve link insertion order.
//   - Returned slices are fresh copies; callers may modify them.
package network

import "math"

// Neighbors returns the adjacency entries of id in insertion order.
// Unknown ids yield nil.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Link, len(src))
	copy(out, src)

	return out
}

// AdmissibleNeighbors returns the neighbor IDs of id whose connecting link
// satisfies Bandwidth ≥ demand, in insertion order. Links with
// Bandwidth ≤ 0 are never admissible.
// Complexity: O(deg(id)).
func (g *Graph) AdmissibleNeighbors(id int, demand float64) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, l := range g.adjacency[id] {
		if carries(l.Edge, demand) {
			out = append(out, l.To)
		}
	}
	return out
}

// Admissible reports whether u→v exists and carries at least demand Mbps.
func (g *Graph) Admissible(u, v int, demand float64) bool {
	e, ok := g.Link(u, v)
	return ok && carries(e, demand)
}

// carries is the admissibility rule. Unchecked graphs may hold links with
// zero or negative bandwidth; they carry nothing.
func carries(e Edge, demand float64) bool {
	return e.Bandwidth > 0 && e.Bandwidth >= demand
}

// Stats returns a snapshot of size and bandwidth range.
// On a graph without links MinBandwidth and MaxBandwidth are 0.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Vertices:     len(g.vertices),
		Links:        g.links,
		MinBandwidth: math.Inf(1),
		MaxBandwidth: math.Inf(-1),
	}
	for _, adj := range g.adjacency {
		if len(adj) > s.MaxDegree {
			s.MaxDegree = len(adj)
		}
		for _, l := range adj {
			s.MinBandwidth = math.Min(s.MinBandwidth, l.Edge.Bandwidth)
			s.MaxBandwidth = math.Max(s.MaxBandwidth, l.Edge.Bandwidth)
		}
	}
	if s.Links == 0 {
		s.MinBandwidth, s.MaxBandwidth = 0, 0
	}

	return s
}
