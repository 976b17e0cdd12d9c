package network

import "fmt"

// IsPath checks p against the Path invariant for the given endpoints and demand:
// len(p) ≥ 2, p[0] == src, p[len-1] == dst, no repeated vertex, and every
// consecutive pair joined by an admissible link.
//
// Returns nil or an error wrapping ErrInvalidPath.
// Complexity: O(len(p) · maxDegree).
func (g *Graph) IsPath(p []int, src, dst int, demand float64) error {
	if len(p) < 2 {
		return fmt.Errorf("%w: length %d", ErrInvalidPath, len(p))
	}
	if p[0] != src || p[len(p)-1] != dst {
		return fmt.Errorf("%w: endpoints %d→%d, want %d→%d", ErrInvalidPath, p[0], p[len(p)-1], src, dst)
	}
	seen := make(map[int]struct{}, len(p))
	for i, id := range p {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: vertex %d repeated", ErrInvalidPath, id)
		}
		seen[id] = struct{}{}
		if i == 0 {
			continue
		}
		if !g.Admissible(p[i-1], id, demand) {
			return fmt.Errorf("%w: hop %d→%d not admissible for demand %v", ErrInvalidPath, p[i-1], id, demand)
		}
	}

	return nil
}

// HasDuplicates reports whether p repeats any vertex.
func HasDuplicates(p []int) bool {
	seen := make(map[int]struct{}, len(p))
	for _, id := range p {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
