// File: methods_edges.go
// Role: Link registration and lookups.
//
// Invariant:
//   - AddEdge writes u→v and v→u with the same Edge value, or nothing at all.
package network

import "fmt"

// AddEdge links u and v with the attributes in e, in both directions.
//
// Implementation:
//   - Stage 1: Validate attributes (unless WithUncheckedAttributes) and reject loops.
//   - Stage 2: Under the write lock, check both endpoints exist and no link is present.
//   - Stage 3: Append v to adjacency[u] and u to adjacency[v].
//
// Errors:
//   - ErrLoopNotAllowed, ErrBadAttribute, ErrVertexNotFound, ErrDuplicateLink.
//
// Complexity: O(deg(u)) for the duplicate scan.
func (g *Graph) AddEdge(u, v int, e Edge) error {
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if !g.unchecked {
		if err := validateEdge(e); err != nil {
			return fmt.Errorf("%w: link %d-%d", err, u, v)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	for _, l := range g.adjacency[u] {
		if l.To == v {
			return fmt.Errorf("%w: %d-%d", ErrDuplicateLink, u, v)
		}
	}

	g.adjacency[u] = append(g.adjacency[u], Link{To: v, Edge: e})
	g.adjacency[v] = append(g.adjacency[v], Link{To: u, Edge: e})
	g.links++

	return nil
}

func validateEdge(e Edge) error {
	switch {
	case e.Bandwidth <= 0:
		return fmt.Errorf("%w: bandwidth %v", ErrBadAttribute, e.Bandwidth)
	case e.Delay < 0:
		return fmt.Errorf("%w: delay %v", ErrBadAttribute, e.Delay)
	case e.Reliability <= 0 || e.Reliability > 1:
		return fmt.Errorf("%w: reliability %v", ErrBadAttribute, e.Reliability)
	}
	return nil
}

// Link returns the attributes of the directed adjacency entry u→v.
// ok is false when u and v are not adjacent.
// Complexity: O(deg(u)).
func (g *Graph) Link(u, v int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, l := range g.adjacency[u] {
		if l.To == v {
			return l.Edge, true
		}
	}
	return Edge{}, false
}

// Size returns the number of undirected links.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}
