// File: methods_vertices.go
// Role: Vertex registration and queries.
//
// Determinism:
//   - VertexIDs() returns IDs sorted ascending.
package network

import (
	"fmt"
	"sort"
)

// AddVertex registers v.
//
// Errors:
//   - ErrDuplicateVertex if v.ID is already present.
//   - ErrBadAttribute if ProcessingDelay < 0 or Reliability ∉ (0, 1]
//     (skipped under WithUncheckedAttributes).
//
// Complexity: O(1).
func (g *Graph) AddVertex(v Vertex) error {
	if !g.unchecked {
		if v.ProcessingDelay < 0 {
			return fmt.Errorf("%w: vertex %d processing delay %v", ErrBadAttribute, v.ID, v.ProcessingDelay)
		}
		if v.Reliability <= 0 || v.Reliability > 1 {
			return fmt.Errorf("%w: vertex %d reliability %v", ErrBadAttribute, v.ID, v.Reliability)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, v.ID)
	}
	g.vertices[v.ID] = v
	if _, ok := g.adjacency[v.ID]; !ok {
		g.adjacency[v.ID] = nil
	}

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	return v, ok
}

// VertexIDs returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Ints(ids)
	return ids
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
