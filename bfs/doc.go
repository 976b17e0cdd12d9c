// Package bfs explores the admissible subgraph of a network.Graph breadth
// first: the vertices reachable from a source over links whose bandwidth
// covers a demand, with their hop counts and a fewest-hop tree.
//
// The routing dispatcher calls Reachable before starting an engine so that
// an unreachable destination is reported at once instead of after a full
// search budget.
//
//	r, err := bfs.Explore(g, 0, bfs.WithDemand(100), bfs.WithHopLimit(4))
//	route, err := r.Route(7)
//
// Explore is O(V + E).
package bfs
