// Package network defines the QoS network graph shared by every path-search
// engine in qosroute: vertices carrying a processing delay and a reliability,
// and undirected links carrying bandwidth, delay and reliability.
//
// Overview:
//
//   - A Graph is built once (by hand, by the builder helpers in tests, or by the
//     loader package) and then treated as read-only by every search engine.
//   - Every undirected link is materialized as two directed adjacency entries
//     that share the same Edge attributes, so adjacency is always symmetric:
//     if u→v exists, v→u exists with identical values.
//   - Neighbor order follows insertion order; engines that sample neighbors
//     with a seeded RNG are therefore reproducible across runs.
//
// Admissibility:
//
//	An edge is admissible for a bandwidth demand d iff Edge.Bandwidth ≥ d
//	and Edge.Bandwidth > 0.
//	AdmissibleNeighbors and Admissible apply this rule; IsPath checks the full
//	Path invariant (endpoints, no repeated vertex, admissible hops).
//
// Errors (sentinel):
//
//   - ErrVertexNotFound  – operation referenced a vertex that does not exist.
//   - ErrDuplicateVertex – AddVertex called twice for the same ID.
//   - ErrDuplicateLink   – AddEdge called twice for the same unordered pair.
//   - ErrLoopNotAllowed  – AddEdge with u == v.
//   - ErrBadAttribute    – attribute outside its documented range.
//   - ErrInvalidPath     – IsPath rejected a path.
//
// Thread safety:
//
//   - All methods are safe for concurrent use. Construction takes the write lock,
//     queries take the read lock, so many searches may share one *Graph.
package network
