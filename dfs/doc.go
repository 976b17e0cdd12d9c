// Package dfs implements the randomized depth-first feasible-path sampler
// used to seed and mutate genetic-algorithm populations.
//
// What:
//
//   - RandomPath explores an explicit frontier of (vertex, path-so-far)
//     entries over the admissible subgraph (links with Bandwidth ≥ demand).
//     At every step a Picker chooses which frontier entry to expand; the
//     default picks uniformly at random instead of strict LIFO, which
//     diversifies the sampled paths while keeping depth-first character.
//   - Each entry carries its own path, so a returned path never repeats a
//     vertex. A vertex is expanded at most once per call, which bounds the
//     work by O(V + E) even when the target is unreachable.
//
// Key Types:
//
//   - Frontier: the explicit frontier collection (Push / Take / Len).
//   - Picker:   func(n int) int selecting the frontier index to take.
//   - Option:   WithRand, WithSeed, WithPicker, WithMaxExpansions.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrNoPath               frontier emptied (or expansion budget exhausted)
//     before reaching the target
//
// Complexity:
//
//   - Time O(V + E) expansions, each copying a path of length ≤ V: O(V·(V+E)) worst case.
//   - Memory O(E·V) for frontier entries in the worst case.
package dfs
