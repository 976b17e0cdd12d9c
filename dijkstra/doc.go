// Package dijkstra computes the exact minimum-cost QoS path between two
// vertices of a network.Graph under a bandwidth demand.
//
// Every hop u→v of the admissible subgraph is weighted with
// qos.StepCost(u, v, src, dst, w). Those weights are non-negative and sum
// along any path to its canonical weighted cost (qos.EvaluatePath), so the
// Dijkstra tree path to dst is the cheapest simple path. The heuristic
// engines are measured against it.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E).
//
// Options:
//
//   - WithMaxDistance(x): vertices farther than x are not expanded (x ≥ 0).
//   - WithStopAtDestination(): stop as soon as dst is settled.
package dijkstra
