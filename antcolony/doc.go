// Package antcolony implements an Ant Colony System (ACS) search for a
// low-cost QoS path between two vertices of a network.Graph under a
// bandwidth demand.
//
// State is a directed pheromone table over every admissible arc, seeded
// with Tau0. Each iteration sends Ants ants from the source one after the
// other; they share the table and see each other's local updates, so ant
// order within an iteration matters.
//
// Per ant, at vertex u with unvisited admissible neighbors N:
//
//	value(v) = tau(u,v)^Alpha · eta(u,v)^Beta,   eta = 1 / (weightedLinkCost(u,v) + 1e-9)
//
// With probability Q0 the ant takes argmax value(v); otherwise it samples v
// proportionally to value(v). Right after traversing (u,v):
//
//	tau(u,v) ← (1−Phi)·tau(u,v) + Phi·Tau0
//
// An ant fails when N is empty or after MaxSteps moves.
//
// At the end of an iteration every known arc evaporates, tau ← (1−Rho)·tau,
// and the arcs of the iteration-best path receive
//
//	tau ← (1−Rho)·tau + Rho / (iterBestCost + 1e-9).
//
// The best path seen over all iterations is returned, or qos.NoPath when no
// ant ever reached the destination.
//
// Colony keeps the pheromone table between Run calls for callers that want
// incremental reuse; Run is the one-shot form.
//
// Complexity: O(Iterations · Ants · MaxSteps · maxDegree) time and
// O(E) memory for the pheromone and heuristic tables.
package antcolony
