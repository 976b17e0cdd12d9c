// Package routing is the single entry point that callers (CLI, HTTP API,
// tests) use to run a QoS path search.
//
// Solve validates a Request once, short-circuits demand-infeasible queries
// with a breadth-first reachability check, dispatches to the chosen engine
// (genetic, antcolony, qlearning or dijkstra), re-evaluates the returned path
// with qos.EvaluatePath, stamps a run ID and reports to any Observers.
// Compare runs every engine on the same Request.
package routing
