// Package qosroute finds paths through a communication network that carry a
// bandwidth demand while minimising a weighted mix of delay, unreliability
// and resource consumption.
//
// Three heuristic engines search the same admissible subgraph (links whose
// bandwidth covers the demand) and report through one Result shape:
//
//	genetic/    - population of feasible paths, splice crossover, tail mutation
//	antcolony/  - Ant Colony System with local and global pheromone updates
//	qlearning/  - tabular Q-learning agent with a reusable Q-table
//	dijkstra/   - exact baseline on the same additive step cost
//
// Supporting packages:
//
//	network/    - vertices, symmetric links, admissibility
//	qos/        - weights, link and path cost, Result, error taxonomy
//	bfs/, dfs/  - reachability pre-check and random feasible paths
//	builder/    - deterministic synthetic topologies
//	loader/     - node, edge and demand tables (CSV)
//	routing/    - one entry point dispatching to every engine
//	config/     - YAML configuration
//	api/        - HTTP service (gin)
//	cmd/qosroute - command line (cobra)
//
// Quick example:
//
//	g, _ := loader.LoadGraphFiles("nodes.csv", "edges.csv")
//	res, err := routing.Solve(g, routing.Request{
//		Source: 0, Destination: 9, Demand: 100,
//		Weights:   qos.DefaultWeights(),
//		Algorithm: routing.AntColony,
//	})
//
// Heuristic results are not guaranteed optimal; compare against dijkstra.
package qosroute
