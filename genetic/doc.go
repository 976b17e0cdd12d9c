// Package genetic implements a genetic-algorithm search for a low-cost QoS
// path between two vertices of a network.Graph under a bandwidth demand.
//
// Individuals are simple admissible paths. The engine:
//
//  1. Seeds the population with up to 2·PopulationSize randomized-DFS samples
//     (dfs.RandomPath with a uniform frontier picker).
//  2. Each generation sorts by fitness (qos.PathCost, lower is better; a path
//     whose cost cannot be computed scores +Inf), keeps the Elite best
//     unchanged, and fills the remaining slots with children of two distinct
//     parents drawn from the ParentPool best.
//  3. Crossover splices parent1's prefix with parent2's suffix at a random
//     common interior vertex; with no common vertex it returns one parent at
//     random, and a splice that repeats a vertex falls back to parent1.
//  4. Mutation, with probability MutationRate, cuts the child at a random
//     interior vertex and regrows the suffix with dfs.RandomPath; a regrown
//     path that repeats a vertex is discarded.
//
// The run stops after Generations rounds and returns the fittest individual.
// When no feasible path can be sampled, Run returns qos.NoPath without error.
//
// Determinism: every random draw comes from one *rand.Rand (WithSeed /
// WithRand), so equal seeds give equal results.
//
// Complexity: O(G · P · (L + V + E)) for G generations, population P and
// path length L; seeding is O(P · (V + E)).
package genetic
