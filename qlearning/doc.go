// Package qlearning implements tabular Q-learning over the admissible
// subgraph of a network.Graph and greedy extraction of a QoS path.
//
// The Agent keeps a sparse value table keyed by (state, action) vertex pairs,
// so it works for any vertex ID domain. An episode starts at the source and
// moves at most MaxSteps times through unvisited admissible neighbors,
// choosing ε-greedily. For a move s→a:
//
//	reward  = GoalReward                       if a is the destination
//	        = −qos.StepCost(s, a)              otherwise
//	nextMax = 0                                if a is the destination
//	        = max Q(a, n) over a's unvisited admissible neighbors n
//	        = DeadEndPenalty                   if there are none
//	Q(s,a) ← (1−Alpha)·Q(s,a) + Alpha·(reward + Gamma·nextMax)
//
// qos.StepCost leaves out the source's processing delay, which is the
// canonical path-cost convention, so rewards along a path sum to the
// negated path cost. The source's reliability term stays in the first
// reward because the path cost charges it too. After each episode ε decays geometrically towards
// EpsilonMin.
//
// BestPath walks greedily from the source. When it reaches a vertex with no
// unvisited admissible neighbor it gives up and returns the prefix it built
// with Status qos.StatusPartial instead of wandering.
//
// The table belongs to one Agent and is not safe for concurrent use.
package qlearning
