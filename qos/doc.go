// Package qos is the shared multi-objective cost model consumed by every
// path-search engine: link, step and path metrics, the weighted scalar
// objective, and the fixed-shape Result returned by the engines.
//
// Canonical path convention, for p = [n0, n1, …, nk]:
//
//	totalDelay      = Σ linkDelay(n_i, n_i+1) + Σ processingDelay(n_i), i ∈ 1..k-1
//	reliabilityCost = Σ −ln linkReliability(n_i, n_i+1) + Σ −ln reliability(n_i), i ∈ 0..k
//	resourceCost    = Σ MaxBandwidth / bandwidth(n_i, n_i+1)
//	totalCost       = wDelay·totalDelay + wReliability·reliabilityCost + wResource·resourceCost
//
// Source and destination processing delays are excluded; every vertex
// reliability, endpoints included, is penalized.
//
// Three granularities are offered:
//
//   - LinkCost / WeightedLinkCost: one directed link u→v with u's own processing
//     delay and reliability attributed to it. Used for the ant colony heuristic.
//   - StepCost: one hop of a path from src to dst, attributed so that the sum of
//     StepCost over a path equals EvaluatePath exactly. Used for Q-learning
//     rewards and the Dijkstra baseline.
//   - EvaluatePath / PathCost: a complete path.
//
// Errors (sentinel):
//
//   - ErrInvalidWeights   – weight triple negative, NaN, or not summing to 1 ± 1e-5.
//   - ErrMissingLinkInfo  – a queried pair has no link (the caller picked a non-neighbor).
//   - ErrInvalidPath      – path shorter than two vertices.
//   - ErrNoFeasiblePath   – reported through Result.Err when a search found nothing.
//   - ErrIncompletePath   – reported through Result.Err for a partial (gave-up) path.
//
// A reliability ≤ 0 never reaches ln: it costs SentinelReliabilityCost instead.
package qos
