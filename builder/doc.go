// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic QoS network fixtures: chains,
// rings, grids, complete graphs and random sparse topologies whose vertex
// and link attributes come from pluggable attribute functions.
//
// A Constructor mutates a *network.Graph using the resolved builder
// configuration; BuildGraph creates the graph and applies constructors in
// order. Vertex IDs are 0..n-1 (plus an optional offset).
//
// Determinism: same options, same seed and same constructor order ⇒
// identical graphs, including neighbor order.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformAttributes(250, 1000, 0.95, 0.999)},
//	    builder.RandomSparse(250, 0.4),
//	)
package builder
