// Package loader reads the node, edge and demand tables of a QoS network
// and builds a network.Graph from them.
//
// Table layouts (one record per line, header row optional):
//
//	nodes:   id ; processing_delay ; reliability
//	edges:   source ; target ; bandwidth ; delay ; reliability
//	demands: source ; destination ; demand
//
// The separator is detected from the first non-empty line (';', tab, then
// ','). When it is not ',', decimal commas are accepted ("0,99"). Lines
// starting with '#' are ignored.
//
// WriteGraph writes the node and edge tables back in the same format with
// ';' separators.
package loader
