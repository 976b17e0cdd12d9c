package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called for an ID already present.
	ErrDuplicateVertex = errors.New("network: duplicate vertex")

	// ErrDuplicateLink indicates AddEdge was called for a pair already linked.
	ErrDuplicateLink = errors.New("network: duplicate link")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")

	// ErrBadAttribute indicates a vertex or edge attribute outside its valid range.
	ErrBadAttribute = errors.New("network: attribute out of range")

	// ErrInvalidPath indicates a path violating the Path invariant.
	ErrInvalidPath = errors.New("network: invalid path")
)

// Vertex is a network node.
//
// ProcessingDelay is in milliseconds (≥ 0); Reliability lies in (0, 1].
type Vertex struct {
	ID              int
	ProcessingDelay float64
	Reliability     float64
}

// Edge holds the QoS attributes of an undirected link. Both directed
// adjacency entries of a link carry an identical copy.
type Edge struct {
	// Bandwidth is the link capacity in Mbps (> 0).
	Bandwidth float64

	// Delay is the link propagation delay in milliseconds (≥ 0).
	Delay float64

	// Reliability is the link success probability in (0, 1].
	Reliability float64
}

// Link is one directed adjacency entry: the neighbor and the shared Edge.
type Link struct {
	To   int
	Edge Edge
}

// GraphOption configures a Graph before construction.
type GraphOption func(g *Graph)

// WithUncheckedAttributes disables range validation of vertex and edge
// attributes. Loaders use it to admit raw measurement data. Links with
// Bandwidth ≤ 0 are never admissible, and the qos package clamps negative
// delays to 0 and reliabilities ≤ 0 to a sentinel cost.
func WithUncheckedAttributes() GraphOption {
	return func(g *Graph) { g.unchecked = true }
}

// Graph is the QoS network graph.
//
// mu guards vertices and adjacency. Neighbor slices keep insertion order.
type Graph struct {
	mu sync.RWMutex

	unchecked bool // skip attribute range checks

	vertices  map[int]Vertex
	adjacency map[int][]Link
	links     int // number of undirected links
}

// Stats is a snapshot of graph size and attribute ranges.
type Stats struct {
	Vertices     int     `json:"vertices"`
	Links        int     `json:"links"`
	MinBandwidth float64 `json:"min_bandwidth"`
	MaxBandwidth float64 `json:"max_bandwidth"`
	MaxDegree    int     `json:"max_degree"`
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]Vertex),
		adjacency: make(map[int][]Link),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
