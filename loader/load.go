package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/qosroute/network"
)

// LoadGraph builds a graph from a node table and an edge table.
//
// Errors: ErrMalformedRow, ErrEmptyTable, and the network insert errors
// (ErrDuplicateVertex, ErrVertexNotFound, ErrBadAttribute, ErrDuplicateLink,
// ErrLoopNotAllowed) wrapped with the offending line.
func LoadGraph(nodes, edges io.Reader, opts ...Option) (*network.Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	nt, err := readTable("nodes", nodes, 3)
	if err != nil {
		return nil, err
	}
	et, err := readTable("edges", edges, 5)
	if err != nil {
		return nil, err
	}

	g := network.NewGraph(o.graphOptions()...)
	for k := range nt.records {
		v, err := parseVertex(nt, k)
		if err != nil {
			return nil, err
		}
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("loader: nodes line %d: %w", nt.lines[k], err)
		}
	}
	for k := range et.records {
		u, v, e, err := parseEdge(et, k)
		if err != nil {
			return nil, err
		}
		err = g.AddEdge(u, v, e)
		if errors.Is(err, network.ErrDuplicateLink) && o.skipDuplicates {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loader: edges line %d: %w", et.lines[k], err)
		}
	}
	return g, nil
}

// LoadGraphFiles opens both files and calls LoadGraph.
func LoadGraphFiles(nodePath, edgePath string, opts ...Option) (*network.Graph, error) {
	nf, err := os.Open(nodePath)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer nf.Close()

	ef, err := os.Open(edgePath)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer ef.Close()

	return LoadGraph(nf, ef, opts...)
}

// LoadDemands parses a demand table.
func LoadDemands(r io.Reader) ([]Demand, error) {
	t, err := readTable("demands", r, 3)
	if err != nil {
		return nil, err
	}
	out := make([]Demand, 0, len(t.records))
	for k := range t.records {
		var d Demand
		if d.Source, err = t.intAt(k, 0); err != nil {
			return nil, err
		}
		if d.Destination, err = t.intAt(k, 1); err != nil {
			return nil, err
		}
		if d.Demand, err = t.floatAt(k, 2); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadDemandFile opens path and calls LoadDemands.
func LoadDemandFile(path string) ([]Demand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	return LoadDemands(f)
}

func parseVertex(t *table, k int) (network.Vertex, error) {
	var (
		v   network.Vertex
		err error
	)
	if v.ID, err = t.intAt(k, 0); err != nil {
		return v, err
	}
	if v.ProcessingDelay, err = t.floatAt(k, 1); err != nil {
		return v, err
	}
	if v.Reliability, err = t.floatAt(k, 2); err != nil {
		return v, err
	}
	return v, nil
}

func parseEdge(t *table, k int) (u, v int, e network.Edge, err error) {
	if u, err = t.intAt(k, 0); err != nil {
		return
	}
	if v, err = t.intAt(k, 1); err != nil {
		return
	}
	if e.Bandwidth, err = t.floatAt(k, 2); err != nil {
		return
	}
	if e.Delay, err = t.floatAt(k, 3); err != nil {
		return
	}
	e.Reliability, err = t.floatAt(k, 4)
	return
}
