package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/qosroute/network"
)

// WriteGraph writes g as a node table and an edge table with ';' separators
// and a header row. Each link is written once, from its smaller endpoint.
func WriteGraph(g *network.Graph, nodes, edges io.Writer) error {
	nw := csv.NewWriter(nodes)
	nw.Comma = ';'
	ew := csv.NewWriter(edges)
	ew.Comma = ';'

	if err := nw.Write([]string{"id", "processing_delay", "reliability"}); err != nil {
		return fmt.Errorf("loader: write nodes: %w", err)
	}
	if err := ew.Write([]string{"source", "target", "bandwidth", "delay", "reliability"}); err != nil {
		return fmt.Errorf("loader: write edges: %w", err)
	}

	for _, id := range g.VertexIDs() {
		v, _ := g.Vertex(id)
		if err := nw.Write([]string{strconv.Itoa(id), ftoa(v.ProcessingDelay), ftoa(v.Reliability)}); err != nil {
			return fmt.Errorf("loader: write nodes: %w", err)
		}
		for _, l := range g.Neighbors(id) {
			if l.To < id {
				continue
			}
			rec := []string{strconv.Itoa(id), strconv.Itoa(l.To), ftoa(l.Edge.Bandwidth), ftoa(l.Edge.Delay), ftoa(l.Edge.Reliability)}
			if err := ew.Write(rec); err != nil {
				return fmt.Errorf("loader: write edges: %w", err)
			}
		}
	}

	nw.Flush()
	ew.Flush()
	if err := nw.Error(); err != nil {
		return fmt.Errorf("loader: write nodes: %w", err)
	}
	if err := ew.Error(); err != nil {
		return fmt.Errorf("loader: write edges: %w", err)
	}
	return nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
