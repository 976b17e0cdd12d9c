package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/loader"
)

type generateFlags struct {
	topology string
	n        int
	rows     int
	cols     int
	p        float64
	seed     int64
	bwMin    float64
	bwMax    float64
	relMin   float64
	relMax   float64
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate NODES EDGES",
		Short: "Write a synthetic network as node and edge tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := f.constructor()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithUniformAttributes(f.bwMin, f.bwMax, f.relMin, f.relMax),
			}, con)
			if err != nil {
				return err
			}

			nodes, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer nodes.Close()
			edges, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer edges.Close()

			if err := loader.WriteGraph(g, nodes, edges); err != nil {
				return err
			}
			st := g.Stats()
			a.log.Info("network written",
				zap.String("topology", f.topology),
				zap.Int("vertices", st.Vertices),
				zap.Int("links", st.Links))
			fmt.Fprintf(a.out(cmd), "%d vertices, %d links\n", st.Vertices, st.Links)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.topology, "topology", "t", "random", "path|cycle|grid|complete|random")
	fl.IntVarP(&f.n, "vertices", "n", 50, "vertex count (path, cycle, complete, random)")
	fl.IntVar(&f.rows, "rows", 5, "grid rows")
	fl.IntVar(&f.cols, "cols", 5, "grid columns")
	fl.Float64VarP(&f.p, "probability", "p", 0.1, "link probability (random)")
	fl.Int64Var(&f.seed, "seed", 1, "generator seed")
	fl.Float64Var(&f.bwMin, "bw-min", 100, "minimum link bandwidth")
	fl.Float64Var(&f.bwMax, "bw-max", 1000, "maximum link bandwidth")
	fl.Float64Var(&f.relMin, "rel-min", 0.95, "minimum reliability")
	fl.Float64Var(&f.relMax, "rel-max", 0.999, "maximum reliability")
	return cmd
}

func (f generateFlags) constructor() (builder.Constructor, error) {
	switch f.topology {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", f.topology)
	}
}
