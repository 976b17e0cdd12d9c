package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qosroute/internal/logging"
	"github.com/katalvlaran/qosroute/routing"
)

func newSolveCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a path with one algorithm",
		Example: `  qosroute solve --nodes nodes.csv --edges edges.csv -s 0 -d 9 --demand 200 -a acs
  qosroute solve -c qosroute.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			req, err := a.request(cmd, &q)
			if err != nil {
				return err
			}
			res, err := routing.Solve(g, req, routing.WithObserver(logging.NewObserver(a.log)))
			if err != nil {
				return err
			}
			if a.flags.output == "json" {
				return writeJSON(a.out(cmd), res)
			}
			return writeResult(a.out(cmd), res)
		},
	}
	q.register(cmd, true)
	return cmd
}
