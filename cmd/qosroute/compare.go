package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qosroute/internal/logging"
	"github.com/katalvlaran/qosroute/routing"
)

func newCompareCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			req, err := a.request(cmd, &q)
			if err != nil {
				return err
			}
			results, err := routing.Compare(g, req, routing.WithObserver(logging.NewObserver(a.log)))
			if err != nil {
				return err
			}
			if a.flags.output == "json" {
				return writeJSON(a.out(cmd), results)
			}
			keys := make([]string, len(results))
			for i, r := range results {
				keys[i] = r.Algorithm
			}
			return writeTable(a.out(cmd), "algorithm", keys, results)
		},
	}
	q.register(cmd, false)
	return cmd
}
