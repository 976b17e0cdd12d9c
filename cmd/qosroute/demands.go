package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qosroute/loader"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

type demandRow struct {
	loader.Demand
	Result qos.Result `json:"result"`
	Error  string     `json:"error,omitempty"`
}

func newDemandsCmd(a *app) *cobra.Command {
	var (
		q    queryFlags
		file string
	)
	cmd := &cobra.Command{
		Use:   "demands",
		Short: "Solve every row of a demand table",
		Long:  "demands reads source;destination;demand rows and solves each one with the configured algorithm. Rows with invalid endpoints are reported and skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				file = a.cfg.Data.Demands
			}
			if file == "" {
				return errors.New("a demand table is required (--file or data.demands)")
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			base, err := a.request(cmd, &q)
			if err != nil {
				return err
			}
			ds, err := loader.LoadDemandFile(file)
			if err != nil {
				return err
			}

			rows := make([]demandRow, len(ds))
			found := 0
			for i, d := range ds {
				req := base
				req.Source, req.Destination, req.Demand = d.Source, d.Destination, d.Demand
				rows[i].Demand = d
				res, err := routing.Solve(g, req)
				if err != nil {
					a.log.Warn("demand skipped", zap.Int("row", i+1), zap.Error(err))
					rows[i].Error = err.Error()
					rows[i].Result = qos.NoPath(routing.Label(base.Algorithm), err.Error())
					continue
				}
				rows[i].Result = res
				if res.Found() {
					found++
				}
			}
			a.log.Info("demands solved",
				zap.String("algorithm", base.Algorithm.String()),
				zap.Int("rows", len(rows)),
				zap.Int("found", found))

			if a.flags.output == "json" {
				return writeJSON(a.out(cmd), rows)
			}
			keys := make([]string, len(rows))
			results := make([]qos.Result, len(rows))
			for i, r := range rows {
				keys[i] = fmt.Sprintf("%d->%d @%g", r.Source, r.Destination, r.Demand.Demand)
				results[i] = r.Result
			}
			return writeTable(a.out(cmd), "demand", keys, results)
		},
	}
	q.register(cmd, true)
	cmd.Flags().StringVarP(&file, "file", "f", "", "demand table (overrides data.demands)")
	return cmd
}
