package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qosroute/api"
	"github.com/katalvlaran/qosroute/internal/logging"
	"github.com/katalvlaran/qosroute/internal/metrics"
	"github.com/katalvlaran/qosroute/routing"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve path queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			defaults, err := a.cfg.Request()
			if err != nil {
				return err
			}

			gin.SetMode(a.cfg.Server.Mode)
			srv := api.NewServer(g, a.log,
				api.WithMetrics(metrics.New()),
				api.WithDefaults(defaults),
				api.WithSolveOptions(routing.WithObserver(logging.NewObserver(a.log))),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, a.cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
