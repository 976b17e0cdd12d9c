package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/qosroute/internal/metrics"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

const shutdownTimeout = 5 * time.Second

// Server holds the network and the collaborators shared by every handler.
type Server struct {
	graph    *network.Graph
	log      *zap.Logger
	metrics  *metrics.Metrics
	defaults routing.Request
	solveOps []routing.Option
	started  time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records searches and requests on m and exposes GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithDefaults sets the request that body fields are merged over.
func WithDefaults(req routing.Request) Option {
	return func(s *Server) { s.defaults = req }
}

// WithSolveOptions passes extra options to every routing call.
func WithSolveOptions(opts ...routing.Option) Option {
	return func(s *Server) { s.solveOps = append(s.solveOps, opts...) }
}

// NewServer builds a Server over g. A nil log discards output.
func NewServer(g *network.Graph, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		graph:    g,
		log:      log,
		defaults: routing.Request{Weights: qos.DefaultWeights()},
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics != nil {
		s.solveOps = append(s.solveOps, routing.WithObserver(s.metrics))
	}
	return s
}

// Router returns the gin engine with every route and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	r.GET("/health", s.health)
	v1 := r.Group("/api/v1")
	{
		v1.POST("/route", s.route)
		v1.POST("/compare", s.compare)
		v1.GET("/graph", s.graphStats)
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errc
}
