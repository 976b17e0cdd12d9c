package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

// queryFlags override the query section of the config.
type queryFlags struct {
	src       int
	dst       int
	demand    float64
	weights   string
	algorithm string
	seed      int64
}

func (q *queryFlags) register(cmd *cobra.Command, withAlgorithm bool) {
	f := cmd.Flags()
	f.IntVarP(&q.src, "src", "s", 0, "source vertex")
	f.IntVarP(&q.dst, "dst", "d", 0, "destination vertex")
	f.Float64Var(&q.demand, "demand", 0, "bandwidth demand")
	f.StringVarP(&q.weights, "weights", "w", "", "delay,reliability,resource weights summing to 1")
	f.Int64Var(&q.seed, "seed", 0, "seed for the stochastic engines")
	if withAlgorithm {
		f.StringVarP(&q.algorithm, "algorithm", "a", "", "genetic|antcolony|qlearning|dijkstra")
	}
}

// request merges the flags that were set over the configured request.
func (a *app) request(cmd *cobra.Command, q *queryFlags) (routing.Request, error) {
	req, err := a.cfg.Request()
	if err != nil {
		return routing.Request{}, err
	}
	f := cmd.Flags()
	if f.Changed("src") {
		req.Source = q.src
	}
	if f.Changed("dst") {
		req.Destination = q.dst
	}
	if f.Changed("demand") {
		req.Demand = q.demand
	}
	if f.Changed("seed") {
		req.Seed = q.seed
	}
	if f.Changed("weights") {
		if req.Weights, err = parseWeights(q.weights); err != nil {
			return routing.Request{}, err
		}
	}
	if f.Changed("algorithm") {
		if req.Algorithm, err = routing.ParseAlgorithm(q.algorithm); err != nil {
			return routing.Request{}, err
		}
	}
	return req, nil
}

func parseWeights(s string) (qos.Weights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return qos.Weights{}, fmt.Errorf("%w: want three comma-separated values, got %q", qos.ErrInvalidWeights, s)
	}
	var v [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return qos.Weights{}, fmt.Errorf("%w: %q", qos.ErrInvalidWeights, p)
		}
		v[i] = x
	}
	return qos.NewWeights(v[0], v[1], v[2])
}
