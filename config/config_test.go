package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/config"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	req, err := cfg.Request()
	require.NoError(t, err)
	require.Equal(t, routing.Genetic, req.Algorithm)
	require.Equal(t, qos.DefaultWeights(), req.Weights)
	require.Equal(t, 50, req.Genetic.PopulationSize)
	require.Equal(t, 500, req.QLearning.Episodes)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	doc := `
data:
  nodes: nodes.csv
  edges: edges.csv
query:
  source: 8
  destination: 44
  demand: 200
  algorithm: acs
  weights: {delay: 0.5, reliability: 0.25, resource: 0.25}
ant_colony:
  ants: 30
log:
  level: debug
  encoding: json
`
	path := filepath.Join(t.TempDir(), "qosroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "nodes.csv", cfg.Data.Nodes)
	require.Equal(t, 30, cfg.AntColony.Ants)
	require.Equal(t, 10, cfg.AntColony.Iterations)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, ":8080", cfg.Server.Addr)

	req, err := cfg.Request()
	require.NoError(t, err)
	require.Equal(t, routing.AntColony, req.Algorithm)
	require.Equal(t, 8, req.Source)
	require.Equal(t, 200.0, req.Demand)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"weights":   "query: {weights: {delay: 0.9, reliability: 0.9, resource: 0}}",
		"algorithm": "query: {algorithm: annealing}",
		"level":     "log: {level: loud}",
		"rho":       "ant_colony: {rho: 1.5}",
		"demand":    "query: {demand: -3}",
		"mode":      "server: {mode: turbo}",
		"episodes":  "q_learning: {episodes: 1000000001}",
		"ants":      "ant_colony: {ants: 20000}",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("query: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	out, err := config.Default().Marshal()
	require.NoError(t, err)
	back, err := config.Parse(out)
	require.NoError(t, err)
	require.Equal(t, config.Default(), back)
}
