package routing_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

type recorder struct {
	mu     sync.Mutex
	events []routing.Event
}

func (r *recorder) Observe(e routing.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

type SolveSuite struct {
	suite.Suite
	chain *network.Graph
	req   routing.Request
}

func (s *SolveSuite) SetupTest() {
	s.chain = builder.MustBuild(nil, builder.Path(4))
	s.req = routing.Request{
		Source:      0,
		Destination: 3,
		Demand:      100,
		Weights:     qos.Weights{Delay: 0.5, Reliability: 0.25, Resource: 0.25},
		Seed:        1,
	}
}

func (s *SolveSuite) TestEveryAlgorithmSolvesChain() {
	for _, a := range routing.AllAlgorithms {
		req := s.req
		req.Algorithm = a
		res, err := routing.Solve(s.chain, req)
		s.Require().NoError(err, a.String())
		s.Equal(qos.StatusFound, res.Status, a.String())
		s.Equal([]int{0, 1, 2, 3}, res.Path, a.String())
		s.Equal(routing.Label(a), res.Algorithm)
		s.InDelta(17, res.Breakdown.TotalDelay, 1e-6)
		_, err = uuid.Parse(res.RunID)
		s.NoError(err)
	}
}

func (s *SolveSuite) TestInfeasibleShortCircuits() {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithEdgeFn(builder.ConstEdge(10, 5, 0.99))},
		builder.Grid(3, 3),
	)
	rec := &recorder{}
	req := routing.Request{Source: 0, Destination: 8, Demand: 100, Weights: qos.DefaultWeights(), Algorithm: routing.QLearning}

	res, err := routing.Solve(g, req, routing.WithObserver(rec))
	s.Require().NoError(err)
	s.Equal(qos.StatusNoPath, res.Status)
	s.Equal("Q-Learning", res.Algorithm)
	s.Require().Len(rec.events, 1)
	s.True(rec.events[0].ShortCircuited)

	// Without the pre-check every engine still reports no path.
	for _, a := range routing.AllAlgorithms {
		req.Algorithm = a
		res, err = routing.Solve(g, req, routing.WithoutReachabilityCheck())
		s.Require().NoError(err)
		s.Equal(qos.StatusNoPath, res.Status, a.String())
		s.ErrorIs(res.Err(), qos.ErrNoFeasiblePath)
	}
}

func (s *SolveSuite) TestObserverAndRunIDs() {
	rec := &recorder{}
	n := 0
	ids := routing.WithRunIDs(func() string { n++; return "run-" + string(rune('0'+n)) })

	results, err := routing.Compare(s.chain, s.req, routing.WithObserver(rec), ids)
	s.Require().NoError(err)
	s.Require().Len(results, len(routing.AllAlgorithms))
	s.Require().Len(rec.events, len(routing.AllAlgorithms))
	for i, ev := range rec.events {
		s.Equal(routing.AllAlgorithms[i], ev.Request.Algorithm)
		s.Equal(results[i].RunID, ev.Result.RunID)
		s.False(ev.ShortCircuited)
	}
	s.Equal("run-1", results[0].RunID)
	s.Equal("run-4", results[3].RunID)
}

func (s *SolveSuite) TestInputErrors() {
	_, err := routing.Solve(nil, s.req)
	s.ErrorIs(err, routing.ErrNilGraph)

	req := s.req
	req.Weights = qos.Weights{Delay: 2}
	_, err = routing.Solve(s.chain, req)
	s.ErrorIs(err, qos.ErrInvalidWeights)

	req = s.req
	req.Algorithm = routing.Algorithm(42)
	_, err = routing.Solve(s.chain, req)
	s.ErrorIs(err, routing.ErrUnknownAlgorithm)

	req = s.req
	req.Destination = 99
	_, err = routing.Compare(s.chain, req)
	s.ErrorIs(err, qos.ErrUnknownEndpoint)

	req = s.req
	req.AntColony.Rho = 3
	req.Algorithm = routing.AntColony
	_, err = routing.Solve(s.chain, req)
	s.Error(err)
}

func (s *SolveSuite) TestParamsReachEngines() {
	req := s.req
	req.Algorithm = routing.QLearning
	req.QLearning = routing.QLearningParams{Episodes: 3, MaxSteps: 1}
	// One step cannot cross three links, so the greedy walk stalls.
	res, err := routing.Solve(s.chain, req)
	s.Require().NoError(err)
	s.Equal(qos.StatusPartial, res.Status)
	s.Equal([]int{0, 1}, res.Path)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]routing.Algorithm{
		"GA": routing.Genetic, "genetic": routing.Genetic,
		"ACS": routing.AntColony, "ant_colony": routing.AntColony,
		"q-learning": routing.QLearning, " qlearning ": routing.QLearning,
		"Dijkstra": routing.Dijkstra,
	}
	for in, want := range cases {
		got, err := routing.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := routing.ParseAlgorithm("simulated-annealing")
	require.ErrorIs(t, err, routing.ErrUnknownAlgorithm)
}

func TestRequestJSON(t *testing.T) {
	var req routing.Request
	body := `{"source":1,"destination":5,"demand":50,"algorithm":"acs",
	          "weights":{"delay":0.2,"reliability":0.3,"resource":0.5},
	          "ant_colony":{"ants":5}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Equal(t, routing.AntColony, req.Algorithm)
	require.Equal(t, 5, req.AntColony.Ants)
	require.Equal(t, 0.5, req.Weights.Resource)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(out), `"algorithm":"antcolony"`)
}
