package antcolony_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qosroute/antcolony"
	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

type ColonySuite struct {
	suite.Suite
	chain *network.Graph
	grid  *network.Graph
}

func (s *ColonySuite) SetupTest() {
	s.chain = builder.MustBuild(nil, builder.Path(4))
	s.grid = builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(21), builder.WithUniformAttributes(50, 1000, 0.9, 0.999)},
		builder.Grid(4, 4),
	)
}

func (s *ColonySuite) TestChainScenario() {
	w := qos.Weights{Delay: 0.5, Reliability: 0.25, Resource: 0.25}
	res, err := antcolony.Run(s.chain, 0, 3, 100, w, antcolony.WithSeed(5))
	s.Require().NoError(err)
	s.Require().True(res.Found())
	s.Equal(antcolony.Name, res.Algorithm)
	s.Equal([]int{0, 1, 2, 3}, res.Path)
	s.InDelta(17, res.Breakdown.TotalDelay, 1e-6)
	s.InDelta(3*-math.Log(0.99)+4*-math.Log(0.999), res.Breakdown.ReliabilityCost, 1e-6)
	s.InDelta(6, res.Breakdown.ResourceCost, 1e-6)
	s.NotEmpty(res.Note)
}

func (s *ColonySuite) TestDemandInfeasible() {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithEdgeFn(builder.ConstEdge(10, 5, 0.99))},
		builder.Grid(3, 3),
	)
	res, err := antcolony.Run(g, 0, 8, 100, qos.DefaultWeights())
	s.Require().NoError(err)
	s.Equal(qos.StatusNoPath, res.Status)
	s.Nil(res.Path)
	s.ErrorIs(res.Err(), qos.ErrNoFeasiblePath)
}

func (s *ColonySuite) TestPathValidity() {
	const demand = 300.0
	for seed := int64(1); seed <= 5; seed++ {
		res, err := antcolony.Run(s.grid, 0, 15, demand, qos.DefaultWeights(), antcolony.WithSeed(seed))
		s.Require().NoError(err)
		if !res.Found() {
			continue
		}
		s.Require().NoError(s.grid.IsPath(res.Path, 0, 15, demand), "seed %d", seed)
	}
}

func (s *ColonySuite) TestDeterministic() {
	a, err := antcolony.Run(s.grid, 0, 15, 0, qos.DefaultWeights(), antcolony.WithSeed(9))
	s.Require().NoError(err)
	b, err := antcolony.Run(s.grid, 0, 15, 0, qos.DefaultWeights(), antcolony.WithSeed(9))
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *ColonySuite) TestPheromoneStaysPositive() {
	c, err := antcolony.NewColony(s.grid, 0, qos.DefaultWeights(),
		antcolony.WithRho(0.9), antcolony.WithIterations(400), antcolony.WithAnts(2), antcolony.WithSeed(1))
	s.Require().NoError(err)
	_, err = c.Run(0, 15)
	s.Require().NoError(err)
	s.Greater(c.Pheromone().Min(), 0.0)

	for i := 0; i < 10000; i++ {
		c.Pheromone().Evaporate(0.5)
	}
	s.Greater(c.Pheromone().Min(), 0.0)
	s.Equal(antcolony.MinPheromone, c.Pheromone().Min())
}

func (s *ColonySuite) TestColonyKeepsPheromoneAcrossRuns() {
	c, err := antcolony.NewColony(s.chain, 0, qos.DefaultWeights(), antcolony.WithSeed(2))
	s.Require().NoError(err)
	s.Equal(6, c.Pheromone().Len()) // three links, both directions
	s.Equal(antcolony.DefaultTau0, c.Pheromone().Get(0, 1))

	_, err = c.Run(0, 3)
	s.Require().NoError(err)
	first := c.Pheromone().Get(0, 1)
	s.NotEqual(antcolony.DefaultTau0, first)

	_, err = c.Run(0, 3)
	s.Require().NoError(err)
	s.NotEqual(first, c.Pheromone().Get(0, 1))
	// Reverse arcs are never walked from source 0, so they only evaporate.
	s.Less(c.Pheromone().Get(1, 0), antcolony.DefaultTau0)
}

func (s *ColonySuite) TestOnlyAdmissibleArcsTracked() {
	g := network.NewGraph()
	for id := 0; id < 3; id++ {
		s.Require().NoError(g.AddVertex(network.Vertex{ID: id, ProcessingDelay: 1, Reliability: 0.999}))
	}
	s.Require().NoError(g.AddEdge(0, 1, network.Edge{Bandwidth: 500, Delay: 1, Reliability: 0.99}))
	s.Require().NoError(g.AddEdge(1, 2, network.Edge{Bandwidth: 50, Delay: 1, Reliability: 0.99}))

	c, err := antcolony.NewColony(g, 100, qos.DefaultWeights())
	s.Require().NoError(err)
	s.Equal([]antcolony.Arc{{From: 0, To: 1}, {From: 1, To: 0}}, c.Pheromone().Arcs())
	s.False(c.Pheromone().Has(1, 2))
}

func (s *ColonySuite) TestOnIteration() {
	var calls int
	var last float64
	_, err := antcolony.Run(s.grid, 0, 15, 0, qos.DefaultWeights(),
		antcolony.WithIterations(7),
		antcolony.WithOnIteration(func(_ int, iterBest, best float64) {
			calls++
			s.LessOrEqual(best, iterBest)
			if calls > 1 {
				s.LessOrEqual(best, last)
			}
			last = best
		}))
	s.Require().NoError(err)
	s.Equal(7, calls)
}

func (s *ColonySuite) TestErrors() {
	w := qos.DefaultWeights()
	_, err := antcolony.Run(nil, 0, 3, 0, w)
	s.ErrorIs(err, antcolony.ErrGraphNil)

	_, err = antcolony.Run(s.chain, 0, 3, 0, qos.Weights{Resource: 2})
	s.ErrorIs(err, qos.ErrInvalidWeights)

	_, err = antcolony.Run(s.chain, 3, 3, 0, w)
	s.ErrorIs(err, qos.ErrSameEndpoints)

	for _, opt := range []antcolony.Option{
		antcolony.WithAnts(0),
		antcolony.WithIterations(-1),
		antcolony.WithAlpha(-1),
		antcolony.WithBeta(math.NaN()),
		antcolony.WithRho(1),
		antcolony.WithPhi(2),
		antcolony.WithQ0(-0.1),
		antcolony.WithTau0(0),
		antcolony.WithMaxSteps(0),
	} {
		_, err = antcolony.Run(s.chain, 0, 3, 0, w, opt)
		s.ErrorIs(err, antcolony.ErrOptionViolation)
	}
}

func TestColonySuite(t *testing.T) {
	suite.Run(t, new(ColonySuite))
}

func TestPheromone_UnknownArc(t *testing.T) {
	p := antcolony.NewPheromone()
	require.Zero(t, p.Len())
	require.Zero(t, p.Min())
	require.Greater(t, p.Get(4, 5), 0.0)
	require.False(t, p.Has(4, 5))

	p.Set(4, 5, 0.5)
	require.True(t, p.Has(4, 5))
	p.Evaporate(0.1)
	require.InDelta(t, 0.45, p.Get(4, 5), 1e-12)
}

func TestRun_MaxStepsStopsWanderingAnts(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(10))
	res, err := antcolony.Run(g, 0, 9, 0, qos.DefaultWeights(), antcolony.WithMaxSteps(5))
	require.NoError(t, err)
	require.Equal(t, qos.StatusNoPath, res.Status)
}
