package genetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

var chainWeights = qos.Weights{Delay: 0.5, Reliability: 0.25, Resource: 0.25}

func TestRun_ChainScenario(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))

	res, err := genetic.Run(g, 0, 3, 100, chainWeights, genetic.WithSeed(7))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, genetic.Name, res.Algorithm)
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
	require.InDelta(t, 17, res.Breakdown.TotalDelay, 1e-6)
	require.InDelta(t, 3*-math.Log(0.99)+4*-math.Log(0.999), res.Breakdown.ReliabilityCost, 1e-6)
	require.InDelta(t, 6, res.Breakdown.ResourceCost, 1e-6)
}

func TestRun_DemandInfeasible(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithEdgeFn(builder.ConstEdge(10, 5, 0.99))},
		builder.Grid(3, 3),
	)
	res, err := genetic.Run(g, 0, 8, 100, qos.DefaultWeights())
	require.NoError(t, err)
	require.Equal(t, qos.StatusNoPath, res.Status)
	require.Nil(t, res.Path)
	require.ErrorIs(t, res.Err(), qos.ErrNoFeasiblePath)
	require.NotEmpty(t, res.Note)
}

func TestRun_PathValidityOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAttributes(50, 1000, 0.95, 0.999)},
			builder.RandomSparse(20, 0.25),
		)
		const demand = 200.0
		res, err := genetic.Run(g, 0, 19, demand, qos.DefaultWeights(),
			genetic.WithSeed(seed), genetic.WithGenerations(20), genetic.WithPopulationSize(20))
		require.NoError(t, err)
		if !res.Found() {
			continue
		}
		require.NoError(t, g.IsPath(res.Path, 0, 19, demand), "seed %d", seed)
		require.InDelta(t, qos.PathCost(g, res.Path, qos.DefaultWeights()), res.Breakdown.TotalCost, 1e-9)
	}
}

func TestRun_PrefersCheaperBranch(t *testing.T) {
	// Diamond 0-1-3 / 0-2-3 where the 2-branch has ten times the link delay.
	g := network.NewGraph()
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(network.Vertex{ID: id, ProcessingDelay: 1, Reliability: 0.999}))
	}
	fast := network.Edge{Bandwidth: 500, Delay: 1, Reliability: 0.99}
	slow := network.Edge{Bandwidth: 500, Delay: 10, Reliability: 0.99}
	require.NoError(t, g.AddEdge(0, 1, fast))
	require.NoError(t, g.AddEdge(1, 3, fast))
	require.NoError(t, g.AddEdge(0, 2, slow))
	require.NoError(t, g.AddEdge(2, 3, slow))

	res, err := genetic.Run(g, 0, 3, 0, qos.Weights{Delay: 1}, genetic.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, res.Path)
}

func TestRun_Deterministic(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformAttributes(100, 1000, 0.9, 0.999)},
		builder.Grid(4, 4),
	)
	a, err := genetic.Run(g, 0, 15, 0, qos.DefaultWeights(), genetic.WithSeed(42), genetic.WithGenerations(10))
	require.NoError(t, err)
	b, err := genetic.Run(g, 0, 15, 0, qos.DefaultWeights(), genetic.WithSeed(42), genetic.WithGenerations(10))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRun_OnGenerationMonotoneBest(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformAttributes(100, 1000, 0.9, 0.999)},
		builder.Grid(4, 4),
	)
	var bests []float64
	_, err := genetic.Run(g, 0, 15, 0, qos.DefaultWeights(),
		genetic.WithGenerations(15),
		genetic.WithOnGeneration(func(_ int, best float64) { bests = append(bests, best) }))
	require.NoError(t, err)
	require.Len(t, bests, 15)
	for i := 1; i < len(bests); i++ {
		// Elitism never loses the best individual.
		require.LessOrEqual(t, bests[i], bests[i-1])
	}
}

func TestRun_Errors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	w := qos.DefaultWeights()

	_, err := genetic.Run(nil, 0, 3, 0, w)
	require.ErrorIs(t, err, genetic.ErrGraphNil)

	_, err = genetic.Run(g, 0, 3, 0, qos.Weights{Delay: 0.2})
	require.ErrorIs(t, err, qos.ErrInvalidWeights)

	_, err = genetic.Run(g, 0, 9, 0, w)
	require.ErrorIs(t, err, qos.ErrUnknownEndpoint)

	for _, opt := range []genetic.Option{
		genetic.WithPopulationSize(0),
		genetic.WithGenerations(-1),
		genetic.WithMutationRate(1.5),
		genetic.WithElite(-1),
		genetic.WithParentPool(0),
	} {
		_, err = genetic.Run(g, 0, 3, 0, w, opt)
		require.ErrorIs(t, err, genetic.ErrOptionViolation)
	}
}

func TestRun_SkipsZeroBandwidthLinks(t *testing.T) {
	g := network.NewGraph(network.WithUncheckedAttributes())
	require.NoError(t, g.AddVertex(network.Vertex{ID: 0, ProcessingDelay: 1, Reliability: 1}))
	require.NoError(t, g.AddVertex(network.Vertex{ID: 1, ProcessingDelay: -50, Reliability: 1}))
	require.NoError(t, g.AddVertex(network.Vertex{ID: 2, ProcessingDelay: 1, Reliability: 1}))
	require.NoError(t, g.AddVertex(network.Vertex{ID: 3, ProcessingDelay: 1, Reliability: 1}))
	require.NoError(t, g.AddEdge(0, 1, network.Edge{Bandwidth: 100, Delay: -10, Reliability: 1}))
	require.NoError(t, g.AddEdge(1, 2, network.Edge{Bandwidth: 0, Delay: 1, Reliability: 1}))
	require.NoError(t, g.AddEdge(0, 3, network.Edge{Bandwidth: 100, Delay: 1, Reliability: 1}))
	require.NoError(t, g.AddEdge(3, 2, network.Edge{Bandwidth: 100, Delay: 1, Reliability: 1}))

	res, err := genetic.Run(g, 0, 2, 0, qos.DefaultWeights(), genetic.WithSeed(3))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, []int{0, 3, 2}, res.Path)
	require.False(t, math.IsInf(res.Breakdown.TotalCost, 0))
	require.GreaterOrEqual(t, res.Breakdown.TotalDelay, 0.0)
}
