package qlearning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/qos"
)

// trap builds 0-1, 0-2, 2-3: vertex 1 is a dead end listed first in 0's adjacency.
func trap(t *testing.T) *network.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Links([2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3}))
	require.NoError(t, err)
	return g
}

func TestTrainAndSolve_ChainScenario(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	w := qos.Weights{Delay: 0.5, Reliability: 0.25, Resource: 0.25}

	res, err := qlearning.TrainAndSolve(g, 0, 3, 100, w, 0, qlearning.WithSeed(3))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, qlearning.Name, res.Algorithm)
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
	require.InDelta(t, 17, res.Breakdown.TotalDelay, 1e-6)
	require.InDelta(t, 3*-math.Log(0.99)+4*-math.Log(0.999), res.Breakdown.ReliabilityCost, 1e-6)
	require.InDelta(t, 6, res.Breakdown.ResourceCost, 1e-6)
}

func TestTrainAndSolve_DemandInfeasible(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithEdgeFn(builder.ConstEdge(10, 5, 0.99))},
		builder.Grid(3, 3),
	)
	res, err := qlearning.TrainAndSolve(g, 0, 8, 100, qos.DefaultWeights(), 50)
	require.NoError(t, err)
	require.Equal(t, qos.StatusNoPath, res.Status)
	require.Nil(t, res.Path)
	require.ErrorIs(t, res.Err(), qos.ErrNoFeasiblePath)
}

func TestAgent_LearnsToAvoidDeadEnd(t *testing.T) {
	g := trap(t)
	agent, err := qlearning.NewAgent(g, qos.DefaultWeights(), qlearning.WithSeed(1))
	require.NoError(t, err)

	st, err := agent.Train(0, 3, 0, 300)
	require.NoError(t, err)
	require.Equal(t, 300, st.Episodes)
	require.Positive(t, st.Reached)

	// A move onto the destination beats a move into a learned dead end.
	require.Greater(t, agent.Q(2, 3), agent.Q(0, 1))
	require.Greater(t, agent.Q(0, 2), agent.Q(0, 1))
	require.Less(t, agent.Q(0, 1), 0.0)

	res, err := agent.BestPath(0, 3, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3}, res.Path)
	require.True(t, res.Found())
}

func TestAgent_UntrainedWalkIsPartial(t *testing.T) {
	g := trap(t)
	agent, err := qlearning.NewAgent(g, qos.DefaultWeights())
	require.NoError(t, err)

	// All values are zero, so the first listed neighbor wins and strands the walk.
	res, err := agent.BestPath(0, 3, 0)
	require.NoError(t, err)
	require.Equal(t, qos.StatusPartial, res.Status)
	require.Equal(t, []int{0, 1}, res.Path)
	require.ErrorIs(t, res.Err(), qos.ErrIncompletePath)
	require.False(t, res.Found())
	require.Positive(t, res.Breakdown.TotalCost)
}

func TestAgent_EpsilonSchedule(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	agent, err := qlearning.NewAgent(g, qos.DefaultWeights())
	require.NoError(t, err)
	require.Equal(t, qlearning.DefaultEpsilon, agent.Epsilon())

	_, err = agent.Train(0, 3, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, qlearning.DefaultEpsilonDecay, agent.Epsilon(), 1e-12)

	st, err := agent.Train(0, 3, 0, 1000)
	require.NoError(t, err)
	require.Equal(t, qlearning.DefaultEpsilonMin, st.Epsilon)

	agent.Reset()
	require.Zero(t, agent.Size())
	require.Equal(t, qlearning.DefaultEpsilon, agent.Epsilon())
}

func TestAgent_OnEpisode(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	var eps []qlearning.EpisodeStats
	agent, err := qlearning.NewAgent(g, qos.DefaultWeights(),
		qlearning.WithOnEpisode(func(_ int, es qlearning.EpisodeStats) { eps = append(eps, es) }))
	require.NoError(t, err)
	_, err = agent.Train(0, 3, 0, 5)
	require.NoError(t, err)
	require.Len(t, eps, 5)
	for _, es := range eps {
		// The chain forces every episode straight to the destination.
		require.True(t, es.Reached)
		require.Equal(t, 3, es.Steps)
	}
}

func TestTrainAndSolve_PathValidity(t *testing.T) {
	const demand = 250.0
	for seed := int64(1); seed <= 4; seed++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAttributes(50, 1000, 0.9, 0.999)},
			builder.Grid(4, 4),
		)
		res, err := qlearning.TrainAndSolve(g, 0, 15, demand, qos.DefaultWeights(), 300, qlearning.WithSeed(seed))
		require.NoError(t, err)
		switch res.Status {
		case qos.StatusFound:
			require.NoError(t, g.IsPath(res.Path, 0, 15, demand))
		case qos.StatusPartial:
			require.Equal(t, 0, res.Path[0])
			require.False(t, network.HasDuplicates(res.Path))
		}
	}
}

func TestTrainAndSolve_Deterministic(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(8), builder.WithUniformAttributes(100, 1000, 0.9, 0.999)},
		builder.Grid(4, 4),
	)
	a, err := qlearning.TrainAndSolve(g, 0, 15, 0, qos.DefaultWeights(), 200, qlearning.WithSeed(4))
	require.NoError(t, err)
	b, err := qlearning.TrainAndSolve(g, 0, 15, 0, qos.DefaultWeights(), 200, qlearning.WithSeed(4))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestAgent_Errors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	_, err := qlearning.NewAgent(nil, qos.DefaultWeights())
	require.ErrorIs(t, err, qlearning.ErrGraphNil)

	_, err = qlearning.NewAgent(g, qos.Weights{Delay: 0.3})
	require.ErrorIs(t, err, qos.ErrInvalidWeights)

	agent, err := qlearning.NewAgent(g, qos.DefaultWeights())
	require.NoError(t, err)
	_, err = agent.Train(0, 42, 0, 1)
	require.ErrorIs(t, err, qos.ErrUnknownEndpoint)
	_, err = agent.BestPath(1, 1, 0)
	require.ErrorIs(t, err, qos.ErrSameEndpoints)

	for _, opt := range []qlearning.Option{
		qlearning.WithAlpha(0),
		qlearning.WithGamma(1.1),
		qlearning.WithEpsilon(0.1, 0.9, 0.5),
		qlearning.WithMaxSteps(0),
		qlearning.WithRewards(-1, -1),
	} {
		_, err = qlearning.NewAgent(g, qos.DefaultWeights(), opt)
		require.ErrorIs(t, err, qlearning.ErrOptionViolation)
	}
}
