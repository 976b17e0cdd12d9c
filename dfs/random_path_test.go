package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/dfs"
	"github.com/katalvlaran/qosroute/network"
)

func TestRandomPath_ValidOnRandomGraphs(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformAttributes(10, 1000, 0.95, 0.999)},
		builder.RandomSparse(40, 0.15),
	)
	const demand = 200.0
	for seed := int64(1); seed <= 30; seed++ {
		p, err := dfs.RandomPath(g, 0, 39, demand, dfs.WithSeed(seed))
		if err != nil {
			require.ErrorIs(t, err, dfs.ErrNoPath)
			continue
		}
		require.NoError(t, g.IsPath(p, 0, 39, demand))
	}
}

func TestRandomPath_SeedReproducible(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(4, 4))
	a, err := dfs.RandomPath(g, 0, 15, 0, dfs.WithSeed(77))
	require.NoError(t, err)
	b, err := dfs.RandomPath(g, 0, 15, 0, dfs.WithSeed(77))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRandomPath_Diversity(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(4, 4))
	seen := map[string]struct{}{}
	for seed := int64(1); seed <= 40; seed++ {
		p, err := dfs.RandomPath(g, 0, 15, 0, dfs.WithSeed(seed))
		require.NoError(t, err)
		seen[fmtPath(p)] = struct{}{}
	}
	require.Greater(t, len(seen), 1, "uniform picker should yield different paths")
}

func TestRandomPath_LIFOIsDeterministic(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(5))
	p, err := dfs.RandomPath(g, 0, 4, 0, dfs.WithPicker(dfs.LIFO))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, p)
}

func TestRandomPath_DemandInfeasible(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithEdgeFn(builder.ConstEdge(10, 1, 0.99))},
		builder.Complete(6),
	)
	p, err := dfs.RandomPath(g, 0, 5, 100)
	require.ErrorIs(t, err, dfs.ErrNoPath)
	require.Nil(t, p)
}

func TestRandomPath_Errors(t *testing.T) {
	_, err := dfs.RandomPath(nil, 0, 1, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.RandomPath(network.NewGraph(), 0, 1, 0)
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestRandomPath_StartIsTarget(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))
	p, err := dfs.RandomPath(g, 1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, p)
}

func TestRandomPath_MaxExpansions(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(10))
	_, err := dfs.RandomPath(g, 0, 9, 0, dfs.WithMaxExpansions(3))
	require.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestFrontier_TakeSwapsLast(t *testing.T) {
	var f dfs.Frontier
	f.Push(1, []int{1})
	f.Push(2, []int{2})
	f.Push(3, []int{3})
	at, _ := f.Take(0)
	require.Equal(t, 1, at)
	require.Equal(t, 2, f.Len())
	at, _ = f.Take(0)
	require.Equal(t, 3, at)
}

func fmtPath(p []int) string {
	b := make([]byte, 0, len(p)*3)
	for _, x := range p {
		b = append(b, byte('a'+x), '-')
	}
	return string(b)
}
