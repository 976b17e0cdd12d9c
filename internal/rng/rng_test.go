package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSeed_ZeroUsesDefault(t *testing.T) {
	a := FromSeed(0)
	b := FromSeed(DefaultSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, b.Int63(), a.Int63())
	}
}

func TestSampleTwo_Distinct(t *testing.T) {
	r := FromSeed(9)
	for k := 0; k < 1000; k++ {
		i, j := SampleTwo(r, 5)
		require.NotEqual(t, i, j)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 5)
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, 5)
	}
}

func TestOr(t *testing.T) {
	r := FromSeed(5)
	require.Same(t, r, Or(r, 11))
	require.NotNil(t, Or(nil, 11))
}
