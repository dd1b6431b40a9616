package algo_test

import (
	"testing"

	"github.com/oarligo/arcroute/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKruskalPicksMinimumWeight(t *testing.T) {
	candidates := []algo.WeightedLink{
		{ID: 1, U: 1, V: 2, Weight: 5},
		{ID: 2, U: 2, V: 3, Weight: 3},
		{ID: 3, U: 3, V: 1, Weight: 7}, // closes a cycle, must be excluded
		{ID: 4, U: 3, V: 4, Weight: 2},
	}
	mst, total, err := algo.Kruskal([]int{1, 2, 3, 4}, candidates)
	require.NoError(t, err)
	assert.Len(t, mst, 3)
	assert.Equal(t, int64(10), total)
	for _, e := range mst {
		assert.NotEqual(t, 3, e.ID)
	}
}

func TestKruskalTieBreaksByID(t *testing.T) {
	// Two equal-weight edges both connect {1,2} to {3}: id 10 must win
	// over id 20 since it sorts first on an equal-weight tie.
	candidates := []algo.WeightedLink{
		{ID: 1, U: 1, V: 2, Weight: 1},
		{ID: 20, U: 2, V: 3, Weight: 4},
		{ID: 10, U: 1, V: 3, Weight: 4},
	}
	mst, _, err := algo.Kruskal([]int{1, 2, 3}, candidates)
	require.NoError(t, err)
	require.Len(t, mst, 2)
	ids := []int{mst[0].ID, mst[1].ID}
	assert.Contains(t, ids, 10)
	assert.NotContains(t, ids, 20)
}

func TestKruskalDisconnected(t *testing.T) {
	candidates := []algo.WeightedLink{
		{ID: 1, U: 1, V: 2, Weight: 1},
	}
	_, _, err := algo.Kruskal([]int{1, 2, 3}, candidates)
	assert.ErrorIs(t, err, algo.ErrDisconnected)
}

func TestKruskalSingleVertex(t *testing.T) {
	mst, total, err := algo.Kruskal([]int{1}, nil)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Equal(t, int64(0), total)
}
