package algo_test

import (
	"testing"

	"github.com/oarligo/arcroute/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloydWarshallSquare(t *testing.T) {
	// 1-2(5) 2-3(3) 3-4(7) 4-1(2), undirected square.
	edges := map[[2]int]int64{
		{1, 2}: 5, {2, 1}: 5,
		{2, 3}: 3, {3, 2}: 3,
		{3, 4}: 7, {4, 3}: 7,
		{4, 1}: 2, {1, 4}: 2,
	}
	vertices := []int{1, 2, 3, 4}
	apsp := algo.FloydWarshall(vertices, func(u, v int) (int64, bool) {
		c, ok := edges[[2]int{u, v}]
		return c, ok
	})

	assert.Equal(t, int64(8), apsp.Dist[1][3]) // 1-2-3 = 5+3 = 8 vs 1-4-3 = 2+7 = 9
	assert.Equal(t, int64(7), apsp.Dist[2][4]) // 2-1-4 = 5+2 = 7 vs 2-3-4 = 3+7 = 10
}

func TestFloydWarshallReconstructPath(t *testing.T) {
	edges := map[[2]int]int64{
		{1, 2}: 1, {2, 1}: 1,
		{2, 3}: 1, {3, 2}: 1,
	}
	vertices := []int{1, 2, 3}
	apsp := algo.FloydWarshall(vertices, func(u, v int) (int64, bool) {
		c, ok := edges[[2]int{u, v}]
		return c, ok
	})
	require.Equal(t, int64(2), apsp.Dist[1][3])

	path, err := algo.ReconstructPath(apsp.Pred, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)
}

func TestFloydWarshallUnreachable(t *testing.T) {
	vertices := []int{1, 2, 3}
	apsp := algo.FloydWarshall(vertices, func(u, v int) (int64, bool) {
		if u == 1 && v == 2 {
			return 1, true
		}
		if u == 2 && v == 1 {
			return 1, true
		}
		return 0, false
	})
	assert.Equal(t, algo.Inf, apsp.Dist[1][3])
	_, err := algo.ReconstructPath(apsp.Pred, 1, 3)
	assert.ErrorIs(t, err, algo.ErrNoPath)
}

func TestFloydWarshallTieBreakLowerIntermediate(t *testing.T) {
	// Two equal-cost intermediates (2 and 3) between 1 and 4: the lower
	// id (2) must win, since the k-loop runs ascending and only accepts
	// strict improvements.
	edges := map[[2]int]int64{
		{1, 2}: 1, {2, 1}: 1,
		{2, 4}: 1, {4, 2}: 1,
		{1, 3}: 1, {3, 1}: 1,
		{3, 4}: 1, {4, 3}: 1,
	}
	vertices := []int{1, 2, 3, 4}
	apsp := algo.FloydWarshall(vertices, func(u, v int) (int64, bool) {
		c, ok := edges[[2]int{u, v}]
		return c, ok
	})
	path, err := algo.ReconstructPath(apsp.Pred, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, path)
}
