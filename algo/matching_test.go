package algo_test

import (
	"testing"

	"github.com/oarligo/arcroute/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyMatchOddSize(t *testing.T) {
	_, _, err := algo.GreedyMatch([]int{1, 2, 3}, func(u, v int) int64 { return 1 })
	assert.ErrorIs(t, err, algo.ErrOddSize)
}

func TestGreedyMatchPicksCheapestPairs(t *testing.T) {
	// 1-2 cheap, 3-4 cheap, cross pairs expensive: must match (1,2),(3,4).
	cost := map[[2]int]int64{
		{1, 2}: 1, {3, 4}: 1,
		{1, 3}: 100, {1, 4}: 100,
		{2, 3}: 100, {2, 4}: 100,
	}
	c := func(u, v int) int64 {
		if u > v {
			u, v = v, u
		}
		return cost[[2]int{u, v}]
	}
	pairs, fellBack, err := algo.GreedyMatch([]int{1, 2, 3, 4}, c)
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.ElementsMatch(t, []algo.MatchedPair{{U: 1, V: 2}, {U: 3, V: 4}}, pairs)
}

func TestGreedyMatchTieBreakLexicographic(t *testing.T) {
	// Every pair costs the same: the lexicographically smallest (1,2)
	// must be chosen first, leaving (3,4).
	pairs, _, err := algo.GreedyMatch([]int{1, 2, 3, 4}, func(u, v int) int64 { return 1 })
	require.NoError(t, err)
	assert.Equal(t, []algo.MatchedPair{{U: 1, V: 2}, {U: 3, V: 4}}, pairs)
}

func TestBlossomMatchNotImplemented(t *testing.T) {
	_, err := algo.BlossomMatch([]int{1, 2}, func(u, v int) int64 { return 1 })
	assert.ErrorIs(t, err, algo.ErrMatchingNotImplemented)
}

func TestMinCostAssignSizeMismatch(t *testing.T) {
	_, err := algo.MinCostAssign([]int{1, 2}, []int{3}, func(u, v int) int64 { return 1 })
	assert.ErrorIs(t, err, algo.ErrAssignmentSizeMismatch)
}

func TestMinCostAssignPicksCheapestPositional(t *testing.T) {
	// from={1,1} (vertex 1 repeated, excess=2), to={2,3}: 1->2 is cheap,
	// 1->3 is expensive, so both units of 1's excess route through 2
	// first only if capacity allowed it — here to-positions are distinct
	// slots, so one unit must go to 3 regardless of cost.
	cost := map[[2]int]int64{
		{1, 2}: 1, {1, 3}: 9,
	}
	pairs, err := algo.MinCostAssign([]int{1, 1}, []int{2, 3}, func(u, v int) int64 {
		return cost[[2]int{u, v}]
	})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	tos := map[int]bool{}
	for _, p := range pairs {
		assert.Equal(t, 1, p.From)
		tos[p.To] = true
	}
	assert.True(t, tos[2])
	assert.True(t, tos[3])
}

func TestMinCostAssignEmpty(t *testing.T) {
	pairs, err := algo.MinCostAssign(nil, nil, func(u, v int) int64 { return 0 })
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

// A case where the globally-cheapest single pair is a trap for a greedy
// assignment: from={A,B}, to={C,D} with A-C=1, A-D=2, B-C=2, B-D=100.
// Greedy takes (A,C) first, leaving the expensive (B,D)=100 forced, for a
// total of 101; the true minimum-cost assignment is (A,D)+(B,C)=4.
func TestMinCostAssignFindsGlobalOptimumOverGreedyTrap(t *testing.T) {
	const a, b, c, d = 1, 2, 3, 4
	cost := map[[2]int]int64{
		{a, c}: 1, {a, d}: 2,
		{b, c}: 2, {b, d}: 100,
	}
	pairs, err := algo.MinCostAssign([]int{a, b}, []int{c, d}, func(u, v int) int64 {
		return cost[[2]int{u, v}]
	})
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	var total int64
	got := map[int]int{}
	for _, p := range pairs {
		total += cost[[2]int{p.From, p.To}]
		got[p.From] = p.To
	}
	assert.Equal(t, int64(4), total)
	assert.Equal(t, d, got[a])
	assert.Equal(t, c, got[b])
}
