package solver_test

import (
	"testing"

	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveUCPPAlreadyEulerian(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	ids := make([]int, 0, 4)
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		l, err := g.AddLink(e[0], e[1], 1, core.WithRequired(true))
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}
	require.NoError(t, g.SetDepot(1))

	p, err := problem.New(g, ids)
	require.NoError(t, err)

	r, err := solver.Solve(p, solver.UCPP)
	require.NoError(t, err)
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, 0, r.DeadheadCount(ids))
}

func TestSolveUCPPAugmentsOddVertices(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	l1, err := g.AddLink(1, 2, 1, core.WithRequired(true))
	require.NoError(t, err)
	l2, err := g.AddLink(2, 3, 1, core.WithRequired(true))
	require.NoError(t, err)
	l3, err := g.AddLink(3, 4, 1, core.WithRequired(true))
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	ids := []int{l1.ID, l2.ID, l3.ID}
	p, err := problem.New(g, ids)
	require.NoError(t, err)

	r, err := solver.Solve(p, solver.UCPP)
	require.NoError(t, err)
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(6), total) // 3 required + the whole path duplicated back
	// The duplicated path reuses required links, so no step is a deadhead.
	assert.Equal(t, 0, r.DeadheadCount(ids))
	assert.NoError(t, r.Validate(g, ids))
}

func TestSolveUCPPRejectsNonUndirectedGraph(t *testing.T) {
	g := core.NewGraph(core.Directed)
	l, err := g.AddLink(1, 2, 1, core.WithRequired(true))
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))
	p, err := problem.New(g, []int{l.ID})
	require.NoError(t, err)

	_, err = solver.Solve(p, solver.UCPP)
	assert.ErrorIs(t, err, solver.ErrUnsupportedSolver)
}
