package solver_test

import (
	"testing"

	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveDispatchesEveryImplementedID(t *testing.T) {
	newUndirected := func() *problem.Problem {
		g := core.NewGraph(core.Undirected)
		l1, err := g.AddLink(1, 2, 1, core.WithRequired(true))
		require.NoError(t, err)
		l2, err := g.AddLink(2, 1, 1, core.WithRequired(true))
		require.NoError(t, err)
		require.NoError(t, g.SetDepot(1))
		p, err := problem.New(g, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		return p
	}
	newDirected := func() *problem.Problem {
		g := core.NewGraph(core.Directed)
		l1, err := g.AddLink(1, 2, 1, core.WithRequired(true))
		require.NoError(t, err)
		l2, err := g.AddLink(2, 1, 1, core.WithRequired(true))
		require.NoError(t, err)
		require.NoError(t, g.SetDepot(1))
		p, err := problem.New(g, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		return p
	}
	newMixed := func() *problem.Problem {
		g := core.NewGraph(core.Mixed)
		l1, err := g.AddLink(1, 2, 1, core.WithDirected(true), core.WithRequired(true))
		require.NoError(t, err)
		l2, err := g.AddLink(2, 1, 1, core.WithRequired(true))
		require.NoError(t, err)
		require.NoError(t, g.SetDepot(1))
		p, err := problem.New(g, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		return p
	}
	newWindy := func() *problem.Problem {
		g := core.NewGraph(core.Windy)
		l1, err := g.AddLink(1, 2, 1, core.WithReverseCost(1), core.WithRequired(true))
		require.NoError(t, err)
		l2, err := g.AddLink(2, 1, 1, core.WithReverseCost(1), core.WithRequired(true))
		require.NoError(t, err)
		require.NoError(t, g.SetDepot(1))
		p, err := problem.New(g, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		return p
	}

	tests := []struct {
		name string
		id   solver.SolverID
		p    *problem.Problem
	}{
		{"UCPP", solver.UCPP, newUndirected()},
		{"DCPP", solver.DCPP, newDirected()},
		{"MixedFrederickson", solver.MixedFrederickson, newMixed()},
		{"MixedYaoyuenyong", solver.MixedYaoyuenyong, newMixed()},
		{"WindyWin", solver.WindyWin, newWindy()},
		{"WindyRPPBenavent", solver.WindyRPPBenavent, newWindy()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := solver.Solve(tc.p, tc.id)
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestSolveRejectsReservedAndUnknownIDs(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	l, err := g.AddLink(1, 2, 1, core.WithRequired(true))
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))
	p, err := problem.New(g, []int{l.ID})
	require.NoError(t, err)

	for _, id := range []solver.SolverID{6, 0, 99} {
		_, err := solver.Solve(p, id)
		assert.ErrorIs(t, err, solver.ErrUnsupportedSolver)
	}
}
