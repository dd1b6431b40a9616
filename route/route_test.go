package route_test

import (
	"testing"

	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) (*core.Graph, int, int, int) {
	t.Helper()
	g := core.NewGraph(core.Undirected)
	l1, err := g.AddLink(1, 2, 4)
	require.NoError(t, err)
	l2, err := g.AddLink(2, 3, 5)
	require.NoError(t, err)
	l3, err := g.AddLink(3, 1, 6)
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))
	return g, l1.ID, l2.ID, l3.ID
}

func TestRouteTotalCostAndValidate(t *testing.T) {
	g, l1, l2, l3 := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l2, From: 2, To: 3, Cost: 5},
		{LinkID: l3, From: 3, To: 1, Cost: 6},
	})
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.NoError(t, r.Validate(g, []int{l1, l2, l3}))
}

func TestRouteValidateRejectsUnclosedWalk(t *testing.T) {
	g, l1, l2, _ := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l2, From: 2, To: 3, Cost: 5},
	})
	assert.ErrorIs(t, r.Validate(g, []int{l1}), route.ErrNotClosed)
}

func TestRouteValidateRejectsMissingRequired(t *testing.T) {
	g, l1, l2, l3 := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l2, From: 2, To: 3, Cost: 5},
		{LinkID: l3, From: 3, To: 1, Cost: 6},
	})
	assert.ErrorIs(t, r.Validate(g, []int{l1, l2, l3, 9999}), route.ErrRequiredLinkMissing)
}

func TestRouteValidateRejectsDisconnectedSteps(t *testing.T) {
	g, l1, _, l3 := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l3, From: 3, To: 1, Cost: 6}, // starts at 3, but the previous step ended at 2
	})
	assert.ErrorIs(t, r.Validate(g, nil), route.ErrDisconnectedStep)
}

func TestRouteValidateRejectsDirectedBackward(t *testing.T) {
	g := core.NewGraph(core.Directed)
	l, err := g.AddLink(1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	r := route.New(1, []route.Step{{LinkID: l.ID, From: 2, To: 1, Cost: 1}})
	assert.ErrorIs(t, r.Validate(g, nil), route.ErrDirectionMismatch)
}

func TestRouteDeadheadCount(t *testing.T) {
	g, l1, l2, l3 := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l2, From: 2, To: 3, Cost: 5},
		{LinkID: l3, From: 3, To: 1, Cost: 6},
	})
	require.NoError(t, r.Validate(g, []int{l1, l3}))
	assert.Equal(t, 1, r.DeadheadCount([]int{l1, l3}))
}

func TestReplayRecomputesCostFromGraph(t *testing.T) {
	g, l1, l2, l3 := buildTriangle(t)
	r, err := route.Replay(g, 1, []route.LinkDirection{
		{LinkID: l1, Forward: true},
		{LinkID: l2, Forward: true},
		{LinkID: l3, Forward: true},
	})
	require.NoError(t, err)
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}

func TestReplayRejectsDisconnectedSequence(t *testing.T) {
	g, l1, l2, _ := buildTriangle(t)
	_, err := route.Replay(g, 1, []route.LinkDirection{
		{LinkID: l2, Forward: true}, // l2 is 2-3, but walk starts at depot 1
		{LinkID: l1, Forward: true},
	})
	assert.ErrorIs(t, err, route.ErrDisconnectedStep)
}

func TestRouteValidateAcceptsSelfLoopRequiredLink(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	loop, err := g.AddLink(1, 1, 3, core.WithRequired(true))
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	r := route.New(1, []route.Step{{LinkID: loop.ID, From: 1, To: 1, Cost: 3}})
	assert.NoError(t, r.Validate(g, []int{loop.ID}))
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestReportIsDeterministic(t *testing.T) {
	g, l1, l2, l3 := buildTriangle(t)
	r := route.New(1, []route.Step{
		{LinkID: l1, From: 1, To: 2, Cost: 4},
		{LinkID: l2, From: 2, To: 3, Cost: 5},
		{LinkID: l3, From: 3, To: 1, Cost: 6},
	})
	require.NoError(t, r.Validate(g, []int{l1, l2, l3}))
	first := r.Report("triangle", "ucpp-exact", []int{l1, l2, l3})
	second := r.Report("triangle", "ucpp-exact", []int{l1, l2, l3})
	assert.Equal(t, first, second)
	assert.Contains(t, first, "total cost: 15")
	assert.Contains(t, first, "walk: 1 -> 2 -> 3 -> 1")
}
