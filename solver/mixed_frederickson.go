package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveMixedFrederickson solves mixed CPP with Frederickson's approach: two
// sub-procedures each produce a candidate Eulerian augmentation of a clone
// of the graph, and the cheaper of the two (by total deadhead cost added)
// is extracted into the final route.
//
//   - Method 1 ("oriented"): every undirected edge is first given a
//     provisional direction by a greedy balancing pass (route each edge
//     whichever way reduces the larger of its two endpoints' running
//     excess), then the resulting virtual in/out imbalance is resolved
//     exactly like DCPP. The provisional orientation only feeds the excess
//     computation — the underlying link stays undirected, so Hierholzer is
//     still free to traverse it either way during extraction.
//   - Method 2 ("unoriented"): imbalance is computed from the graph's
//     already-fixed directed arcs alone, ignoring undirected edges
//     entirely, then resolved the same way. Simpler, and sometimes cheaper
//     when the undirected edges are already well distributed.
func solveMixedFrederickson(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Mixed {
		return nil, fmt.Errorf("solver: mixed-frederickson requires a mixed graph: %w", ErrUnsupportedSolver)
	}
	if !p.IsCPP() {
		return nil, fmt.Errorf("solver: mixed-frederickson requires every link to be required: %w", ErrUnsupportedSolver)
	}

	depot := p.Depot()
	if err := checkRequiredReachable(p.Graph(), depot, p.Required()); err != nil {
		return nil, err
	}
	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	g1 := p.Graph().Clone()
	cost1, err1 := method1Oriented(g1)

	g2 := p.Graph().Clone()
	cost2, err2 := method2Unoriented(g2)

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	var g *core.Graph
	switch {
	case err1 != nil && err2 != nil:
		return nil, fmt.Errorf("solver: mixed-frederickson: both sub-procedures failed (method1: %v, method2: %v): %w", err1, err2, ErrInfeasibleInstance)
	case err1 != nil:
		g = g2
		opts.logf("mixed-frederickson: method1 failed (%v), using method2 (cost %d)", err1, cost2)
	case err2 != nil:
		g = g1
		opts.logf("mixed-frederickson: method2 failed (%v), using method1 (cost %d)", err2, cost1)
	case cost1 <= cost2:
		g = g1
		opts.logf("mixed-frederickson: method1 wins (%d <= %d)", cost1, cost2)
	default:
		g = g2
		opts.logf("mixed-frederickson: method2 wins (%d < %d)", cost2, cost1)
	}

	walk, err := algo.EulerianCircuit(occurrencesFromGraph(g), depot)
	if err != nil {
		return nil, fmt.Errorf("solver: mixed-frederickson extraction: %w", err)
	}

	r := route.New(depot, walkToSteps(walk))
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: mixed-frederickson: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), p.Required()); err != nil {
		return nil, fmt.Errorf("solver: mixed-frederickson produced an invalid route: %w", err)
	}
	return r, nil
}

// method1Oriented provisionally orients every undirected edge to balance
// running excess, then resolves the resulting imbalance by duplicating
// directed-respecting shortest paths. It is the zero-flips case of
// orientAndBalance, which solveMixedYaoyuenyong reuses to probe single
// orientation changes from this starting point.
func method1Oriented(g *core.Graph) (int64, error) {
	return orientAndBalance(g, nil)
}

// method2Unoriented resolves imbalance from the graph's fixed directed
// arcs alone, leaving undirected edges out of the excess computation
// entirely.
func method2Unoriented(g *core.Graph) (int64, error) {
	vertices := vertexIDs(g)
	in, out := make(map[int]int, len(vertices)), make(map[int]int, len(vertices))
	for _, v := range g.Vertices() {
		i, o := v.InOut()
		in[v.ID], out[v.ID] = i, o
	}
	return balanceDirectedExcess(g, vertices, in, out)
}
