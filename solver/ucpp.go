package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveUCPP solves the undirected Chinese Postman problem: every link is
// required, so the task reduces to making the graph Eulerian by
// duplicating paths between odd-degree vertices, then extracting the
// circuit.
//
// Follows the Edmonds–Johnson construction (odd vertices, shortest-path
// cost matrix, perfect matching, augment, Hierholzer), but pairs the odd
// vertices with algo.GreedyMatch rather than a minimum-weight perfect
// matching: the added cost is minimal with two odd vertices, and is not
// guaranteed minimal with four or more.
func solveUCPP(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Undirected {
		return nil, fmt.Errorf("solver: ucpp requires an undirected graph: %w", ErrUnsupportedSolver)
	}
	if !p.IsCPP() {
		return nil, fmt.Errorf("solver: ucpp requires every link to be required: %w", ErrUnsupportedSolver)
	}

	g := p.Graph().Clone()
	depot := p.Depot()

	if err := checkRequiredReachable(g, depot, p.Required()); err != nil {
		return nil, err
	}
	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	vertices := vertexIDs(g)
	degree := make(map[int]int, len(vertices))
	for _, v := range g.Vertices() {
		degree[v.ID] = v.Degree()
	}
	odd := algo.OddDegree(vertices, degree)
	opts.logf("ucpp: %d odd-degree vertices", len(odd))

	if len(odd) > 0 {
		apsp := algo.FloydWarshall(vertices, directCost(g))
		pairs, _, err := algo.GreedyMatch(odd, func(u, v int) int64 { return apsp.Dist[u][v] })
		if err != nil {
			return nil, fmt.Errorf("solver: ucpp matching: %w", err)
		}
		for _, pair := range pairs {
			if apsp.Dist[pair.U][pair.V] >= algo.Inf {
				return nil, fmt.Errorf("solver: no path between odd vertices %d and %d: %w", pair.U, pair.V, ErrInfeasibleInstance)
			}
			path, err := algo.ReconstructPath(apsp.Pred, pair.U, pair.V)
			if err != nil {
				return nil, fmt.Errorf("solver: ucpp path reconstruction: %w", err)
			}
			if err := duplicatePath(g, path); err != nil {
				return nil, err
			}
		}
	}

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	walk, err := algo.EulerianCircuit(occurrencesFromGraph(g), depot)
	if err != nil {
		return nil, fmt.Errorf("solver: ucpp extraction: %w", err)
	}

	r := route.New(depot, walkToSteps(walk))
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: ucpp: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), p.Required()); err != nil {
		return nil, fmt.Errorf("solver: ucpp produced an invalid route: %w", err)
	}
	return r, nil
}
