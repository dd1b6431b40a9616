package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveDCPP solves the exact directed Chinese Postman problem: every arc
// is required, so the graph is made Eulerian by routing one shortest
// directed path from each excess-out vertex to each excess-in vertex
// (a minimum-cost assignment standing in for the classic transportation
// formulation's optimal transportation plan), duplicating those paths,
// then extracting the circuit.
func solveDCPP(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Directed {
		return nil, fmt.Errorf("solver: dcpp requires a directed graph: %w", ErrUnsupportedSolver)
	}
	if !p.IsCPP() {
		return nil, fmt.Errorf("solver: dcpp requires every link to be required: %w", ErrUnsupportedSolver)
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
	in := make(map[int]int, len(vertices))
	out := make(map[int]int, len(vertices))
	for _, v := range g.Vertices() {
		i, o := v.InOut()
		in[v.ID], out[v.ID] = i, o
	}
	added, err := balanceDirectedExcess(g, vertices, in, out)
	if err != nil {
		return nil, fmt.Errorf("solver: dcpp: %w", err)
	}
	opts.logf("dcpp: added %d in deadhead cost", added)

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	walk, err := algo.EulerianCircuit(occurrencesFromGraph(g), depot)
	if err != nil {
		return nil, fmt.Errorf("solver: dcpp extraction: %w", err)
	}

	r := route.New(depot, walkToSteps(walk))
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: dcpp: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), p.Required()); err != nil {
		return nil, fmt.Errorf("solver: dcpp produced an invalid route: %w", err)
	}
	return r, nil
}
