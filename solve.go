package arcroute

import (
	"fmt"

	"github.com/oarligo/arcroute/oarlib"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
	"github.com/oarligo/arcroute/solver"
)

// Parse re-exports oarlib.Parse's string form for embedding shells that
// want the graph without immediately solving it.
func Parse(instanceText string) (*oarlib.Result, error) {
	return oarlib.ParseString(instanceText)
}

// Solve parses instanceText, solves it with the given solver id, and
// renders the route as the canonical text report. A zero-required-link
// instance never reaches problem.New (which rejects an empty required set
// as ErrNoRequiredLinks): it is, trivially, already a closed walk of cost
// zero at the depot, and is reported as such directly.
func Solve(solverID int, instanceName, instanceText string) (string, error) {
	res, err := oarlib.ParseString(instanceText)
	if err != nil {
		return "", err
	}

	id := solver.SolverID(solverID)
	if !solver.IsSupported(id) {
		return "", fmt.Errorf("arcroute: id %d (%s): %w", solverID, id, solver.ErrUnsupportedSolver)
	}

	if len(res.Required) == 0 {
		r := route.New(res.Depot, nil)
		return r.Report(instanceName, id.String(), nil), nil
	}

	p, err := problem.New(res.Graph, res.Required)
	if err != nil {
		return "", fmt.Errorf("arcroute: %w", err)
	}

	r, err := solver.Solve(p, id)
	if err != nil {
		return "", err
	}
	return r.Report(instanceName, id.String(), p.Required()), nil
}
