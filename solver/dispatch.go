package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// IsSupported reports whether id names an implemented procedure. Callers
// that need to reject an unsupported id before doing any other work (the
// root arcroute.Solve's zero-required-links shortcut, in particular) use
// this instead of duplicating Solve's dispatch switch.
func IsSupported(id SolverID) bool {
	switch id {
	case UCPP, DCPP, MixedFrederickson, MixedYaoyuenyong, WindyWin, WindyRPPBenavent:
		return true
	default:
		return false
	}
}

// Solve dispatches p to the procedure named by id, applying opts.
//
// Every solver works on its own clone of p.Graph() and never mutates the
// caller's graph; the returned Route references the original link ids
// and is validated against the original, unaugmented graph before being
// returned.
func Solve(p *problem.Problem, id SolverID, opts ...Option) (*route.Route, error) {
	o := buildOptions(opts...)
	if err := checkCancelled(o); err != nil {
		return nil, err
	}
	if !IsSupported(id) {
		return nil, fmt.Errorf("solver: id %d (%s): %w", int(id), id, ErrUnsupportedSolver)
	}

	switch id {
	case UCPP:
		return solveUCPP(p, o)
	case DCPP:
		return solveDCPP(p, o)
	case MixedFrederickson:
		return solveMixedFrederickson(p, o)
	case MixedYaoyuenyong:
		return solveMixedYaoyuenyong(p, o)
	case WindyWin:
		return solveWindyWin(p, o)
	case WindyRPPBenavent:
		return solveWindyRPPBenavent(p, o)
	default:
		return nil, fmt.Errorf("solver: id %d (%s): %w", int(id), id, ErrUnsupportedSolver)
	}
}
