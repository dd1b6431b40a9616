// Command arcroute solves an arc-routing instance from the command line:
//
//	arcroute <solverId> <instancePath>
//
// solverId selects one of the six implemented procedures (1..5, 7); id 6
// is reserved and always reports "not supported". Exit codes: 0 success,
// 1 user error (bad arguments, parse error, unsupported solver id), 2
// solver infeasibility, 3 internal error.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oarligo/arcroute"
	"github.com/oarligo/arcroute/oarlib"
	"github.com/oarligo/arcroute/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: arcroute <solverId> <instancePath>")
		return 1
	}

	solverID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "arcroute: bad solver id %q: %v\n", args[0], err)
		return 1
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "arcroute: reading %s: %v\n", args[1], err)
		return 1
	}

	report, err := arcroute.Solve(solverID, filepath.Base(args[1]), string(data))
	if err != nil {
		fmt.Fprintf(stderr, "arcroute: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprint(stdout, report)
	return 0
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, oarlib.ErrParse), errors.Is(err, solver.ErrUnsupportedSolver):
		return 1
	case errors.Is(err, solver.ErrInfeasibleInstance):
		return 2
	default:
		return 3
	}
}
