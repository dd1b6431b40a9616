package arcroute_test

import (
	"testing"

	"github.com/oarligo/arcroute"
	"github.com/oarligo/arcroute/oarlib"
	"github.com/oarligo/arcroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveUndirectedSquareReport(t *testing.T) {
	text := `
Graph Type: undirected
Depot ID: 1

LINKS
1,2,1,true
2,3,1,true
3,4,1,true
4,1,1,true
END LINKS
`
	report, err := arcroute.Solve(int(solver.UCPP), "square", text)
	require.NoError(t, err)
	assert.Contains(t, report, "instance: square")
	assert.Contains(t, report, "total cost: 4")
}

// A parsed instance with zero required links never reaches problem.New
// (which would reject an empty required set); Solve instead reports the
// trivial depot-only, cost-zero route directly.
func TestSolveZeroRequiredLinksReturnsTrivialRoute(t *testing.T) {
	text := `
Graph Type: undirected
Depot ID: 1

LINKS
1,2,1
END LINKS
`
	report, err := arcroute.Solve(int(solver.UCPP), "empty", text)
	require.NoError(t, err)
	assert.Contains(t, report, "total cost: 0")
	assert.Contains(t, report, "deadhead steps: 0")
}

func TestSolvePropagatesParseError(t *testing.T) {
	_, err := arcroute.Solve(int(solver.UCPP), "bad", "not an instance")
	assert.ErrorIs(t, err, oarlib.ErrParse)
}

func TestSolvePropagatesUnsupportedSolverID(t *testing.T) {
	text := `
Graph Type: undirected
Depot ID: 1

LINKS
1,2,1,true
END LINKS
`
	_, err := arcroute.Solve(6, "square", text)
	assert.ErrorIs(t, err, solver.ErrUnsupportedSolver)
}

// An unsupported solver id must be rejected even when the instance has no
// required links: the zero-required-links shortcut never gets a chance to
// mask a bad id with a spurious success.
func TestSolveRejectsUnsupportedSolverIDEvenWithZeroRequiredLinks(t *testing.T) {
	text := `
Graph Type: undirected
Depot ID: 1

LINKS
1,2,1
END LINKS
`
	_, err := arcroute.Solve(6, "empty", text)
	assert.ErrorIs(t, err, solver.ErrUnsupportedSolver)
}
