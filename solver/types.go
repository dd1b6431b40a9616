package solver

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors returned by every solver. All are wrapped with
// fmt.Errorf("%w", ...) context (link id, vertex id) at the call site that
// detects them, matching the wrapped-sentinel convention the rest of this
// module follows.
var (
	// ErrInfeasibleInstance indicates a required link is unreachable from
	// the depot, or the graph is not connected enough to admit any closed
	// walk covering every required link.
	ErrInfeasibleInstance = errors.New("solver: required link unreachable from depot")

	// ErrUnsupportedSolver indicates the requested SolverID has no
	// implementation, or the instance's shape (e.g. a proper rural subset
	// given to a Chinese Postman solver) is not one the chosen solver
	// supports.
	ErrUnsupportedSolver = errors.New("solver: unsupported solver id")

	// ErrCostOverflow indicates accumulating the route's total cost would
	// overflow int64.
	ErrCostOverflow = errors.New("solver: cost accumulator overflow")

	// ErrCancelled indicates the caller's CancelToken was triggered mid-solve.
	ErrCancelled = errors.New("solver: cancelled")

	// ErrInternalInvariantViolation indicates a solver-internal invariant
	// failed (e.g. no link joins two consecutive vertices of a computed
	// path) — never expected in correct operation, always a solver bug if
	// seen. A failed circuit extraction is reported by wrapping
	// algo.ErrEulerianPrecondition instead.
	ErrInternalInvariantViolation = errors.New("solver: internal invariant violation")
)

// SolverID selects which procedure Solve dispatches to, matching the
// external CLI's positional solverId argument (1..7).
type SolverID int

const (
	// UCPP is the undirected Chinese Postman solver (greedy odd-vertex
	// matching, so not exact beyond two odd vertices).
	UCPP SolverID = 1
	// DCPP is the exact directed Chinese Postman solver.
	DCPP SolverID = 2
	// MixedFrederickson is Frederickson's 2-approximation for mixed CPP.
	MixedFrederickson SolverID = 3
	// MixedYaoyuenyong iteratively improves on Frederickson's result.
	MixedYaoyuenyong SolverID = 4
	// WindyWin is Win's heuristic for windy CPP.
	WindyWin SolverID = 5
	// reservedSolver (id 6) is not implemented; Solve reports ErrUnsupportedSolver.
	reservedSolver SolverID = 6
	// WindyRPPBenavent is Benavent's H1 heuristic for windy rural postman.
	WindyRPPBenavent SolverID = 7
)

// String renders a SolverID for report headers and error messages.
func (id SolverID) String() string {
	switch id {
	case UCPP:
		return "undirected-cpp-exact"
	case DCPP:
		return "directed-cpp-exact"
	case MixedFrederickson:
		return "mixed-cpp-frederickson"
	case MixedYaoyuenyong:
		return "mixed-cpp-yaoyuenyong"
	case WindyWin:
		return "windy-cpp-win"
	case WindyRPPBenavent:
		return "windy-rpp-benavent-h1"
	default:
		return "unsupported"
	}
}

// CancelToken is a cooperative cancellation signal checked by solvers
// between augmentation phases: the core stays I/O-free and dependency-
// light, so cancellation is realized as this small explicit token rather
// than context.Context.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a fresh, uncancelled token.
func NewCancelToken() *CancelToken { return &CancelToken{} }

// Cancel marks the token cancelled. Safe to call more than once or from
// another goroutine than the one running the solve.
func (c *CancelToken) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool {
	return c != nil && c.cancelled.Load()
}

// Logger receives solver progress messages (phase boundaries, fallback
// decisions); nil by default, since algo/solver/core stay I/O-free.
type Logger interface {
	Printf(format string, args ...any)
}

// Options configures one Solve call.
type Options struct {
	Cancel *CancelToken
	Logger Logger
}

// Option configures an Options value.
type Option func(*Options)

// WithCancel attaches a CancelToken a caller can use to abort a long solve.
func WithCancel(c *CancelToken) Option {
	return func(o *Options) { o.Cancel = c }
}

// WithLogger attaches a progress logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkCancelled returns ErrCancelled if o.Cancel has been triggered.
func checkCancelled(o Options) error {
	if o.Cancel.Cancelled() {
		return ErrCancelled
	}
	return nil
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
