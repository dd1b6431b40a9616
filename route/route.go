package route

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/oarligo/arcroute/core"
)

// ErrEmptyRoute indicates a route with no steps was given required links
// to cover.
var ErrEmptyRoute = errors.New("route: empty route cannot cover required links")

// ErrNotClosed indicates the route does not start and end at the depot.
var ErrNotClosed = errors.New("route: route is not a closed walk at the depot")

// ErrDisconnectedStep indicates two consecutive steps do not share a
// vertex in the traversed direction.
var ErrDisconnectedStep = errors.New("route: consecutive steps are not connected")

// ErrDirectionMismatch indicates a step traverses a link in a direction
// the underlying graph does not permit (e.g. a directed link backward).
var ErrDirectionMismatch = errors.New("route: step direction not permitted by link")

// ErrRequiredLinkMissing indicates a required link id never appears in
// the route.
var ErrRequiredLinkMissing = errors.New("route: required link never traversed")

// ErrCostOverflow indicates accumulating step costs would overflow int64.
var ErrCostOverflow = errors.New("route: total cost overflow")

// Step is one traversal of a link from From to To at the given cost (which
// is l.Cost if From==l.From, or l.ReverseCost otherwise).
type Step struct {
	LinkID   int
	From, To int
	Cost     int64
}

// Route is the ordered closed walk produced by a solve.
type Route struct {
	Depot int
	Steps []Step
}

// New wraps steps into a Route starting at depot. It performs no
// validation; call Validate separately once the owning graph is known.
func New(depot int, steps []Step) *Route {
	return &Route{Depot: depot, Steps: append([]Step(nil), steps...)}
}

// Vertices returns the visited vertex sequence, depot included at both ends
// when the route is closed.
func (r *Route) Vertices() []int {
	if len(r.Steps) == 0 {
		return []int{r.Depot}
	}
	out := make([]int, 0, len(r.Steps)+1)
	out = append(out, r.Steps[0].From)
	for _, s := range r.Steps {
		out = append(out, s.To)
	}
	return out
}

// TotalCost sums every step's cost, failing with ErrCostOverflow rather
// than silently wrapping past math.MaxInt64.
func (r *Route) TotalCost() (int64, error) {
	var total int64
	for _, s := range r.Steps {
		if s.Cost > 0 && total > math.MaxInt64-s.Cost {
			return 0, ErrCostOverflow
		}
		total += s.Cost
	}
	return total, nil
}

// TraversalCounts returns, per link id, how many times the route traverses
// it (≥1 for every required link on a valid route, possibly >1 for a
// deadheaded required link).
func (r *Route) TraversalCounts() map[int]int {
	counts := make(map[int]int, len(r.Steps))
	for _, s := range r.Steps {
		counts[s.LinkID]++
	}
	return counts
}

// DeadheadCount returns the number of steps whose link id is not in
// required — a traversal that exists purely to connect required work.
func (r *Route) DeadheadCount(required []int) int {
	req := make(map[int]bool, len(required))
	for _, id := range required {
		req[id] = true
	}
	var n int
	for _, s := range r.Steps {
		if !req[s.LinkID] {
			n++
		}
	}
	return n
}

// Validate checks every structural invariant a route produced against g
// must satisfy: the walk is closed at the depot, consecutive steps share
// an endpoint in the traversed direction, each step's direction is
// permitted by the underlying link, and every required link id is
// traversed at least once.
func (r *Route) Validate(g *core.Graph, required []int) error {
	if len(r.Steps) == 0 {
		if len(required) > 0 {
			return ErrEmptyRoute
		}
		return nil
	}
	if r.Steps[0].From != r.Depot {
		return ErrNotClosed
	}
	if r.Steps[len(r.Steps)-1].To != r.Depot {
		return ErrNotClosed
	}
	for i := 0; i < len(r.Steps); i++ {
		s := r.Steps[i]
		l, err := g.Link(s.LinkID)
		if err != nil {
			return fmt.Errorf("route: step %d: %w", i, err)
		}
		forward := s.From == l.From && s.To == l.To
		backward := !l.Directed && s.From == l.To && s.To == l.From
		if !forward && !backward {
			return fmt.Errorf("route: step %d (link %d %d->%d): %w", i, s.LinkID, s.From, s.To, ErrDirectionMismatch)
		}
		if i+1 < len(r.Steps) && r.Steps[i+1].From != s.To {
			return fmt.Errorf("route: step %d->%d: %w", i, i+1, ErrDisconnectedStep)
		}
	}

	counts := r.TraversalCounts()
	for _, id := range required {
		if counts[id] == 0 {
			return fmt.Errorf("route: link %d: %w", id, ErrRequiredLinkMissing)
		}
	}
	return nil
}

// LinkDirection names a link id and the direction it should be traversed:
// forward (From→To as stored on the graph) when Forward is true, reverse
// otherwise. Used by Replay to rebuild a Route independently of whatever
// costs a caller may have cached.
type LinkDirection struct {
	LinkID  int
	Forward bool
}

// Replay rebuilds a Route from scratch given only a depot, a graph, and an
// ordered sequence of (link id, direction) pairs: costs are re-derived
// from g rather than trusted from the caller, so a stale or corrupted
// cost cannot silently survive a round trip. It fails with
// ErrDisconnectedStep or ErrDirectionMismatch on a sequence that does not
// form a walk from depot.
func Replay(g *core.Graph, depot int, seq []LinkDirection) (*Route, error) {
	steps := make([]Step, 0, len(seq))
	cur := depot
	for i, ld := range seq {
		l, err := g.Link(ld.LinkID)
		if err != nil {
			return nil, fmt.Errorf("route: replay step %d: %w", i, err)
		}
		from, to := l.From, l.To
		if !ld.Forward {
			if l.Directed {
				return nil, fmt.Errorf("route: replay step %d (link %d): %w", i, ld.LinkID, ErrDirectionMismatch)
			}
			from, to = l.To, l.From
		}
		if from != cur {
			return nil, fmt.Errorf("route: replay step %d (link %d): %w", i, ld.LinkID, ErrDisconnectedStep)
		}
		steps = append(steps, Step{LinkID: l.ID, From: from, To: to, Cost: l.CostOf(ld.Forward)})
		cur = to
	}
	return New(depot, steps), nil
}

// Report renders the canonical textual summary: instance name, solver
// name, total true cost, required-link count, deadhead count, the visited
// vertex sequence, and one line per step (link id, direction, cost).
// Output is fully deterministic for a given Route, so calling Report
// twice on the same Route always yields byte-identical text.
func (r *Route) Report(instanceName, solverName string, required []int) string {
	total, err := r.TotalCost()
	var totalStr string
	if err != nil {
		totalStr = "overflow"
	} else {
		totalStr = fmt.Sprintf("%d", total)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "instance: %s\n", instanceName)
	fmt.Fprintf(&b, "solver: %s\n", solverName)
	fmt.Fprintf(&b, "total cost: %s\n", totalStr)
	fmt.Fprintf(&b, "required links: %d\n", len(required))
	fmt.Fprintf(&b, "deadhead steps: %d\n", r.DeadheadCount(required))

	verts := r.Vertices()
	strs := make([]string, len(verts))
	for i, v := range verts {
		strs[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(&b, "walk: %s\n", strings.Join(strs, " -> "))

	reqSet := make(map[int]bool, len(required))
	for _, id := range required {
		reqSet[id] = true
	}
	for i, s := range r.Steps {
		dir := "->"
		kind := "required"
		if !reqSet[s.LinkID] {
			kind = "deadhead"
		}
		fmt.Fprintf(&b, "%d: link %d %d %s %d cost %d (%s)\n", i, s.LinkID, s.From, dir, s.To, s.Cost, kind)
	}
	return b.String()
}
