package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveWindyWin solves windy CPP with Win's heuristic: average each edge's
// forward/reverse cost into a single symmetric weight, solve the
// undirected exact CPP construction on that averaged instance to obtain an
// augmentation pattern (which edges get duplicated, not which direction
// they're walked), extract the resulting circuit, then report every step
// under its true asymmetric cost rather than the averaging placeholder
// that drove augmentation.
func solveWindyWin(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Windy {
		return nil, fmt.Errorf("solver: windy-win requires a windy graph: %w", ErrUnsupportedSolver)
	}
	if !p.IsCPP() {
		return nil, fmt.Errorf("solver: windy-win requires every link to be required: %w", ErrUnsupportedSolver)
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
	opts.logf("windy-win: %d odd-degree vertices", len(odd))

	if len(odd) > 0 {
		apsp := algo.FloydWarshall(vertices, averageCost(g))
		pairs, _, err := algo.GreedyMatch(odd, func(u, v int) int64 { return apsp.Dist[u][v] })
		if err != nil {
			return nil, fmt.Errorf("solver: windy-win matching: %w", err)
		}
		for _, pair := range pairs {
			if apsp.Dist[pair.U][pair.V] >= algo.Inf {
				return nil, fmt.Errorf("solver: no path between odd vertices %d and %d: %w", pair.U, pair.V, ErrInfeasibleInstance)
			}
			path, err := algo.ReconstructPath(apsp.Pred, pair.U, pair.V)
			if err != nil {
				return nil, fmt.Errorf("solver: windy-win path reconstruction: %w", err)
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
		return nil, fmt.Errorf("solver: windy-win extraction: %w", err)
	}

	steps, err := realizeWindyCosts(g, walkToSteps(walk))
	if err != nil {
		return nil, err
	}

	r := route.New(depot, steps)
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: windy-win: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), p.Required()); err != nil {
		return nil, fmt.Errorf("solver: windy-win produced an invalid route: %w", err)
	}
	return r, nil
}

// averageCost returns a direct-cost callback over (Cost+ReverseCost)/2 for
// every link, the symmetric weight Win's heuristic builds its undirected
// instance from. Non-windy graphs have ReverseCost == Cost, so this
// collapses to directCost for them — used by the windy rural solver too.
func averageCost(g *core.Graph) func(u, v int) (int64, bool) {
	return func(u, v int) (int64, bool) {
		if u == v {
			return 0, false
		}
		best := int64(0)
		found := false
		for _, l := range g.Neighbors(u) {
			if l.From == l.To {
				continue
			}
			var c int64
			var ok bool
			switch {
			case l.From == u && l.To == v:
				c, ok = (l.Cost+l.ReverseCost)/2, true
			case !l.Directed && l.To == u && l.From == v:
				c, ok = (l.Cost+l.ReverseCost)/2, true
			}
			if ok && (!found || c < best) {
				best, found = c, true
			}
		}
		return best, found
	}
}

// realizeWindyCosts rewrites each step's Cost from the placeholder value
// EulerianCircuit assigned (a single cost per occurrence, blind to
// direction) to the true direction-dependent cost the underlying link
// carries. EulerianCircuit itself picks which way each undirected
// occurrence is walked with no regard to windy cost — so before settling
// on a realization, this also tries the circuit traversed in reverse (a
// closed walk run backward is an equally valid Eulerian circuit, using
// every occurrence exactly once in the opposite direction) and keeps
// whichever of the two is cheaper overall, per the "choose the cheaper
// direction of each edge traversal" rule.
func realizeWindyCosts(g *core.Graph, steps []route.Step) ([]route.Step, error) {
	forward, forwardTotal, err := realizeDirection(g, steps)
	if err != nil {
		return nil, err
	}
	reversed, reversedTotal, err := realizeDirection(g, reverseSteps(steps))
	if err != nil {
		return nil, err
	}
	if reversedTotal < forwardTotal {
		return reversed, nil
	}
	return forward, nil
}

// reverseSteps returns the same closed walk traversed backward: the same
// links in reverse order, each step's From/To swapped.
func reverseSteps(steps []route.Step) []route.Step {
	out := make([]route.Step, len(steps))
	for i, s := range steps {
		out[len(steps)-1-i] = route.Step{LinkID: s.LinkID, From: s.To, To: s.From}
	}
	return out
}

// realizeDirection rewrites each step's Cost to the true cost of the
// direction it actually walks (forward cost when the step walks From→To
// as stored on the link, reverse cost when it walks the link backward)
// and reports the walk's total cost alongside it.
func realizeDirection(g *core.Graph, steps []route.Step) ([]route.Step, int64, error) {
	out := make([]route.Step, len(steps))
	var total int64
	for i, s := range steps {
		l, err := g.Link(s.LinkID)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case l.From == s.From && l.To == s.To:
			s.Cost = l.Cost
		case l.From == s.To && l.To == s.From:
			s.Cost = l.ReverseCost
		default:
			return nil, 0, fmt.Errorf("solver: step %d does not match link %d endpoints: %w", i, l.ID, ErrInternalInvariantViolation)
		}
		total += s.Cost
		out[i] = s
	}
	return out, total, nil
}
