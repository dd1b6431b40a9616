package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveMixedYaoyuenyong iteratively improves on Frederickson's starting
// point: beginning from method1Oriented's greedy edge orientation, it
// repeatedly tries flipping exactly one undirected edge's provisional
// direction, keeping the flip only if re-running the excess-balancing
// pass on a fresh clone strictly reduces total added cost. Candidate
// flips within one pass are considered in ascending (cost delta, link
// id) order so the search is reproducible; the pass stops when no flip
// improves the total, or after a move budget equal to the number of
// undirected edges is spent — this is a best-effort local search, not a
// claim of optimality (see the Yaoyuenyong entry in DESIGN.md).
func solveMixedYaoyuenyong(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Mixed {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong requires a mixed graph: %w", ErrUnsupportedSolver)
	}
	if !p.IsCPP() {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong requires every link to be required: %w", ErrUnsupportedSolver)
	}

	depot := p.Depot()
	if err := checkRequiredReachable(p.Graph(), depot, p.Required()); err != nil {
		return nil, err
	}
	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	undirected := undirectedLinkIDs(p.Graph())
	flips := make(map[int]bool, len(undirected))

	baseG := p.Graph().Clone()
	baseCost, err := orientAndBalance(baseG, flips)
	if err != nil {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong: %w", err)
	}

	budget := len(undirected)
	for iter := 0; iter < budget; iter++ {
		if err := checkCancelled(opts); err != nil {
			return nil, err
		}

		type candidate struct {
			linkID int
			cost   int64
			delta  int64
		}
		var cands []candidate
		for _, id := range undirected {
			trial := make(map[int]bool, len(flips)+1)
			for k, v := range flips {
				trial[k] = v
			}
			trial[id] = !trial[id]

			g := p.Graph().Clone()
			cost, err := orientAndBalance(g, trial)
			if err != nil {
				continue // infeasible flip, not a candidate move
			}
			cands = append(cands, candidate{linkID: id, cost: cost, delta: cost - baseCost})
		}
		if len(cands) == 0 {
			break
		}
		for i := 0; i < len(cands); i++ {
			for j := i + 1; j < len(cands); j++ {
				if cands[j].delta < cands[i].delta || (cands[j].delta == cands[i].delta && cands[j].linkID < cands[i].linkID) {
					cands[i], cands[j] = cands[j], cands[i]
				}
			}
		}
		best := cands[0]
		if best.delta >= 0 {
			break
		}
		flips[best.linkID] = !flips[best.linkID]
		baseCost = best.cost
		opts.logf("mixed-yaoyuenyong: flipped link %d, total now %d", best.linkID, baseCost)
	}

	finalG := p.Graph().Clone()
	if _, err := orientAndBalance(finalG, flips); err != nil {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong: %w", err)
	}

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	walk, err := algo.EulerianCircuit(occurrencesFromGraph(finalG), depot)
	if err != nil {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong extraction: %w", err)
	}

	r := route.New(depot, walkToSteps(walk))
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), p.Required()); err != nil {
		return nil, fmt.Errorf("solver: mixed-yaoyuenyong produced an invalid route: %w", err)
	}
	return r, nil
}

// undirectedLinkIDs returns, ascending, every link id that is not an arc.
func undirectedLinkIDs(g *core.Graph) []int {
	var ids []int
	for _, l := range g.Links() {
		if !l.Directed {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// orientAndBalance computes provisional excess exactly like
// method1Oriented, except each undirected link's default orientation
// choice is inverted wherever flips[id] is true, then resolves the
// result via balanceDirectedExcess.
func orientAndBalance(g *core.Graph, flips map[int]bool) (int64, error) {
	vertices := vertexIDs(g)
	in, out := make(map[int]int, len(vertices)), make(map[int]int, len(vertices))
	for _, v := range g.Vertices() {
		i, o := v.InOut()
		in[v.ID], out[v.ID] = i, o
	}
	for _, l := range g.Links() {
		if l.Directed {
			continue
		}
		toToFrom := out[l.From]-in[l.From] > out[l.To]-in[l.To]
		if flips[l.ID] {
			toToFrom = !toToFrom
		}
		if toToFrom {
			out[l.To]++
			in[l.From]++
		} else {
			out[l.From]++
			in[l.To]++
		}
	}
	return balanceDirectedExcess(g, vertices, in, out)
}
