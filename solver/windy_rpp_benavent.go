package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/route"
)

// solveWindyRPPBenavent solves windy rural postman with Benavent's H1
// heuristic, the hardest of the six: the required set may be a proper,
// disconnected subset of the graph's links.
//
//  1. Build the subgraph induced by R's endpoints and label its connected
//     components.
//  2. If more than one component, treat the components as vertices of a
//     complete graph whose edge weight is the cheapest windy distance
//     (min of forward/reverse cost) between any pair of their vertices,
//     run Kruskal, and activate the links of the underlying shortest path
//     for every MST edge (see activatePath) — non-required ones become
//     deadhead links alongside the required ones.
//  3. Match odd-degree vertices of the now-connected required+connector
//     subgraph by average cost, but realize each matched pair's path
//     using minimum-of-forward/reverse distances (Benavent's own split
//     between the matching criterion and the realized route).
//  4. Extract the circuit and, as in Win's heuristic, report every step
//     under its true asymmetric cost.
func solveWindyRPPBenavent(p *problem.Problem, opts Options) (*route.Route, error) {
	if p.Graph().Kind() != core.Windy {
		return nil, fmt.Errorf("solver: windy-rpp requires a windy graph: %w", ErrUnsupportedSolver)
	}

	required := p.Required()
	g := p.Graph().Clone()
	depot := p.Depot()

	if err := checkRequiredReachable(g, depot, required); err != nil {
		return nil, err
	}
	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	active := make(map[int]bool, len(required))
	for _, id := range required {
		active[id] = true
	}

	reqGraph := p.Graph().Subgraph(required)
	reqVertices := vertexIDs(reqGraph)
	comp := algo.ConnectedComponents(reqVertices, reachabilityAdjacency(reqGraph))

	groups := make(map[int][]int)
	for _, v := range reqVertices {
		c := comp[v]
		groups[c] = append(groups[c], v)
	}

	allVertices := vertexIDs(g)
	apspMin := algo.FloydWarshall(allVertices, minCost(g))

	if len(groups) > 1 {
		compIDs := make([]int, 0, len(groups))
		for c := range groups {
			compIDs = append(compIDs, c)
		}

		type bridge struct {
			u, v int
			dist int64
		}
		best := make(map[[2]int]bridge)
		var candidates []algo.WeightedLink
		nextCandID := 1
		for i := 0; i < len(compIDs); i++ {
			for j := i + 1; j < len(compIDs); j++ {
				ci, cj := compIDs[i], compIDs[j]
				var found bool
				var b bridge
				for _, u := range groups[ci] {
					for _, v := range groups[cj] {
						d := apspMin.Dist[u][v]
						if d >= algo.Inf {
							continue
						}
						if !found || d < b.dist {
							found, b = true, bridge{u: u, v: v, dist: d}
						}
					}
				}
				if !found {
					return nil, fmt.Errorf("solver: no connector between required components %d and %d: %w", ci, cj, ErrInfeasibleInstance)
				}
				key := [2]int{ci, cj}
				best[key] = b
				candidates = append(candidates, algo.WeightedLink{ID: nextCandID, U: ci, V: cj, Weight: b.dist})
				nextCandID++
			}
		}

		mst, _, err := algo.Kruskal(compIDs, candidates)
		if err != nil {
			return nil, fmt.Errorf("solver: windy-rpp connector MST: %w", err)
		}
		for _, e := range mst {
			b := best[[2]int{e.U, e.V}]
			path, err := algo.ReconstructPath(apspMin.Pred, b.u, b.v)
			if err != nil {
				return nil, fmt.Errorf("solver: windy-rpp connector path: %w", err)
			}
			if err := activatePath(g, path, active); err != nil {
				return nil, err
			}
		}
	}

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	degree := activeDegree(g, active)
	odd := algo.OddDegree(allVertices, degree)
	opts.logf("windy-rpp: %d odd-degree vertices after connector phase", len(odd))

	if len(odd) > 0 {
		apspAvg := algo.FloydWarshall(allVertices, averageCost(g))
		pairs, _, err := algo.GreedyMatch(odd, func(u, v int) int64 { return apspAvg.Dist[u][v] })
		if err != nil {
			return nil, fmt.Errorf("solver: windy-rpp matching: %w", err)
		}
		for _, pair := range pairs {
			if apspMin.Dist[pair.U][pair.V] >= algo.Inf {
				return nil, fmt.Errorf("solver: no path between odd vertices %d and %d: %w", pair.U, pair.V, ErrInfeasibleInstance)
			}
			path, err := algo.ReconstructPath(apspMin.Pred, pair.U, pair.V)
			if err != nil {
				return nil, fmt.Errorf("solver: windy-rpp path reconstruction: %w", err)
			}
			if err := activatePath(g, path, active); err != nil {
				return nil, err
			}
		}
	}

	if err := checkCancelled(opts); err != nil {
		return nil, err
	}

	walk, err := algo.EulerianCircuit(occurrencesForActive(g, active), depot)
	if err != nil {
		return nil, fmt.Errorf("solver: windy-rpp extraction: %w", err)
	}

	steps, err := realizeWindyCosts(g, walkToSteps(walk))
	if err != nil {
		return nil, err
	}

	r := route.New(depot, steps)
	if _, err := r.TotalCost(); err != nil {
		return nil, fmt.Errorf("solver: windy-rpp: %w", ErrCostOverflow)
	}
	if err := r.Validate(p.Graph(), required); err != nil {
		return nil, fmt.Errorf("solver: windy-rpp produced an invalid route: %w", err)
	}
	return r, nil
}

// minCost returns a direct-cost callback over min(Cost, ReverseCost), the
// symmetric weight Benavent H1 uses for connector and realized-path
// distances (as opposed to averageCost, used only for the matching
// criterion in step 3).
func minCost(g *core.Graph) func(u, v int) (int64, bool) {
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
				c, ok = min(l.Cost, l.ReverseCost), true
			case !l.Directed && l.To == u && l.From == v:
				c, ok = min(l.Cost, l.ReverseCost), true
			}
			if ok && (!found || c < best) {
				best, found = c, true
			}
		}
		return best, found
	}
}

// activatePath walks path hop by hop, folding each hop's cheapest link
// into active. A link's very first activation needs no Duplicate call:
// every link already carries one free traversable occurrence from
// construction (core.Graph.AddLink), which satisfies that first use
// exactly the way a required link's first, mandatory traversal is
// satisfied without any augmentation. Only a link touched a second time
// by some later path (already active) needs an explicit Duplicate to add
// the additional occurrence.
func activatePath(g *core.Graph, path []int, active map[int]bool) error {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		id, err := cheapestLinkBetween(g, u, v)
		if err != nil {
			return err
		}
		if active[id] {
			if err := g.Duplicate(id); err != nil {
				return err
			}
			continue
		}
		active[id] = true
	}
	return nil
}

// activeDegree counts, per vertex, how many currently-traversable
// occurrences among g's active link ids are incident to it — the rural
// postman analogue of core.Vertex.Degree(), restricted to a subset of
// links rather than the whole graph, and aware of duplicate occurrences
// added by Duplicate (which core.Vertex.Degree() is not, by design: see
// core.Graph.Duplicate's doc comment on why degree counters only ever
// reflect the unique underlying link set).
func activeDegree(g *core.Graph, active map[int]bool) map[int]int {
	degree := make(map[int]int, g.NumVertices())
	for _, v := range g.Vertices() {
		degree[v.ID] = 0
	}
	for _, v := range g.Vertices() {
		for _, l := range g.Neighbors(v.ID) {
			if !active[l.ID] {
				continue
			}
			if l.From == l.To {
				degree[v.ID] += 2
				continue
			}
			degree[v.ID]++
		}
	}
	return degree
}

// occurrencesForActive is occurrencesFromGraph restricted to a subset of
// link ids: rural postman must not route through links that are neither
// required nor added as connector/parity deadhead.
func occurrencesForActive(g *core.Graph, active map[int]bool) []algo.Occurrence {
	var occ []algo.Occurrence
	for _, l := range g.Links() {
		if !active[l.ID] {
			continue
		}
		n := 0
		for _, id := range fromAdjacency(g, l.From) {
			if id == l.ID {
				n++
			}
		}
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			occ = append(occ, algo.Occurrence{
				LinkID:   l.ID,
				From:     l.From,
				To:       l.To,
				Cost:     l.Cost,
				Directed: l.Directed,
			})
		}
	}
	return occ
}
