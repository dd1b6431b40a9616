package solver

import (
	"fmt"

	"github.com/oarligo/arcroute/algo"
	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/route"
)

// vertexIDs returns every vertex id in g, ascending.
func vertexIDs(g *core.Graph) []int {
	vs := g.Vertices()
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

// directCost returns a callback suitable for algo.FloydWarshall: the
// cheapest direct traversal cost from u to v respecting each link's
// direction and (for windy links) its asymmetric cost, or (0, false) if no
// link connects u to v in that direction. Self-loops are never considered:
// a shortest path between distinct vertices never benefits from one, and
// excluding them keeps augmentation from ever duplicating a self-loop.
func directCost(g *core.Graph) func(u, v int) (int64, bool) {
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
				c, ok = l.CostOf(true), true
			case !l.Directed && l.To == u && l.From == v:
				c, ok = l.CostOf(false), true
			}
			if ok && (!found || c < best) {
				best, found = c, true
			}
		}
		return best, found
	}
}

// occurrencesFromGraph converts g's current link set (including any
// duplicate copies Duplicate has appended) into the Occurrence list
// algo.EulerianCircuit expects: one Occurrence per traversable copy of
// each link, directed copies contributing a single occurrence, undirected
// copies contributing one twin-paired occurrence per physical copy. A
// link's occurrence count is read off how many times its id appears in
// the From-side adjacency, which Duplicate keeps in lockstep with the
// actual number of copies.
func occurrencesFromGraph(g *core.Graph) []algo.Occurrence {
	var occ []algo.Occurrence
	for _, l := range g.Links() {
		n := 0
		for _, id := range fromAdjacency(g, l.From) {
			if id == l.ID {
				n++
			}
		}
		if n == 0 {
			n = 1 // self-loops are never duplicated; one physical copy.
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

// fromAdjacency returns the raw list of link ids g considers traversable
// starting at v, including duplicate entries, via the one exported
// primitive that already carries that information (Neighbors), mapped
// down to ids.
func fromAdjacency(g *core.Graph, v int) []int {
	links := g.Neighbors(v)
	ids := make([]int, 0, len(links))
	for _, l := range links {
		if l.From == v {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// duplicatePath appends one deadhead traversal along every link on the
// vertex path produced by algo.ReconstructPath, choosing at each hop
// whichever of g's parallel links between the two vertices is cheapest in
// that direction (mirroring the selection directCost would have made when
// FloydWarshall computed the path's cost).
func duplicatePath(g *core.Graph, path []int) error {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		id, err := cheapestLinkBetween(g, u, v)
		if err != nil {
			return err
		}
		if err := g.Duplicate(id); err != nil {
			return err
		}
	}
	return nil
}

// cheapestLinkBetween returns the id of the cheapest link traversable
// u->v, breaking ties by ascending link id for determinism.
func cheapestLinkBetween(g *core.Graph, u, v int) (int, error) {
	best, bestCost := -1, int64(0)
	for _, l := range g.Neighbors(u) {
		if l.From == l.To {
			continue
		}
		var c int64
		var ok bool
		switch {
		case l.From == u && l.To == v:
			c, ok = l.CostOf(true), true
		case !l.Directed && l.To == u && l.From == v:
			c, ok = l.CostOf(false), true
		}
		if !ok {
			continue
		}
		if best == -1 || c < bestCost || (c == bestCost && l.ID < best) {
			best, bestCost = l.ID, c
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("solver: no direct link %d->%d: %w", u, v, ErrInternalInvariantViolation)
	}
	return best, nil
}

// balanceDirectedExcess resolves a directed in/out imbalance by assigning
// each excess-out vertex a shortest directed-respecting path to an
// excess-in vertex (algo.MinCostAssign, exact, over the full APSP matrix)
// and duplicating every link on each chosen path. Returns the total cost
// added. Shared by DCPP and both mixed-CPP sub-procedures, which differ
// only in how in/out are computed before calling this.
func balanceDirectedExcess(g *core.Graph, vertices []int, in, out map[int]int) (int64, error) {
	positive, negative := algo.Excess(vertices, in, out)
	if len(positive) == 0 {
		return 0, nil
	}
	apsp := algo.FloydWarshall(vertices, directCost(g))
	pairs, err := algo.MinCostAssign(positive, negative, func(u, v int) int64 { return apsp.Dist[u][v] })
	if err != nil {
		return 0, fmt.Errorf("solver: excess assignment: %w", err)
	}
	var total int64
	for _, pair := range pairs {
		if apsp.Dist[pair.From][pair.To] >= algo.Inf {
			return 0, fmt.Errorf("solver: no directed path %d->%d: %w", pair.From, pair.To, ErrInfeasibleInstance)
		}
		path, err := algo.ReconstructPath(apsp.Pred, pair.From, pair.To)
		if err != nil {
			return 0, fmt.Errorf("solver: path reconstruction: %w", err)
		}
		if err := duplicatePath(g, path); err != nil {
			return 0, err
		}
		total += apsp.Dist[pair.From][pair.To]
	}
	return total, nil
}

// reachabilityAdjacency builds a plain vertex->neighbors adjacency for
// algo.Reachable/algo.ConnectedComponents: directed links contribute only
// From->To, non-directed links contribute both directions.
func reachabilityAdjacency(g *core.Graph) map[int][]int {
	adj := make(map[int][]int, g.NumVertices())
	for _, l := range g.Links() {
		adj[l.From] = append(adj[l.From], l.To)
		if !l.Directed {
			adj[l.To] = append(adj[l.To], l.From)
		}
	}
	return adj
}

// checkRequiredReachable confirms every required link's endpoints are
// reachable from depot, returning ErrInfeasibleInstance (wrapped with the
// offending link id) on the first one that is not.
func checkRequiredReachable(g *core.Graph, depot int, required []int) error {
	reach := algo.Reachable(depot, reachabilityAdjacency(g))
	for _, id := range required {
		l, err := g.Link(id)
		if err != nil {
			return err
		}
		if !reach[l.From] || !reach[l.To] {
			return fmt.Errorf("solver: link %d unreachable from depot %d: %w", id, depot, ErrInfeasibleInstance)
		}
	}
	return nil
}

// walkToSteps converts an algo.Traversal sequence into route.Steps, a
// trivial field-for-field remap kept as its own function so call sites
// read as "extract, then convert" rather than repeating the literal.
func walkToSteps(walk []algo.Traversal) []route.Step {
	steps := make([]route.Step, len(walk))
	for i, t := range walk {
		steps[i] = route.Step{LinkID: t.LinkID, From: t.From, To: t.To, Cost: t.Cost}
	}
	return steps
}
