package core

// Clone returns a deep copy of g. Solvers clone the input graph before any
// augmentation so that the caller's graph is never mutated: a solver works
// on the copy and returns a Route that still references the original link
// ids.
func (g *Graph) Clone() *Graph {
	cp := NewGraph(g.kind)
	cp.nextLinkID = g.nextLinkID
	cp.depot, cp.depotSet = g.depot, g.depotSet

	for id, v := range g.vertices {
		nv := *v
		cp.vertices[id] = &nv
	}
	for id, l := range g.links {
		nl := *l
		cp.links[id] = &nl
	}
	for v, ids := range g.out {
		cp.out[v] = append([]int(nil), ids...)
	}
	return cp
}

// Duplicate appends one more traversable occurrence of an existing link to
// the adjacency, without allocating a new id. Used by augmentation to turn
// a shortest-path's links into deadhead copies: the resulting multigraph
// then has the right degree parity for Hierholzer, while Route reporting
// still refers to the one real underlying link.
//
// Degree and in/out counters are recomputed from the link set, which
// Duplicate does not grow, so they keep counting each link once; code that
// needs the multigraph degree counts adjacency entries instead.
//
// Complexity: O(E), since recount rescans every link.
func (g *Graph) Duplicate(linkID int) error {
	l, ok := g.links[linkID]
	if !ok {
		return ErrLinkNotFound
	}
	g.out[l.From] = append(g.out[l.From], l.ID)
	if !l.Directed && l.From != l.To {
		g.out[l.To] = append(g.out[l.To], l.ID)
	}
	g.recount(l.From)
	g.recount(l.To)
	return nil
}

// Subgraph returns a new Graph of the same Kind containing only the given
// link ids and their endpoints. Used by Benavent H1 to build the required
// subgraph induced by R, before computing its connected components.
func (g *Graph) Subgraph(linkIDs []int) *Graph {
	sg := NewGraph(g.kind)
	sg.depot, sg.depotSet = g.depot, g.depotSet
	for _, id := range linkIDs {
		l, ok := g.links[id]
		if !ok {
			continue
		}
		sg.EnsureVertex(l.From)
		sg.EnsureVertex(l.To)
		nl := *l
		if nl.ID > sg.nextLinkID {
			sg.nextLinkID = nl.ID
		}
		sg.links[nl.ID] = &nl
		sg.out[nl.From] = append(sg.out[nl.From], nl.ID)
		if !nl.Directed && nl.From != nl.To {
			sg.out[nl.To] = append(sg.out[nl.To], nl.ID)
		}
	}
	sg.RecountAll()
	return sg
}
