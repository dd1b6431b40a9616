package core

import "sort"

// Graph is the in-memory graph shared by every solver. It supports four
// flavors (see Kind) behind one contract: add vertex, add link, iterate
// vertices/links, neighbors of v, get/set depot id.
//
// Graph is not safe for concurrent mutation from multiple goroutines: a
// solve runs single-threaded against one Graph; two solves may run
// concurrently provided each owns its own Graph instance.
type Graph struct {
	kind Kind

	vertices map[int]*Vertex
	links    map[int]*Link

	// out[v] lists, in ascending link-id order, the ids of links that can be
	// traversed starting at v. Undirected/Windy links are listed under both
	// endpoints; Directed links and directed Mixed links only under From.
	out map[int][]int

	nextLinkID int
	depot      int
	depotSet   bool
}

// NewGraph creates an empty Graph of the given Kind.
func NewGraph(kind Kind) *Graph {
	return &Graph{
		kind:     kind,
		vertices: make(map[int]*Vertex),
		links:    make(map[int]*Link),
		out:      make(map[int][]int),
	}
}

// Kind reports which of the four flavors g plays.
func (g *Graph) Kind() Kind { return g.kind }

// AddVertex registers a vertex with the given id. Re-adding the same id
// is an error (ErrVertexExists) — parsers must not emit duplicate vertex
// lines for the same id.
func (g *Graph) AddVertex(id int) (*Vertex, error) {
	if _, ok := g.vertices[id]; ok {
		return nil, ErrVertexExists
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	return v, nil
}

// EnsureVertex returns the vertex with the given id, creating it
// (uncoordinated, no coordinates) if absent. Used by AddLink so that a
// link referencing an id not yet seen does not fail a well-formed build.
func (g *Graph) EnsureVertex(id int) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	return v
}

// SetVertexCoords records optional 2-D coordinates for an existing vertex.
func (g *Graph) SetVertexCoords(id int, x, y float64) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.X, v.Y, v.HasCoords = x, y, true
	return nil
}

// LinkOption configures a Link at AddLink time.
type LinkOption func(*Link)

// WithReverseCost sets a windy link's To→From cost. Only meaningful on
// Windy graphs; AddLink rejects it otherwise via ErrBadKind.
func WithReverseCost(reverseCost int64) LinkOption {
	return func(l *Link) { l.ReverseCost = reverseCost }
}

// WithRequired marks the link as required.
func WithRequired(required bool) LinkOption {
	return func(l *Link) { l.Required = required }
}

// WithDirected overrides directedness for a single link; only meaningful
// on Mixed graphs (AddLink forces the correct value on the other three
// kinds regardless of this option).
func WithDirected(directed bool) LinkOption {
	return func(l *Link) { l.Directed = directed }
}

// WithLabel attaches a human-readable label to the link.
func WithLabel(label string) LinkOption {
	return func(l *Link) { l.Label = label }
}

// AddLink adds a link from→to with the given forward cost, assigning it
// the next dense id. Endpoints not yet present are created via
// EnsureVertex; oarlib relies on this and does not check ids against a
// declared N.
//
// Complexity: O(E), since recount rescans every link for both endpoints.
func (g *Graph) AddLink(from, to int, cost int64, opts ...LinkOption) (*Link, error) {
	if cost < 0 {
		return nil, ErrNegativeCost
	}
	g.EnsureVertex(from)
	g.EnsureVertex(to)

	g.nextLinkID++
	l := &Link{
		ID:          g.nextLinkID,
		From:        from,
		To:          to,
		Cost:        cost,
		ReverseCost: cost,
	}
	switch g.kind {
	case Directed:
		l.Directed = true
	case Mixed:
		l.Directed = false // absent isDirected defaults a mixed link to undirected
	case Undirected, Windy:
		l.Directed = false
	}
	for _, opt := range opts {
		opt(l)
	}
	switch g.kind {
	case Windy:
		// Windy links always carry an explicit reverse cost; WithReverseCost
		// already set it above if provided, otherwise it mirrors Cost.
	default:
		if l.ReverseCost != l.Cost {
			return nil, ErrBadKind
		}
	}
	if l.ReverseCost < 0 {
		return nil, ErrNegativeCost
	}
	if g.kind != Mixed && l.Directed != (g.kind == Directed) {
		return nil, ErrBadKind
	}

	g.links[l.ID] = l
	g.out[from] = append(g.out[from], l.ID)
	if !l.Directed && from != to {
		g.out[to] = append(g.out[to], l.ID)
	}
	g.recount(from)
	g.recount(to)

	return l, nil
}

// recount recomputes degree/in-out counters for vertex id by a full scan
// of its incident links, so counters always equal a fresh recount rather
// than drifting incrementally out of sync with the link set.
func (g *Graph) recount(id int) {
	v, ok := g.vertices[id]
	if !ok {
		return
	}
	v.degree, v.inDegree, v.outDegree = 0, 0, 0
	for _, l := range g.links {
		if l.From == id && l.To == id {
			v.degree += 2
			v.outDegree++
			v.inDegree++
			continue
		}
		if l.Directed {
			if l.From == id {
				v.outDegree++
			}
			if l.To == id {
				v.inDegree++
			}
		} else {
			if l.From == id || l.To == id {
				v.degree++
			}
		}
	}
}

// RecountAll recomputes every vertex's degree counters from scratch.
// Exposed so augmentation code in solver can call it once after building
// an ephemeral graph's links directly, rather than paying recount's O(E)
// cost per AddLink call.
func (g *Graph) RecountAll() {
	for id := range g.vertices {
		g.recount(id)
	}
}

// Vertex returns the vertex with the given id, or (nil, ErrVertexNotFound).
func (g *Graph) Vertex(id int) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// Link returns the link with the given id, or (nil, ErrLinkNotFound).
func (g *Graph) Link(id int) (*Link, error) {
	l, ok := g.links[id]
	if !ok {
		return nil, ErrLinkNotFound
	}
	return l, nil
}

// Vertices returns every vertex, ordered by ascending id for determinism.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Links returns every link, ordered by ascending id for determinism.
func (g *Graph) Links() []*Link {
	out := make([]*Link, 0, len(g.links))
	for _, l := range g.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RequiredLinks returns every link with Required set, in ascending id order.
func (g *Graph) RequiredLinks() []*Link {
	var out []*Link
	for _, l := range g.Links() {
		if l.Required {
			out = append(out, l)
		}
	}
	return out
}

// Neighbors returns, in ascending link-id order, every link that can be
// traversed starting at vertex v (i.e. v == l.From, or v == l.To on a
// non-directed link).
func (g *Graph) Neighbors(v int) []*Link {
	ids := append([]int(nil), g.out[v]...)
	sort.Ints(ids)
	out := make([]*Link, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.links[id])
	}
	return out
}

// SetDepot designates the depot vertex. The id must already exist.
func (g *Graph) SetDepot(id int) error {
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	g.depot, g.depotSet = id, true
	return nil
}

// DepotID returns the depot vertex id, or ErrDepotNotSet if SetDepot was
// never called.
func (g *Graph) DepotID() (int, error) {
	if !g.depotSet {
		return 0, ErrDepotNotSet
	}
	return g.depot, nil
}

// NumVertices reports |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumLinks reports |E|.
func (g *Graph) NumLinks() int { return len(g.links) }

// RemoveLinkRequired clears the Required flag on a link id; used by
// nothing in the core pipeline itself but handy for test fixtures that
// build a graph once and re-derive a rural-postman subset from it.
func (g *Graph) RemoveLinkRequired(id int) error {
	l, ok := g.links[id]
	if !ok {
		return ErrLinkNotFound
	}
	l.Required = false
	return nil
}
