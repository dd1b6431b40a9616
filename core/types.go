package core

import "errors"

// Sentinel errors for graph construction and lookup, following the
// original core package's sentinel-error convention; kept as package
// errors rather than panics so that oarlib and solver can wrap them with
// context.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called twice for the same id.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrNegativeCost indicates a link cost (or reverse cost) was negative.
	ErrNegativeCost = errors.New("core: negative link cost")

	// ErrDepotNotSet indicates DepotID was read before SetDepot was called.
	ErrDepotNotSet = errors.New("core: depot not set")

	// ErrBadKind indicates an operation is not valid for the graph's Kind.
	ErrBadKind = errors.New("core: operation not valid for this graph kind")
)

// Kind tags which of the four graph flavors a Graph plays.
type Kind int

const (
	// Undirected graphs carry only edges; Link.Directed is always false.
	Undirected Kind = iota
	// Directed graphs carry only arcs; Link.Directed is always true.
	Directed
	// Mixed graphs carry both; Link.Directed is set per link.
	Mixed
	// Windy graphs carry edges with an asymmetric Cost/ReverseCost pair.
	Windy
)

// String renders a Kind for diagnostics and report headers.
func (k Kind) String() string {
	switch k {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	case Mixed:
		return "mixed"
	case Windy:
		return "windy"
	default:
		return "unknown"
	}
}

// Vertex is a node in the graph, identified by a 1-based integer id unique
// within its Graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int

	// HasCoords reports whether X/Y were supplied; many instances omit them.
	HasCoords bool
	X, Y      float64

	// MatchID is a transient slot used by augmentation routines in solver
	// to map a vertex in a copied/ephemeral graph back to the original's id.
	// It is zero-value (unused) on graphs built directly by a parser.
	MatchID int

	degree              int // Undirected/Windy: total degree
	inDegree, outDegree int // Directed/Mixed: in/out degree
}

// Degree returns the total degree of an Undirected or Windy vertex.
func (v *Vertex) Degree() int { return v.degree }

// InOut returns (in-degree, out-degree) for a Directed or Mixed vertex.
func (v *Vertex) InOut() (int, int) { return v.inDegree, v.outDegree }

// Link generalizes an edge (undirected/windy) or an arc (directed/mixed).
type Link struct {
	// ID uniquely identifies this Link within its Graph; dense in [1,|E|].
	ID int

	// From, To are endpoints: ordered (tail→head) for arcs, unordered
	// (the order they were added in) for edges.
	From, To int

	// Cost is the forward (From→To) traversal cost. Non-negative.
	Cost int64

	// ReverseCost is the To→From traversal cost; meaningful only when the
	// owning Graph's Kind is Windy. For every other Kind it always equals
	// Cost and is kept in sync by AddLink.
	ReverseCost int64

	// Required marks this link as mandatory for the route under solve.
	Required bool

	// Directed marks this link as an arc. Always true for Directed graphs,
	// always false for Undirected/Windy, per-link for Mixed.
	Directed bool

	// Label is an optional human-readable name carried through to reports.
	Label string
}

// CostOf returns the cost of traversing l in the given direction: forward
// (From→To) when fromTo is true, reverse (To→From) otherwise. Non-windy
// links return the same value either way.
func (l *Link) CostOf(fromTo bool) int64 {
	if fromTo {
		return l.Cost
	}
	return l.ReverseCost
}

// Other returns the endpoint of l opposite v. Panics if v is not an
// endpoint of l; callers only ever invoke this on links known to be
// incident to v (from Neighbors), so this is a programming-error guard,
// not a user-facing failure mode.
func (l *Link) Other(v int) int {
	switch v {
	case l.From:
		return l.To
	case l.To:
		return l.From
	default:
		panic("core: vertex is not an endpoint of link")
	}
}
