package problem

import (
	"errors"
	"sort"

	"github.com/oarligo/arcroute/core"
)

// ErrNoRequiredLinks indicates a problem was built with an empty required
// set: a route must traverse something.
var ErrNoRequiredLinks = errors.New("problem: no required links")

// ErrRequiredLinkUnknown indicates a required link id does not exist in
// the bound graph.
var ErrRequiredLinkUnknown = errors.New("problem: required link id not found in graph")

// ErrDepotUnset indicates New was called before the graph's depot was set.
var ErrDepotUnset = errors.New("problem: depot not set on graph")

// Problem is the immutable input to every solver: a graph, the subset of
// its links that must be traversed, and a depot vertex. All-required
// instances are Chinese Postman problems; a proper subset makes the
// instance a Rural Postman problem. Construct with New; the zero value is
// not meaningful.
type Problem struct {
	graph    *core.Graph
	required []int // link ids, ascending, deduplicated
	depot    int
}

// New builds a Problem over g, marking every link id in requiredIDs as
// required. The depot is read from g.DepotID(); callers must call
// g.SetDepot before constructing a Problem.
//
// New does not mutate g: the Required flag recorded on Problem is tracked
// independently of core.Link.Required, so the same graph can back several
// Problems with different required sets (e.g. a rural subset view of one
// street network).
func New(g *core.Graph, requiredIDs []int) (*Problem, error) {
	depot, err := g.DepotID()
	if err != nil {
		return nil, ErrDepotUnset
	}
	if len(requiredIDs) == 0 {
		return nil, ErrNoRequiredLinks
	}

	seen := make(map[int]bool, len(requiredIDs))
	var dedup []int
	for _, id := range requiredIDs {
		if _, err := g.Link(id); err != nil {
			return nil, ErrRequiredLinkUnknown
		}
		if !seen[id] {
			seen[id] = true
			dedup = append(dedup, id)
		}
	}
	sort.Ints(dedup)

	return &Problem{graph: g, required: dedup, depot: depot}, nil
}

// FromGraphRequired builds a Problem from every link g already marks
// Required — the common case where a parser set Required per-link while
// building g (see oarlib).
func FromGraphRequired(g *core.Graph) (*Problem, error) {
	var ids []int
	for _, l := range g.RequiredLinks() {
		ids = append(ids, l.ID)
	}
	return New(g, ids)
}

// Graph returns the bound graph. Callers must not mutate it; solvers clone
// it internally before augmenting.
func (p *Problem) Graph() *core.Graph { return p.graph }

// Required returns the required link ids, ascending and deduplicated.
func (p *Problem) Required() []int {
	return append([]int(nil), p.required...)
}

// IsRequired reports whether linkID is part of the required set.
func (p *Problem) IsRequired(linkID int) bool {
	i := sort.SearchInts(p.required, linkID)
	return i < len(p.required) && p.required[i] == linkID
}

// Depot returns the depot vertex id.
func (p *Problem) Depot() int { return p.depot }

// IsCPP reports whether every link in the graph is required — a Chinese
// Postman instance rather than a proper Rural Postman subset.
func (p *Problem) IsCPP() bool {
	return len(p.required) == p.graph.NumLinks()
}
