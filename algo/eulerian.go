// Eulerian circuit extraction (Hierholzer), grounded on
// tsp/eulerian.go's half-edge representation (O(E) time, explicit twin
// pointers, no quadratic splice). Two deliberate departures from that
// representation:
//
//   - Directed occurrences are supported alongside undirected ones: a
//     directed occurrence contributes one unpaired half-edge instead of
//     a twinned pair, since an undirected multigraph has no use for arc
//     direction in the first place.
//   - The stack's pop order comes out LIFO-finalized, which is fine for
//     a symmetric-cost shortcutting pass but wrong here: under
//     windy/mixed costs and required-arc direction, the walk must be
//     emitted forward from start, so this version reverses the pop
//     order before returning traversals. Doing so is also what gives the
//     forward-movement preference its guarantee (see EulerianCircuit's
//     doc comment below).
package algo

import "errors"

// ErrEulerianPrecondition indicates the occurrences passed to
// EulerianCircuit do not form a connected, Eulerian multigraph rooted at
// start — a solver bug (augmentation should always guarantee this before
// calling), never a user-facing failure.
var ErrEulerianPrecondition = errors.New("algo: occurrences do not form an Eulerian multigraph at start")

// Occurrence is one traversable use of a link: an undirected link
// contributes one Occurrence per physical copy (each worth a pair of
// twinned half-edges, one at each endpoint); a directed link contributes
// one Occurrence worth a single, unpaired half-edge departing From.
type Occurrence struct {
	LinkID   int
	From, To int
	Cost     int64
	Directed bool
}

// Traversal is one step of the extracted circuit: link LinkID traversed
// From→To at the given cost.
type Traversal struct {
	LinkID   int
	From, To int
	Cost     int64
}

type halfEdge struct {
	linkID int
	to     int
	cost   int64
	twin   int // -1 if unpaired (directed); otherwise the sibling half-edge index
	used   bool
}

// EulerianCircuit extracts a closed walk starting and ending at start that
// uses every occurrence exactly once.
//
// Forward-movement preference: Hierholzer's algorithm discovers the main
// tour first and, whenever it returns to a vertex with unused edges still
// attached, immediately descends into the newly found subtour before
// continuing — the subtour occupies the position in the final walk where
// it was found, i.e. forward of (not behind) the point that discovered
// it. This is an emergent property of the stack-based formulation below,
// not a separate post-processing step: reversing the stack's pop order
// is exactly what turns "discovered last, therefore popped first" into
// "spliced at the forward position it was found".
//
// Determinism: at each vertex, unused half-edges are tried in ascending
// (LinkID, insertion order) — occurrences should be supplied in the order
// a deterministic augmentation pass produced them.
//
// Complexity: O(E) time and space, E = len(occurrences).
func EulerianCircuit(occurrences []Occurrence, start int) ([]Traversal, error) {
	if len(occurrences) == 0 {
		return nil, nil
	}

	var half []halfEdge
	var origin []int              // half-edge index -> vertex it departs from
	headOf := make(map[int][]int) // vertex -> half-edge indices, insertion order

	addHalf := func(from, to, linkID int, cost int64) int {
		idx := len(half)
		half = append(half, halfEdge{linkID: linkID, to: to, cost: cost, twin: -1})
		origin = append(origin, from)
		headOf[from] = append(headOf[from], idx)
		return idx
	}

	for _, occ := range occurrences {
		if occ.Directed {
			addHalf(occ.From, occ.To, occ.LinkID, occ.Cost)
			continue
		}
		a := addHalf(occ.From, occ.To, occ.LinkID, occ.Cost)
		b := addHalf(occ.To, occ.From, occ.LinkID, occ.Cost)
		half[a].twin, half[b].twin = b, a
	}

	// Sort each vertex's half-edge list by ascending link id, stable on
	// insertion order for parallel occurrences of the same link.
	for v, idxs := range headOf {
		insertionSortByLinkID(idxs, half)
		headOf[v] = idxs
	}

	cursor := make(map[int]int) // vertex -> index into headOf[v] of next candidate

	type frame struct {
		vertex  int
		viaHalf int // half-edge used to arrive here; -1 for the start frame
	}
	stack := []frame{{vertex: start, viaHalf: -1}}
	var popped []frame

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		list := headOf[top.vertex]
		for cursor[top.vertex] < len(list) && half[list[cursor[top.vertex]]].used {
			cursor[top.vertex]++
		}
		if cursor[top.vertex] == len(list) {
			popped = append(popped, top)
			stack = stack[:len(stack)-1]
			continue
		}
		e := list[cursor[top.vertex]]
		half[e].used = true
		if half[e].twin >= 0 {
			half[half[e].twin].used = true
		}
		stack = append(stack, frame{vertex: half[e].to, viaHalf: e})
	}

	// Every half-edge must have been consumed, or the input was not a
	// connected Eulerian multigraph rooted at start.
	for i := range half {
		if !half[i].used {
			return nil, ErrEulerianPrecondition
		}
	}
	// A walk that used every half-edge but got stuck away from start is
	// not a circuit: some vertex had odd degree or unbalanced arcs.
	if popped[0].vertex != start {
		return nil, ErrEulerianPrecondition
	}

	// Reverse pop order: see function doc for why this both orients the
	// walk forward from start and realizes the forward-splice guarantee.
	// popped is in LIFO finalization order; reversed(popped)[0] is start,
	// and reversed(popped)[k] was reached via popped[len(popped)-1-k]'s
	// arrival half-edge, which is exactly popped[i] as i runs n-2..0.
	n := len(popped)
	walk := make([]Traversal, 0, n-1)
	for i := n - 2; i >= 0; i-- {
		e := popped[i].viaHalf
		// Odd-degree vertices away from start show up as a step whose
		// half-edge does not depart from the previous step's end.
		if origin[e] != popped[i+1].vertex {
			return nil, ErrEulerianPrecondition
		}
		walk = append(walk, Traversal{
			LinkID: half[e].linkID,
			From:   popped[i+1].vertex,
			To:     popped[i].vertex,
			Cost:   half[e].cost,
		})
	}
	return walk, nil
}

// insertionSortByLinkID sorts idxs in place by ascending half[idx].linkID.
// Insertion sort is trivially stable and idxs is short (bounded by a
// vertex's degree), matching the "(LinkID, insertion order)" tie-break
// without leaning on sort.Slice's stability guarantees for no real gain.
func insertionSortByLinkID(idxs []int, half []halfEdge) {
	for i := 1; i < len(idxs); i++ {
		for j := i; j > 0 && half[idxs[j-1]].linkID > half[idxs[j]].linkID; j-- {
			idxs[j-1], idxs[j] = idxs[j], idxs[j-1]
		}
	}
}
