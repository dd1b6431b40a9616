// Minimum-cost perfect matching on an even-sized vertex set, grounded on
// tsp/matching.go's greedyMatch/blossomMatch split: a deterministic greedy
// fallback ships by default, and a Blossom-style exact matcher is a
// documented, unimplemented placeholder a build can swap in later (see
// DESIGN.md for why an exact Blossom implementation is out of scope here).
package algo

import (
	"errors"
	"sort"
)

// ErrOddSize indicates an odd-sized vertex set was passed to a perfect
// matching routine — a perfect matching cannot exist.
var ErrOddSize = errors.New("algo: odd-sized vertex set has no perfect matching")

// ErrMatchingNotImplemented is returned by BlossomMatch: a true
// minimum-weight perfect matching is not available in this build: callers
// fall back to GreedyMatch deterministically.
var ErrMatchingNotImplemented = errors.New("algo: blossom matching not implemented")

// MatchedPair is one pair produced by a perfect matching, with U < V.
type MatchedPair struct {
	U, V int
}

// GreedyMatch sorts every candidate pair by ascending (cost, U, V) and
// greedily accepts the cheapest pair whose endpoints are both still free,
// pairing each unmatched endpoint with the cheapest still-compatible
// partner. Any endpoints left unmatched after the pass (possible only if
// cost ties force an unlucky greedy order into a dead end) are paired off
// arbitrarily by ascending id; fellBack reports whether that fallback
// path was used.
//
// Complexity: O(k² log k) where k = len(odd).
func GreedyMatch(odd []int, cost func(u, v int) int64) (pairs []MatchedPair, fellBack bool, err error) {
	if len(odd)%2 != 0 {
		return nil, false, ErrOddSize
	}
	if len(odd) == 0 {
		return nil, false, nil
	}

	type candidate struct {
		u, v int
		w    int64
	}
	cands := make([]candidate, 0, len(odd)*(len(odd)-1)/2)
	for i := 0; i < len(odd); i++ {
		for j := i + 1; j < len(odd); j++ {
			u, v := odd[i], odd[j]
			if v < u {
				u, v = v, u
			}
			cands = append(cands, candidate{u, v, cost(u, v)})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].w != cands[j].w {
			return cands[i].w < cands[j].w
		}
		if cands[i].u != cands[j].u {
			return cands[i].u < cands[j].u
		}
		return cands[i].v < cands[j].v
	})

	used := make(map[int]bool, len(odd))
	for _, c := range cands {
		if used[c.u] || used[c.v] {
			continue
		}
		used[c.u], used[c.v] = true, true
		pairs = append(pairs, MatchedPair{U: c.u, V: c.v})
	}

	var leftover []int
	for _, o := range odd {
		if !used[o] {
			leftover = append(leftover, o)
		}
	}
	if len(leftover) > 0 {
		fellBack = true
		sort.Ints(leftover)
		for i := 0; i+1 < len(leftover); i += 2 {
			pairs = append(pairs, MatchedPair{U: leftover[i], V: leftover[i+1]})
		}
	}

	return pairs, fellBack, nil
}

// BlossomMatch is a placeholder for a true minimum-weight perfect matching
// (Edmonds' blossom algorithm). It performs no work and always returns
// ErrMatchingNotImplemented so callers deterministically fall back to
// GreedyMatch; see DESIGN.md.
func BlossomMatch(odd []int, cost func(u, v int) int64) ([]MatchedPair, error) {
	_ = odd
	_ = cost
	return nil, ErrMatchingNotImplemented
}

// ErrAssignmentSizeMismatch indicates MinCostAssign was given unequal-sized
// from/to lists — a directed/mixed excess imbalance can only be resolved
// when both sides carry the same number of repeats (handshake over the
// in/out excess, guaranteed by a correctly computed Excess call).
var ErrAssignmentSizeMismatch = errors.New("algo: assignment requires equal-sized from/to lists")

// AssignedPair is one (from, to) pairing produced by MinCostAssign.
type AssignedPair struct {
	From, To int
}

// assignInf bounds the Hungarian algorithm's potentials: large enough
// that no real (bounded int64) cost can mask it, small enough that a
// handful of additions never wraps int64.
const assignInf = int64(1) << 61

// MinCostAssign computes an exact minimum-cost one-to-one assignment
// between positions in from and positions in to via the Hungarian
// algorithm (Kuhn–Munkres with vertex potentials and a shortest
// augmenting path per row), not a greedy nearest-pair pick: the directed
// excess balancing this feeds (DCPP, and the directed-balancing phase
// shared by both mixed-CPP procedures) is a transportation problem with a
// known polynomial exact solution, and a greedy choice is not in general
// optimal for it (see DESIGN.md). The two lists are positionally
// distinct (e.g. excess-out vertices vs. excess-in vertices), and a
// vertex id may legitimately repeat within one list when its imbalance
// exceeds one.
//
// Complexity: O(n^3) where n = len(from) == len(to).
func MinCostAssign(from, to []int, cost func(u, v int) int64) ([]AssignedPair, error) {
	if len(from) != len(to) {
		return nil, ErrAssignmentSizeMismatch
	}
	n := len(from)
	if n == 0 {
		return nil, nil
	}

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1) // p[j] = 1-based row index currently assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = assignInf
		}
		for {
			used[j0] = true
			i0, j1, delta := p[j0], -1, assignInf
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost(from[i0-1], to[j-1]) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	pairs := make([]AssignedPair, n)
	for j := 1; j <= n; j++ {
		i := p[j]
		pairs[i-1] = AssignedPair{From: from[i-1], To: to[j-1]}
	}
	return pairs, nil
}
