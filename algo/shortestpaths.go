// Floyd–Warshall all-pairs shortest paths with predecessor tracking.
//
// Grounded on matrix.FloydWarshall's fixed k→i→j loop order and in-place
// relaxation (matrix/impl_floydwarshall.go), extended here to (a) key by
// arbitrary vertex id rather than a dense 0..n-1 Dense matrix, since core
// graphs do not guarantee contiguous ids, and (b) record a predecessor so
// that callers can reconstruct the shortest path itself, not just its cost.
package algo

import "errors"

// ErrPathLoop indicates ReconstructPath detected a cycle while walking
// predecessors — an InternalInvariantViolation in the caller's solver,
// never expected on a correctly populated predecessor matrix.
var ErrPathLoop = errors.New("algo: predecessor walk looped")

// ErrNoPath indicates no path exists between the requested pair.
var ErrNoPath = errors.New("algo: no path between vertices")

// APSP holds the result of FloydWarshall: Dist[u][v] is the shortest cost
// from u to v (Inf if unreachable), Pred[u][v] is the vertex immediately
// before v on that shortest path from u (-1 if u==v or unreachable).
type APSP struct {
	Dist map[int]map[int]int64
	Pred map[int]map[int]int
}

// FloydWarshall computes all-pairs shortest paths over the given vertex
// ids using cost(u,v) for the direct edge cost (Inf/false if no direct
// edge). vertices must be supplied in ascending order: the k,i,j loops run
// over that order, so equal-cost ties are resolved in favor of the lower
// vertex id automatically (the first k that achieves the optimum is never
// displaced by a later, equal-cost k).
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(vertices []int, cost func(u, v int) (int64, bool)) APSP {
	dist := make(map[int]map[int]int64, len(vertices))
	pred := make(map[int]map[int]int, len(vertices))
	for _, u := range vertices {
		dist[u] = make(map[int]int64, len(vertices))
		pred[u] = make(map[int]int, len(vertices))
		for _, v := range vertices {
			if u == v {
				dist[u][v] = 0
				pred[u][v] = -1
				continue
			}
			if c, ok := cost(u, v); ok && c < Inf {
				dist[u][v] = c
				pred[u][v] = u
			} else {
				dist[u][v] = Inf
				pred[u][v] = -1
			}
		}
	}

	for _, k := range vertices {
		for _, i := range vertices {
			dik := dist[i][k]
			if dik >= Inf {
				continue
			}
			for _, j := range vertices {
				dkj := dist[k][j]
				if dkj >= Inf {
					continue
				}
				cand := dik + dkj
				if cand < dist[i][j] {
					dist[i][j] = cand
					pred[i][j] = pred[k][j]
				}
			}
		}
	}

	return APSP{Dist: dist, Pred: pred}
}

// ReconstructPath walks Pred from i to j and returns the vertex sequence
// i,...,j inclusive. A cycle (which must never occur on a correctly
// computed APSP) yields ErrPathLoop rather than looping forever.
func ReconstructPath(pred map[int]map[int]int, i, j int) ([]int, error) {
	if i == j {
		return []int{i}, nil
	}
	if _, ok := pred[i][j]; !ok {
		return nil, ErrNoPath
	}
	if pred[i][j] == -1 {
		return nil, ErrNoPath
	}

	rev := []int{j}
	seen := map[int]bool{j: true}
	cur := j
	for cur != i {
		prev, ok := pred[i][cur]
		if !ok || prev == -1 {
			return nil, ErrNoPath
		}
		if seen[prev] {
			return nil, ErrPathLoop
		}
		seen[prev] = true
		rev = append(rev, prev)
		cur = prev
	}

	path := make([]int, len(rev))
	for idx, v := range rev {
		path[len(rev)-1-idx] = v
	}
	return path, nil
}
