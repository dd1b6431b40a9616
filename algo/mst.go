// Minimum spanning tree (Kruskal), grounded on
// prim_kruskal/kruskal.go's disjoint-set union-find approach, re-keyed
// from string vertex ids to int and from *core.Edge to the flavor-neutral
// WeightedLink below (Benavent H1 runs this over a complete graph of
// required-component representatives, not over a core.Graph directly).
package algo

import (
	"errors"
	"sort"
)

// ErrDisconnected indicates the input has no spanning tree.
var ErrDisconnected = errors.New("algo: graph is disconnected")

// WeightedLink is one candidate MST edge, carrying an id used purely for
// the deterministic "lower id first" tie-break on equal weight.
type WeightedLink struct {
	ID       int
	U, V     int
	Weight   int64
}

// Kruskal computes an MST over vertices using candidates as the edge pool.
// Ties on equal weight are broken by ascending ID, mirroring Kruskal's
// stable sort over edges in ascending Edge.ID order.
//
// Complexity: O(E log E + V·α(V)).
func Kruskal(vertices []int, candidates []WeightedLink) ([]WeightedLink, int64, error) {
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []WeightedLink{}, 0, nil
	}

	sorted := append([]WeightedLink(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight < sorted[j].Weight
		}
		return sorted[i].ID < sorted[j].ID
	})

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var mst []WeightedLink
	var total int64
	for _, e := range sorted {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == len(vertices)-1 {
				break
			}
		}
	}
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}
