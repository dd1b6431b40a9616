// Single-source shortest paths (Dijkstra, lazy decrease-key), grounded on
// dijkstra/dijkstra.go's heap-based runner — re-keyed from string vertex
// ids to int, and trimmed to the options the core actually needs
// (no MaxDistance/InfEdgeThreshold: those are a dijkstra-package product
// feature this module has no use for).
package algo

import (
	"container/heap"
	"errors"
)

// ErrNegativeCost mirrors dijkstra.ErrNegativeWeight: Dijkstra is undefined
// over negative edge costs, and every graph flavor here guarantees
// non-negative costs by construction (core.ErrNegativeCost at AddLink
// time), so this only ever fires on a malformed caller-built adjacency.
var ErrNegativeCost = errors.New("algo: negative edge cost")

// WeightedEdge is one directed traversal option out of a vertex.
type WeightedEdge struct {
	To   int
	Cost int64
}

// SSSP holds single-source shortest distances and predecessors from one
// source vertex.
type SSSP struct {
	Dist map[int]int64
	Pred map[int]int
}

// Dijkstra computes shortest distances from source to every vertex in
// vertices using adj as the outgoing-edge lookup. Unreachable vertices get
// Dist == Inf and Pred == -1.
//
// Complexity: O((V+E) log V).
func Dijkstra(vertices []int, adj map[int][]WeightedEdge, source int) (SSSP, error) {
	dist := make(map[int]int64, len(vertices))
	pred := make(map[int]int, len(vertices))
	visited := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		dist[v] = Inf
		pred[v] = -1
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range adj[u] {
			if e.Cost < 0 {
				return SSSP{}, ErrNegativeCost
			}
			nd := d + e.Cost
			if nd < dist[e.To] {
				dist[e.To] = nd
				pred[e.To] = u
				heap.Push(&pq, &nodeItem{id: e.To, dist: nd})
			}
		}
	}

	return SSSP{Dist: dist, Pred: pred}, nil
}

type nodeItem struct {
	id   int
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
