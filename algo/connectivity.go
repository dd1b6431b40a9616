// Connectivity: undirected BFS component labeling and directed strong
// components (Kosaraju), grounded on the traversal shape of
// algorithms.BFS / dfs.DFS — re-keyed to int vertex ids and stripped of
// visitor-hook machinery (OnVisit/OnEnqueue), since augmentation only
// ever needs "which component is v in", not a traversal trace.
package algo

// ConnectedComponents labels every vertex with its undirected connected
// component, using adj as an undirected adjacency list (each edge must
// appear on both endpoints' lists, as core.Graph.Neighbors guarantees for
// undirected/windy links).
//
// Complexity: O(V+E).
func ConnectedComponents(vertices []int, adj map[int][]int) map[int]int {
	comp := make(map[int]int, len(vertices))
	next := 0
	for _, v := range vertices {
		if _, ok := comp[v]; ok {
			continue
		}
		comp[v] = next
		queue := []int{v}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range adj[u] {
				if _, seen := comp[w]; !seen {
					comp[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}
	return comp
}

// Reachable performs a BFS from source over a directed adjacency list and
// returns the set of reachable vertex ids (source included).
//
// Complexity: O(V+E).
func Reachable(source int, adj map[int][]int) map[int]bool {
	seen := map[int]bool{source: true}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range adj[u] {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	return seen
}

// StrongComponents labels every vertex with its strongly connected
// component id via Kosaraju's algorithm: a forward DFS finish order
// followed by a reverse-graph DFS in reverse finish order.
//
// Complexity: O(V+E).
func StrongComponents(vertices []int, adj map[int][]int) map[int]int {
	visited := make(map[int]bool, len(vertices))
	var order []int

	var visit func(int)
	visit = func(u int) {
		visited[u] = true
		for _, w := range adj[u] {
			if !visited[w] {
				visit(w)
			}
		}
		order = append(order, u)
	}
	for _, v := range vertices {
		if !visited[v] {
			visit(v)
		}
	}

	rev := make(map[int][]int, len(vertices))
	for u, ws := range adj {
		for _, w := range ws {
			rev[w] = append(rev[w], u)
		}
	}

	comp := make(map[int]int, len(vertices))
	next := 0
	var assign func(int, int)
	assign = func(u, id int) {
		comp[u] = id
		for _, w := range rev[u] {
			if _, ok := comp[w]; !ok {
				assign(w, id)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if _, ok := comp[u]; !ok {
			assign(u, next)
			next++
		}
	}
	return comp
}
