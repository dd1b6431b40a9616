// Degree parity classification, feeding odd-degree sets to GreedyMatch
// (undirected/windy augmentation) and excess sets to the directed
// transportation step (directed/mixed augmentation).
package algo

// OddDegree returns, in ascending order, every vertex id with a
// non-even entry in degree (an undirected/windy degree map, typically
// produced by core.Vertex.Degree() across the graph being augmented).
func OddDegree(vertices []int, degree map[int]int) []int {
	var odd []int
	for _, v := range vertices {
		if degree[v]%2 != 0 {
			odd = append(odd, v)
		}
	}
	return odd
}

// Excess classifies directed/mixed vertices by (in−out): positive returns
// vertices with more incoming than outgoing arcs (each repeated
// in[v]-out[v] times, since that many added paths must start there to
// balance it); negative is the symmetric (out−in) list, where those paths
// end. Both are returned
// in ascending vertex-id order, ties among repeats grouped together.
func Excess(vertices []int, in, out map[int]int) (positive, negative []int) {
	for _, v := range vertices {
		d := in[v] - out[v]
		for i := 0; i < d; i++ {
			positive = append(positive, v)
		}
		for i := 0; i < -d; i++ {
			negative = append(negative, v)
		}
	}
	return positive, negative
}
