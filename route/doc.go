// Package route holds the output of a solve: an ordered sequence of link
// traversals forming a closed walk from the depot, plus derived cost and
// coverage statistics and a human-readable report renderer.
package route
