// Package core defines the graph model shared by every arc-routing solver:
// Vertex, Link, and a Graph that can play any of four roles — undirected,
// directed, mixed, or windy — behind one contract.
//
// Graphs are built once (by a parser or a test fixture) and never mutated
// by a solver; solvers call Clone and work on the copy. Vertex and Link ids
// are small dense integers so that an augmented copy can be represented as
// flat arrays indexed by id, with no pointer chasing and no cyclic
// ownership between vertices and links.
//
// Kind distinguishes the four flavors:
//
//	Undirected — Link.Cost is symmetric, Link.Directed is always false.
//	Directed   — every Link is an arc, Link.Directed is always true.
//	Mixed      — Link.Directed is set per-link; absent input defaults to false.
//	Windy      — every Link carries both Cost (u→v) and ReverseCost (v→u).
//
// Algorithms that do not care about flavor (shortest paths, connectivity)
// only ever call Neighbors, CostOf and Kind; flavor-specific solver code
// switches on Kind directly.
package core
