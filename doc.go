// Package arcroute is the programmatic entry point for solving arc-routing
// instances: parse an OARLIB-format instance, dispatch to the requested
// solver, and render the resulting route as a text report.
//
// Subpackages:
//
//	core/    — the four graph flavors (undirected, directed, mixed, windy).
//	algo/    — shortest paths, matching, MST, Eulerian extraction, connectivity.
//	problem/ — binds a graph, required-link set, and depot into a Problem.
//	solver/  — the six exact/heuristic procedures and their dispatcher.
//	route/   — the ordered walk a solve produces, its validation and report.
//	oarlib/  — the OARLIB text format parser and serializer.
//
// Solve is the single call an embedding shell (CLI, browser, node) needs:
// it owns the parse-dispatch-report pipeline so none of those concerns
// leak into core/algo/solver, which stay pure and I/O-free.
package arcroute
