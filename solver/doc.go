// Package solver implements the arc-routing procedures: undirected Chinese
// Postman (greedy odd-vertex matching), exact directed Chinese Postman,
// two mixed-graph Chinese Postman heuristics
// (Frederickson, Yaoyuenyong), a windy Chinese Postman heuristic (Win),
// and a windy Rural Postman heuristic (Benavent H1). Every solver takes a
// problem.Problem and returns a route.Route.
//
// Solvers never mutate the caller's graph: each clones it internally
// before augmenting with deadhead copies, and the Route they return refers
// back to the original link ids. A solve is a pure, single-threaded
// function of (graph, required set, depot, solver choice); the only
// concession to long-running work is cooperative cancellation via
// CancelToken, checked between augmentation phases.
package solver
