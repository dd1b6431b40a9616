// Package algo implements the flavor-agnostic graph algebra every solver
// stands on: all-pairs and single-source shortest paths, minimum spanning
// tree, minimum-cost perfect matching, Eulerian circuit extraction,
// connectivity, and degree-parity classification.
//
// Nothing here imports core: algorithms take plain vertex-id slices and
// small adjacency/cost callbacks rather than a core.Graph directly, the
// same separation matrix and tsp keep from their host graph type. The
// solver package is the only place that translates a core.Graph into
// these shapes and back.
//
// Every algorithm here is deterministic: identical input always produces
// identical output, with documented tie-break rules, because a solve must
// be reproducible bit-for-bit.
package algo

import "math"

// Inf represents an unreachable distance. It is deliberately far below
// math.MaxInt64 so that a handful of additions of real (bounded) edge
// costs against Inf can never wrap around; route.Route.TotalCost performs
// the final, caller-facing overflow check against the true 64-bit range when
// accumulating a route's total cost.
const Inf int64 = math.MaxInt64 / 4
