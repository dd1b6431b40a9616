// Package oarlib reads and writes the OARLIB text format: a line-oriented
// description of an arc-routing instance (graph kind, vertex/link counts,
// depot, and the links and optional vertex coordinates themselves).
//
// Parse builds a *core.Graph plus its required-link set; Serialize renders
// a graph back to the same textual shape, so that Serialize(Parse(text))
// round-trips to an equivalent instance (see the round-trip test).
package oarlib
