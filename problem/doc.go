// Package problem binds a core.Graph together with the subset of its links
// that must be traversed and a depot vertex, into the single immutable
// value every solver consumes.
package problem
