// Package distance computes pairwise Minkowski distances between facility
// points under a configurable metric order (§6.5): m1 through m50 (L1
// through L50), or moo (L∞). Distance is not required to be symmetric in
// general, but every Minkowski metric implemented here is.
package distance
