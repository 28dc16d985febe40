// Package refsolver is the reference ilp.Solver backend: an exact
// Branch-and-Bound (BnB) search over bounded integer variables with a soft
// time budget: a deterministic depth-first search with pruning.
//
// Unlike a tour search, a Model's variables have no fixed topology, so
// branching proceeds one variable at a time in index order rather than one
// path position at a time; pruning combines an admissible objective bound
// with constraint interval propagation (see lowerBound and propagate in
// engine.go).
package refsolver
