// Package matrix provides the Dense distance-matrix primitive used by the
// distance provider and the MIP builders.
//
// What & Why:
//
//	The Matrix interface abstracts a two-dimensional array of float64 values
//	so the distance provider, the model builders, and tests can share one
//	bounds-checked contract without depending on a concrete storage layout.
//	Dense is the only implementation the engine needs: a flat row-major
//	buffer sized once per arrangement call and never resized.
package matrix
