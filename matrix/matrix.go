// Package matrix defines the core Matrix interface for linear algebra operations.
//
// What & Why:
//
//	The Matrix interface abstracts a two-dimensional array of float64 values
//	so the distance provider, the model builders, and the shape validators
//	can share one bounds-checked contract without depending on a concrete
//	storage layout. Dense is the only implementation the engine needs.
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error
}
