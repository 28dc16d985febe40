package core

// Point is a candidate facility location (§3). Immutable after construction.
type Point struct {
	Name string
	X, Y float64
	Area int
}

// SubjectGroup is a class of identical subjects (§3). Immutable after
// construction.
type SubjectGroup struct {
	Name           string
	InputCapacity  int
	OutputCapacity int
	Area           int
}
