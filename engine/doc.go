// Package engine is the top-level driver: given an already-decoded
// instance, it derives sizing and distances, builds a MIP model in the
// requested variant,
// solves it (directly or via the GFred cascade reduction), and emits the
// result. It plays the role tsp.SolveWithMatrix plays for the teacher's
// TSP solvers: one validated entry point dispatching to the right
// combination of stages.
package engine
