// Package reduce implements the GFred cascade reducer (§4.5): repeatedly
// solving a growing sub-grid until the objective stabilizes, instead of
// solving the full grid outright. A feasible solution on a sub-grid is
// always a feasible solution on the full grid (unused locations get zero
// placement), so early stabilization lets the cascade skip the most
// expensive late solves.
package reduce
