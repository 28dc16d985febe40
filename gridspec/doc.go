// Package gridspec describes regular-grid facility layouts and the
// symmetry-breaking constraints that anchor a solution to one quadrant
// of the grid.
//
// What & Why:
//
//	A grid descriptor (cols, rows, anchor) is optional metadata attached
//	to a set of points named "(x,y)". When present, the MIP builders in
//	package model add a handful of extra constraints that forbid
//	mirror-image solutions, shrinking the search tree the solver has to
//	explore. Anchor 0 means "used exactly" (sub-grid growth step of the
//	cascade reducer); anchor 1 means "used at least" (top-level solve).
package gridspec
