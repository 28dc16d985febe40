// Package ilp defines the minimal integer-linear-program interface the
// arrangement engine requires of its solver (§6.3): a model builder that
// accumulates variables and sparse linear constraints, and a Solver that
// consumes a built Model and reports variable values or infeasibility.
//
// The core never uses quadratic terms, and every variable the builders in
// package model emit is an integer with finite bounds (flow and placement
// variables are non-negative; net-production variables g may be negative),
// so this interface stays deliberately small. Production deployments plug
// a commercial or open-source MIP solver in behind Solver; package
// refsolver ships a reference branch-and-bound implementation suitable for
// development-scale instances and this module's own tests.
package ilp
