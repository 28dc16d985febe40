// Package model builds the arrangement engine's two MIP encodings (§4.2,
// §4.3) as *ilp.Model values ready for a Solver. Variable names follow the
// authoritative convention of §6.4 exactly (f(i,j)[u,v], n(i)[u], g(i)[u]
// for the compressed model; f(i:p,j:q)[u,v], b(i:p)[u], g(i:p)[u] for the
// per-subject model), so a solution file can be parsed back without a
// separate index-to-name table, and so grid symmetry constraints (§4.4)
// can be added generically against whichever placement variables the
// chosen encoding emits.
package model
