// Package sizing derives per-group subject counts (N_i) and net production
// (G_i) from a GroupSet and its TotalFlows demand matrix (§3, §4.1).
package sizing
