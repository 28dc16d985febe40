// Package core holds the arrangement engine's domain model: Points,
// SubjectGroups, and the TotalFlows demand matrix between groups (§3).
//
// Facility, GroupSet, and Flows are mutex-guarded registries, mirroring the
// teacher library's core.Graph: a name-keyed map plus an explicit insertion
// order slice, since §5 requires builder iteration over groups and points
// to be deterministic and reproduce the loader's insertion order — a bare
// Go map does not give that.
package core
