// Package bundle decodes the three JSON input bundles of §6.1 — FASF
// (facility), FASG (groups), and FAST (total flows) — from their common
// envelope into the core package's domain types.
package bundle
