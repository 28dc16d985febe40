// Package config loads and validates the YAML configuration that drives
// the arrangement engine: which model variant to build, the Minkowski
// distance metric, solver time limits, and whether to run the GFred
// cascade reduction instead of a direct solve.
package config
