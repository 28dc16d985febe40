package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/model"
	"github.com/katalvlaran/arrangex/refsolver"
)

// Config specifies every tunable of one arrangement run.
type Config struct {
	// Variant selects the MIP encoding: "compressed" or "per_subject".
	Variant string `yaml:"variant" json:"variant"`

	// Metric is the Minkowski distance family member, e.g. "m1", "m2",
	// "moo", in the format distance.ParseMetric accepts.
	Metric string `yaml:"metric" json:"metric"`

	// Cascade enables the GFred sub-grid growth reduction instead of
	// solving the full grid directly.
	Cascade bool `yaml:"cascade" json:"cascade"`

	// Grid tunes symmetry-breaking constraint emission.
	Grid GridCfg `yaml:"grid" json:"grid"`

	// Solver tunes the reference branch-and-bound backend.
	Solver SolverCfg `yaml:"solver" json:"solver"`

	// OutputPath is where the solved assignment is written.
	OutputPath string `yaml:"outputPath" json:"outputPath"`

	// SVGPath is where the floor-plan preview is written; empty skips it.
	SVGPath string `yaml:"svgPath,omitempty" json:"svgPath,omitempty"`
}

// GridCfg controls grid symmetry-breaking emission (§4.4).
type GridCfg struct {
	// FixUpperHalfAxis opts into the corrected upper-half-preference
	// weighting instead of the reference implementation's documented bug.
	FixUpperHalfAxis bool `yaml:"fixUpperHalfAxis" json:"fixUpperHalfAxis"`
}

// SolverCfg controls the reference branch-and-bound backend.
type SolverCfg struct {
	// TimeLimitSeconds is a soft deadline; zero means unbounded search.
	TimeLimitSeconds float64 `yaml:"timeLimitSeconds" json:"timeLimitSeconds"`

	// Eps is the numerical tolerance used for cost and bound comparisons.
	Eps float64 `yaml:"eps" json:"eps"`
}

// DefaultConfig returns the compressed variant, unbounded search, direct
// (non-cascade) solve, and the original upper-half-axis behavior.
func DefaultConfig() Config {
	return Config{
		Variant:    "compressed",
		Metric:     "m2",
		Cascade:    false,
		Grid:       GridCfg{FixUpperHalfAxis: false},
		Solver:     SolverCfg{TimeLimitSeconds: 0, Eps: 1e-9},
		OutputPath: "arrangement.sol",
	}
}

// LoadConfig reads and validates a YAML configuration file, filling in
// DefaultConfig's zero-value fields first.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading file: %w", err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks all configuration constraints, returning the first
// failure encountered.
func (c *Config) Validate() error {
	switch c.Variant {
	case "compressed", "per_subject":
	default:
		return fmt.Errorf("variant must be %q or %q, got %q", "compressed", "per_subject", c.Variant)
	}
	if c.Metric == "" {
		return fmt.Errorf("metric must not be empty")
	}
	if c.Solver.TimeLimitSeconds < 0 {
		return fmt.Errorf("solver.timeLimitSeconds must be >= 0, got %f", c.Solver.TimeLimitSeconds)
	}
	if c.Solver.Eps <= 0 {
		return fmt.Errorf("solver.eps must be > 0, got %f", c.Solver.Eps)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("outputPath must not be empty")
	}

	return nil
}

// ModelVariant translates the YAML variant name into model.Variant.
func (c *Config) ModelVariant() model.Variant {
	if c.Variant == "per_subject" {
		return model.PerSubject
	}

	return model.Compressed
}

// GridOptions translates GridCfg into gridspec.Options.
func (c *Config) GridOptions() gridspec.Options {
	return gridspec.Options{FixUpperHalfAxis: c.Grid.FixUpperHalfAxis}
}

// SolverOptions translates SolverCfg into refsolver.Options.
func (c *Config) SolverOptions() refsolver.Options {
	return refsolver.Options{
		TimeLimit: time.Duration(c.Solver.TimeLimitSeconds * float64(time.Second)),
		Eps:       c.Solver.Eps,
	}
}

// Marshal serializes the configuration back to YAML, mirroring the
// round-trip convention of the teacher's own config type.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
