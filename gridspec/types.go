package gridspec

// Anchor selects the usage policy for a grid's first row and first column.
type Anchor int

const (
	// AnchorExact forces the first row/column to be used exactly as specified
	// by the enclosing constraint (sense E). Used by the cascade reducer when
	// growing sub-grids: the newly-added row/column boundary must be used
	// exactly, so reductions only ever grow outward.
	AnchorExact Anchor = 0
	// AnchorAtLeast forces the first row/column to be used at least once
	// (sense G) and additionally enables the half-plane preference
	// constraints. Used at the top-level solve.
	AnchorAtLeast Anchor = 1
)

// Descriptor is the (cols, rows, anchor) triple of §3: present only when the
// facility's points were synthesized (or are being treated) as a regular
// grid named "(x,y)" for 0 ≤ x < Cols, 0 ≤ y < Rows.
type Descriptor struct {
	Cols   int
	Rows   int
	Anchor Anchor
}

// Options tunes how symmetry constraints are emitted for a Descriptor.
type Options struct {
	// FixUpperHalfAxis switches the upper-half-preference constraint (§4.4)
	// from the reference implementation's documented bug — weighting by the
	// x-index against Rows — to the corrected y-index weighting. Default
	// false preserves the original behavior byte-for-byte.
	FixUpperHalfAxis bool
}

// DefaultOptions returns the byte-for-byte-compatible default: the
// upper-half bug is preserved, not fixed.
func DefaultOptions() Options {
	return Options{FixUpperHalfAxis: false}
}
