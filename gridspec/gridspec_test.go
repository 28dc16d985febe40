package gridspec_test

import (
	"testing"

	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptorString(t *testing.T) {
	t.Run("S1 1x1 grid", func(t *testing.T) {
		g, err := gridspec.ParseDescriptorString("g1:1x1:1x2")
		require.NoError(t, err)
		require.Equal(t, gridspec.Descriptor{Cols: 1, Rows: 1, Anchor: gridspec.AnchorAtLeast}, g.Descriptor)
		require.Len(t, g.Points, 1)
		require.Equal(t, "(0,0)", g.Points[0].Name)
		require.Equal(t, 2, g.Points[0].Area)
	})

	t.Run("S2 1x2 grid", func(t *testing.T) {
		g, err := gridspec.ParseDescriptorString("g1:1x2:1x1")
		require.NoError(t, err)
		require.Len(t, g.Points, 2)
		require.Equal(t, "(0,0)", g.Points[0].Name)
		require.Equal(t, "(1,0)", g.Points[1].Name)
	})

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := gridspec.ParseDescriptorString("bogus")
		require.ErrorIs(t, err, gridspec.ErrInvalidDescriptor)
	})

	t.Run("rejects non-positive step", func(t *testing.T) {
		_, err := gridspec.ParseDescriptorString("g1:0x1:1x1")
		require.ErrorIs(t, err, gridspec.ErrInvalidDescriptor)
	})
}

func TestRows(t *testing.T) {
	t.Run("anchor 0 forces exact first row/column", func(t *testing.T) {
		rows, err := gridspec.Rows(gridspec.Descriptor{Cols: 2, Rows: 2, Anchor: gridspec.AnchorExact}, gridspec.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, rows, 2) // no half-plane rows at anchor 0

		firstRow := rows[0]
		require.Equal(t, ilp.EQ, firstRow.Sense)
		require.Equal(t, 0.0, firstRow.RHS)
		require.Equal(t, 1.0, firstRow.Weights["(0,0)"])
		require.Equal(t, 1.0, firstRow.Weights["(1,0)"])
	})

	t.Run("anchor 1 adds half-plane rows", func(t *testing.T) {
		rows, err := gridspec.Rows(gridspec.Descriptor{Cols: 2, Rows: 2, Anchor: gridspec.AnchorAtLeast}, gridspec.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, ilp.GE, rows[0].Sense)
		require.Equal(t, 1.0, rows[0].RHS)
	})

	t.Run("upper half preserves the x-axis bug by default", func(t *testing.T) {
		desc := gridspec.Descriptor{Cols: 4, Rows: 4, Anchor: gridspec.AnchorAtLeast}
		rows, err := gridspec.Rows(desc, gridspec.DefaultOptions())
		require.NoError(t, err)
		upper := rows[len(rows)-1]
		// ceil(rows/2) = 2; x=0..2 -> weight +1 regardless of y, x=3 -> weight -1.
		require.Equal(t, 1.0, upper.Weights["(0,3)"])
		require.Equal(t, -1.0, upper.Weights["(3,0)"])
	})

	t.Run("upper half uses the y-axis when fixed", func(t *testing.T) {
		desc := gridspec.Descriptor{Cols: 2, Rows: 4, Anchor: gridspec.AnchorAtLeast}
		rows, err := gridspec.Rows(desc, gridspec.Options{FixUpperHalfAxis: true})
		require.NoError(t, err)
		upper := rows[len(rows)-1]
		// ceil(rows/2) = 2; y=0..2 -> +1, y=3 -> -1, regardless of x.
		require.Equal(t, 1.0, upper.Weights["(1,0)"])
		require.Equal(t, -1.0, upper.Weights["(1,3)"])
	})

	t.Run("rejects invalid descriptor", func(t *testing.T) {
		_, err := gridspec.Rows(gridspec.Descriptor{Cols: 0, Rows: 1}, gridspec.DefaultOptions())
		require.ErrorIs(t, err, gridspec.ErrInvalidDescriptor)
	})
}
