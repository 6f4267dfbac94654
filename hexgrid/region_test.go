package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionSetAlgebra(t *testing.T) {
	a := NewRegion(At(0, 0), At(1, 0), At(2, 0))
	b := NewRegion(At(1, 0), At(3, 0))

	t.Run("union", func(t *testing.T) {
		got := a.Union(b)
		require.Equal(t, 4, got.Len())
		require.True(t, got.ContainsAll(a))
		require.True(t, got.ContainsAll(b))
	})

	t.Run("intersection", func(t *testing.T) {
		got := a.Intersect(b)
		require.True(t, got.Equal(NewRegion(At(1, 0))))
		require.True(t, got.Equal(b.Intersect(a)), "Intersection should commute")
	})

	t.Run("subtraction", func(t *testing.T) {
		got := a.Subtract(b)
		require.True(t, got.Equal(NewRegion(At(0, 0), At(2, 0))))
	})

	t.Run("operations leave their operands alone", func(t *testing.T) {
		a.Union(b)
		a.Intersect(b)
		a.Subtract(b)
		require.Equal(t, 3, a.Len())
		require.Equal(t, 2, b.Len())
	})

	t.Run("membership queries", func(t *testing.T) {
		require.True(t, a.Intersects(b))
		require.False(t, a.Intersects(NewRegion(At(9, 9))))
		require.True(t, a.ContainsAll(NewRegion(At(0, 0), At(2, 0))))
		require.False(t, a.ContainsAll(b))
		require.True(t, NewRegion().Equal(NewRegion()))
	})
}

func TestRegionCells(t *testing.T) {
	// Axial (1, 2) sits on array row 1; (0, 3) and (2, 2) sit on rows 0
	// and 2, so row-major order interleaves the axial coordinates.
	region := NewRegion(At(1, 2), At(0, 3), At(2, 2))
	require.Equal(t, []Cell{At(0, 3), At(1, 2), At(2, 2)}, region.Cells())
}

func TestRegionCopy(t *testing.T) {
	original := NewRegion(At(0, 0))
	clone := original.Copy()
	clone.Add(At(1, 1))
	require.Equal(t, 1, original.Len())
	require.Equal(t, 2, clone.Len())
}
