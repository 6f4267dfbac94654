package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptid/hexgrid"
)

// Fixture layouts used across the package tests.
var (
	advancedArrangement = "1r42635"
	advancedStructures  = []hexgrid.Cell{
		hexgrid.At(4, -1), hexgrid.At(3, 7), hexgrid.At(10, 2), hexgrid.At(0, 3),
		hexgrid.At(9, -4), hexgrid.At(5, 1), hexgrid.At(0, 4), hexgrid.At(2, 4),
	}

	basicArrangement = "31r254r6r"
	basicStructures  = []hexgrid.Cell{
		hexgrid.At(4, 2), hexgrid.At(4, 1), hexgrid.At(9, -3),
		hexgrid.At(7, 5), hexgrid.At(4, -2), hexgrid.At(1, 6),
	}
)

func TestSegment(t *testing.T) {
	t.Run("segments are six by three with parsed terrain", func(t *testing.T) {
		segment, err := Segment(1)
		require.NoError(t, err)

		rows, cols := segment.Dimensions()
		require.Equal(t, 6, rows)
		require.Equal(t, 3, cols)

		// Segment 1 starts "WSS": water then two swamps.
		tile, err := segment.At(hexgrid.At(0, 0))
		require.NoError(t, err)
		require.Equal(t, Water, tile.Terrain)
		require.Equal(t, NoAnimal, tile.Animal)

		tile, err = segment.At(hexgrid.At(0, 1))
		require.NoError(t, err)
		require.Equal(t, Swamp, tile.Terrain)
	})

	t.Run("lowercase letters attach animals to the preceding tile", func(t *testing.T) {
		// Segment 1 is "WSSWSSWWDWDDbFFDbFFF": the 12th and 15th tiles
		// carry bears, at array positions (3, 2) and (4, 2).
		segment, err := Segment(1)
		require.NoError(t, err)

		u, v := hexgrid.ArrayToAxial(3, 2)
		tile, err := segment.At(hexgrid.At(u, v))
		require.NoError(t, err)
		require.Equal(t, Desert, tile.Terrain)
		require.Equal(t, Bear, tile.Animal)

		u, v = hexgrid.ArrayToAxial(4, 2)
		tile, err = segment.At(hexgrid.At(u, v))
		require.NoError(t, err)
		require.Equal(t, Desert, tile.Terrain)
		require.Equal(t, Bear, tile.Animal)
	})

	t.Run("segment numbers outside one to six are rejected", func(t *testing.T) {
		_, err := Segment(0)
		require.ErrorIs(t, err, ErrBadLayout)
		_, err = Segment(7)
		require.ErrorIs(t, err, ErrBadLayout)
	})

	t.Run("each call builds fresh tiles", func(t *testing.T) {
		// Segment 1 opens with a plain water tile, so the origin starts
		// without an animal.
		first, err := Segment(1)
		require.NoError(t, err)

		tile, err := first.At(hexgrid.At(0, 0))
		require.NoError(t, err)
		require.Equal(t, NoAnimal, tile.Animal)
		tile.Animal = Cougar

		second, err := Segment(1)
		require.NoError(t, err)
		tile, err = second.At(hexgrid.At(0, 0))
		require.NoError(t, err)
		require.Equal(t, NoAnimal, tile.Animal, "Segments should not share tiles")
	})
}

func TestAssemble(t *testing.T) {
	t.Run("assembles six segments into a twelve by nine board", func(t *testing.T) {
		b, err := Assemble(advancedArrangement, advancedStructures)
		require.NoError(t, err)

		rows, cols := b.Dimensions()
		require.Equal(t, 12, rows)
		require.Equal(t, 9, cols)

		count := 0
		b.Each(func(_ hexgrid.Cell, tile *Tile) bool {
			require.NotNil(t, tile)
			count++
			return true
		})
		require.Equal(t, 108, count)
	})

	t.Run("structures are placed in canonical order", func(t *testing.T) {
		b, err := Assemble(advancedArrangement, advancedStructures)
		require.NoError(t, err)

		for i, pos := range advancedStructures {
			tile, err := b.At(pos)
			require.NoError(t, err)
			require.NotNil(t, tile.Structure, "Structure %d should be placed", i)
			require.Equal(t, Placements[i], *tile.Structure)
		}

		// Eight placements include both black structures: advanced mode.
		tile, err := b.At(advancedStructures[6])
		require.NoError(t, err)
		require.Equal(t, Black, tile.Structure.Color)
		require.Equal(t, StandingStone, tile.Structure.Kind)
	})

	t.Run("six structures leave the black pair off the board", func(t *testing.T) {
		b, err := Assemble(basicArrangement, basicStructures)
		require.NoError(t, err)

		black := 0
		b.Each(func(_ hexgrid.Cell, tile *Tile) bool {
			if tile.Structure != nil && tile.Structure.Color == Black {
				black++
			}
			return true
		})
		require.Zero(t, black)
	})

	t.Run("all marks start unknown", func(t *testing.T) {
		b, err := Assemble(basicArrangement, basicStructures)
		require.NoError(t, err)

		b.Each(func(_ hexgrid.Cell, tile *Tile) bool {
			for player := 0; player < MaxPlayers; player++ {
				require.Equal(t, MarkUnknown, tile.Marks[player])
			}
			return true
		})
	})

	t.Run("malformed arrangements are rejected", func(t *testing.T) {
		for _, arrangement := range []string{"r123456", "12345", "1234567", "12345x"} {
			_, err := Assemble(arrangement, nil)
			require.ErrorIs(t, err, ErrBadLayout, "Arrangement %q should fail", arrangement)
		}
	})

	t.Run("too many structures are rejected", func(t *testing.T) {
		structures := make([]hexgrid.Cell, 9)
		_, err := Assemble(advancedArrangement, structures)
		require.ErrorIs(t, err, ErrBadLayout)
	})
}

func TestTilePlay(t *testing.T) {
	tile := &Tile{Terrain: Forest}
	tile.Play(2, true)
	tile.Play(4, false)

	require.Equal(t, MarkUnknown, tile.Marks[0])
	require.Equal(t, MarkPositive, tile.Marks[2])
	require.Equal(t, MarkNegative, tile.Marks[4])
}
