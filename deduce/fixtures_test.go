package deduce

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptid/board"
	"cryptid/hexgrid"
)

// Two reference setups: an advanced session with all eight structures and
// a basic one without the black pair.
var (
	advancedArrangement = "1r42635"
	advancedStructures  = []hexgrid.Cell{
		hexgrid.At(4, -1), hexgrid.At(3, 7), hexgrid.At(10, 2), hexgrid.At(0, 3),
		hexgrid.At(9, -4), hexgrid.At(5, 1), hexgrid.At(0, 4), hexgrid.At(2, 4),
	}
	advancedClues = []string{"not,mountain", "not,desert", "water,desert", "not,blue"}

	basicArrangement = "31r254r6r"
	basicStructures  = []hexgrid.Cell{
		hexgrid.At(4, 2), hexgrid.At(4, 1), hexgrid.At(9, -3),
		hexgrid.At(7, 5), hexgrid.At(4, -2), hexgrid.At(1, 6),
	}
	basicClues = []string{"shack", "white", "forest,water", "green"}
)

func advancedBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.Assemble(advancedArrangement, advancedStructures)
	require.NoError(t, err)
	return b
}

func basicBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.Assemble(basicArrangement, basicStructures)
	require.NoError(t, err)
	return b
}

func mustClue(t *testing.T, name string) Clue {
	t.Helper()
	clue, err := ParseClue(name)
	require.NoError(t, err)
	return clue
}

func mustClues(t *testing.T, names []string) []Clue {
	t.Helper()
	clues := make([]Clue, len(names))
	for i, name := range names {
		clues[i] = mustClue(t, name)
	}
	return clues
}

// advancedGame builds a four-player game over the advanced board with
// every clue assigned up front.
func advancedGame(t *testing.T, options ...Option) *Game {
	t.Helper()
	options = append([]Option{WithKnownClues(mustClues(t, advancedClues)...)}, options...)
	g, err := New(advancedBoard(t), len(advancedClues), options...)
	require.NoError(t, err)
	return g
}

func basicGame(t *testing.T, options ...Option) *Game {
	t.Helper()
	options = append([]Option{WithKnownClues(mustClues(t, basicClues)...)}, options...)
	g, err := New(basicBoard(t), len(basicClues), options...)
	require.NoError(t, err)
	return g
}
