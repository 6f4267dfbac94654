package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptid/deduce"
	"cryptid/hexgrid"
)

func loadFixture(t *testing.T) *Scenario {
	t.Helper()
	scenario, err := LoadScenario("testdata/advanced.yaml")
	require.NoError(t, err)
	return scenario
}

func TestScenarioParsing(t *testing.T) {
	t.Run("loads every field from the file", func(t *testing.T) {
		scenario := loadFixture(t)
		require.Equal(t, "1r42635", scenario.Arrangement)
		require.Len(t, scenario.Structures, 8)
		require.Equal(t, [2]int{4, -1}, scenario.Structures[0])
		require.Equal(t, 4, scenario.Players)
		require.Equal(t, []string{"not,mountain", "not,desert", "water,desert", "not,blue"},
			scenario.KnownClues)
		require.Equal(t, "clue-weighted", scenario.Strategy)
		require.EqualValues(t, 7, scenario.Seed)
		require.Equal(t, 6, scenario.Rounds)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ParseScenario([]byte("arrangement: [unclosed"))
		require.Error(t, err)
	})

	t.Run("rejects missing files", func(t *testing.T) {
		_, err := LoadScenario("testdata/absent.yaml")
		require.Error(t, err)
	})
}

func TestScenarioBuild(t *testing.T) {
	scenario := loadFixture(t)

	t.Run("board has the full dimensions", func(t *testing.T) {
		b, err := scenario.Board()
		require.NoError(t, err)
		rows, cols := b.Dimensions()
		require.Equal(t, 12, rows)
		require.Equal(t, 9, cols)
	})

	t.Run("game wires the known clues through", func(t *testing.T) {
		game, err := scenario.Game()
		require.NoError(t, err)
		require.Len(t, game.Players(), 4)

		clue, ok := game.Players()[0].KnownClue()
		require.True(t, ok)
		require.Equal(t, "not,mountain", clue.Name())
	})

	t.Run("engine picks up the scenario strategy", func(t *testing.T) {
		eng, err := scenario.Engine()
		require.NoError(t, err)
		require.Equal(t, deduce.StrategyClueWeighted, eng.Strategy)
	})

	t.Run("a missing strategy falls back to random", func(t *testing.T) {
		scenario, err := ParseScenario([]byte("players: 3"))
		require.NoError(t, err)
		require.Empty(t, scenario.Strategy)

		blank := loadFixture(t)
		blank.Strategy = ""
		eng, err := blank.Engine()
		require.NoError(t, err)
		require.Equal(t, deduce.StrategyRandom, eng.Strategy)
	})
}

func TestEngineRounds(t *testing.T) {
	t.Run("one round gives every player one marker", func(t *testing.T) {
		eng, err := loadFixture(t).Engine()
		require.NoError(t, err)

		require.NoError(t, eng.PlayRound(false))
		for _, p := range eng.Game.Players() {
			require.Equal(t, 1, p.Negatives().Len())
			require.Zero(t, p.Positives().Len())
		}
	})

	t.Run("a run counts the surviving solutions", func(t *testing.T) {
		eng, err := loadFixture(t).Engine()
		require.NoError(t, err)

		remaining, err := eng.Run(4)
		require.NoError(t, err)
		require.Positive(t, remaining, "The true combination must always survive")

		for _, p := range eng.Game.Players() {
			require.Equal(t, 4, p.Negatives().Len())
		}
	})

	t.Run("solutions always include the real cell", func(t *testing.T) {
		eng, err := loadFixture(t).Engine()
		require.NoError(t, err)
		for round := 0; round < 5; round++ {
			require.NoError(t, eng.PlayRound(false))
		}

		solutions, err := eng.Game.Solutions()
		require.NoError(t, err)
		require.Contains(t, solutions, hexgrid.At(9, 4))
	})
}
