// Package engine drives complete deduction sessions: rounds of plays over
// a game, progress logging, and a final census of remaining solutions.
package engine

import (
	"github.com/rs/zerolog/log"

	"cryptid/deduce"
)

// Engine runs rounds of plays over a single game.
type Engine struct {
	Game     *deduce.Game
	Strategy deduce.Strategy
}

// New returns an engine playing the given strategy for every player.
func New(game *deduce.Game, strategy deduce.Strategy) *Engine {
	return &Engine{Game: game, Strategy: strategy}
}

// PlayRound has every player make one play with the engine's strategy.
func (e *Engine) PlayRound(positive bool) error {
	for _, p := range e.Game.Players() {
		cell, err := e.Game.Play(p.Index(), positive, e.Strategy)
		if err != nil {
			return err
		}
		log.Info().Msgf("player %d marked %s %s, %d candidate clues left",
			p.Index(), cell, markWord(positive), p.CandidateCount())
	}
	return nil
}

// Run plays the given number of negative rounds and returns how many
// solution candidates survive across all players' remaining clue sets.
func (e *Engine) Run(rounds int) (int, error) {
	log.Info().Msgf("running %d rounds with the %q strategy", rounds, e.Strategy)
	for round := 1; round <= rounds; round++ {
		if err := e.PlayRound(false); err != nil {
			return 0, err
		}
	}
	solutions, err := e.Game.Solutions()
	if err != nil {
		return 0, err
	}
	log.Info().Msgf("%d consistent solutions remain after %d rounds",
		len(solutions), rounds)
	return len(solutions), nil
}

func markWord(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
