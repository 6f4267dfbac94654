package deduce

import (
	"fmt"

	"cryptid/board"
	"cryptid/hexgrid"
)

// Strategy selects how Play picks among legal cells.
type Strategy string

const (
	// StrategyRandom picks a legal cell uniformly at random.
	StrategyRandom Strategy = "random"
	// StrategyClueWeighted picks the legal cell whose mark rules out the
	// most of the player's remaining candidate clues.
	StrategyClueWeighted Strategy = "clue-weighted"
)

// Play marks a cell for the given player. The player must already know
// their clue: positive marks go inside its region, negative marks
// outside. Cells the player has already marked are excluded. The board
// and player state change only after every check has passed.
func (g *Game) Play(player int, positive bool, strategy Strategy) (hexgrid.Cell, error) {
	if player < 0 || player >= len(g.players) {
		return hexgrid.Cell{}, fmt.Errorf("%w: no player %d", ErrInvalidArgument, player)
	}
	if strategy != StrategyRandom && strategy != StrategyClueWeighted {
		return hexgrid.Cell{}, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, strategy)
	}

	p := g.players[player]
	clue, ok := p.KnownClue()
	if !ok {
		return hexgrid.Cell{}, fmt.Errorf("%w: player %d cannot play yet", ErrUnknownClue, player)
	}
	region, ok := g.catalog[clue]
	if !ok {
		return hexgrid.Cell{}, fmt.Errorf("%w: clue %q is not in the catalog",
			ErrInvalidState, clue.Name())
	}

	candidate := region
	if !positive {
		candidate = g.cells.Subtract(region)
	}

	legal := make([]hexgrid.Cell, 0, candidate.Len())
	for _, cell := range candidate.Cells() {
		tile, err := g.board.At(cell)
		if err != nil {
			return hexgrid.Cell{}, err
		}
		if tile.Marks[player] != board.MarkUnknown {
			continue
		}
		if p.positives.Contains(cell) || p.negatives.Contains(cell) {
			continue
		}
		legal = append(legal, cell)
	}
	if len(legal) == 0 {
		return hexgrid.Cell{}, fmt.Errorf("%w: player %d has nowhere to mark %v",
			ErrNoLegalPlay, player, positive)
	}

	var chosen hexgrid.Cell
	switch strategy {
	case StrategyRandom:
		chosen = legal[g.rng.Intn(len(legal))]
	case StrategyClueWeighted:
		chosen = pickWeighted(p, legal, positive)
	}

	tile, err := g.board.At(chosen)
	if err != nil {
		return hexgrid.Cell{}, err
	}
	tile.Play(player, positive)
	p.AddClue(chosen, positive)
	return chosen, nil
}

// pickWeighted scores each legal cell by the number of candidate clues
// the mark would be inconsistent with, i.e. how many the play would
// eliminate. Ties go to the earliest cell in enumeration order.
func pickWeighted(p *Player, legal []hexgrid.Cell, positive bool) hexgrid.Cell {
	best := legal[0]
	bestScore := -1
	for _, cell := range legal {
		score := 0
		for _, region := range p.clues {
			if region.Contains(cell) != positive {
				score++
			}
		}
		if score > bestScore {
			best = cell
			bestScore = score
		}
	}
	return best
}
