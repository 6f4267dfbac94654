package deduce

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"cryptid/hexgrid"
)

// Player tracks what one player's plays reveal about their clue: an owned
// copy of the catalog that only ever shrinks, the positions they marked
// positive and negative, and the single clue once it is pinned down.
type Player struct {
	index     int
	clues     Catalog
	positives hexgrid.Region
	negatives hexgrid.Region
	known     *Clue
}

func newPlayer(index int, catalog Catalog, known *Clue) (*Player, error) {
	p := &Player{
		index:     index,
		clues:     catalog.Copy(),
		positives: make(hexgrid.Region),
		negatives: make(hexgrid.Region),
	}
	if known != nil {
		if _, ok := p.clues[*known]; !ok {
			return nil, fmt.Errorf("%w: known clue %q is not in the catalog",
				ErrInvalidState, known.Name())
		}
		k := *known
		p.known = &k
	}
	p.restrict()
	return p, nil
}

// Index returns the player's position in play order.
func (p *Player) Index() int {
	return p.index
}

// AddClue records one observed marker for the player and re-restricts
// their candidate clues.
func (p *Player) AddClue(pos hexgrid.Cell, positive bool) {
	if positive {
		p.positives.Add(pos)
	} else {
		p.negatives.Add(pos)
	}
	p.restrict()
}

// KnownClue returns the player's clue and whether it is known yet.
func (p *Player) KnownClue() (Clue, bool) {
	if p.known == nil {
		return Clue{}, false
	}
	return *p.known, true
}

// Candidates returns the player's remaining candidate clues sorted by
// name.
func (p *Player) Candidates() []Clue {
	clues := maps.Keys(p.clues)
	sort.Slice(clues, func(i, j int) bool { return clues[i].Name() < clues[j].Name() })
	return clues
}

// CandidateCount returns how many clues remain compatible with the
// player's plays.
func (p *Player) CandidateCount() int {
	return len(p.clues)
}

// Positives returns a copy of the positions the player marked positive.
func (p *Player) Positives() hexgrid.Region {
	return p.positives.Copy()
}

// Negatives returns a copy of the positions the player marked negative.
func (p *Player) Negatives() hexgrid.Region {
	return p.negatives.Copy()
}

// restrict drops every clue whose region touches a negative marker or
// misses a positive one. A clue set narrowed to a single entry fixes the
// known clue; a clue supplied up front is only ever confirmed, never
// replaced.
func (p *Player) restrict() {
	for clue, region := range p.clues {
		if region.Intersects(p.negatives) || !region.ContainsAll(p.positives) {
			delete(p.clues, clue)
		}
	}
	if p.known == nil && len(p.clues) == 1 {
		for clue := range p.clues {
			c := clue
			p.known = &c
		}
	}
}
