package deduce

import (
	"fmt"

	"cryptid/hexgrid"
)

// Solve intersects the regions of the given clues and returns the single
// cell satisfying all of them. Clue names must be pairwise distinct. If
// zero or several cells survive the intersection, Solve fails with
// ErrIncompatibleClues.
func (g *Game) Solve(clues ...Clue) (hexgrid.Cell, error) {
	regions, err := g.bind(clues)
	if err != nil {
		return hexgrid.Cell{}, err
	}
	return solveRegions(regions)
}

// bind resolves clues against the shared catalog, rejecting duplicates
// and clues the board never generated.
func (g *Game) bind(clues []Clue) ([]hexgrid.Region, error) {
	if len(clues) == 0 {
		return nil, fmt.Errorf("%w: no clues to solve", ErrInvalidArgument)
	}
	seen := make(map[Clue]bool, len(clues))
	regions := make([]hexgrid.Region, 0, len(clues))
	for _, clue := range clues {
		if seen[clue] {
			return nil, fmt.Errorf("%w: duplicate clue %q", ErrInvalidArgument, clue.Name())
		}
		seen[clue] = true
		region, ok := g.catalog[clue]
		if !ok {
			return nil, fmt.Errorf("%w: clue %q is not in the catalog",
				ErrInvalidArgument, clue.Name())
		}
		regions = append(regions, region)
	}
	return regions, nil
}

func solveRegions(regions []hexgrid.Region) (hexgrid.Cell, error) {
	intersection := regions[0]
	for _, region := range regions[1:] {
		intersection = intersection.Intersect(region)
		if intersection.Len() == 0 {
			break
		}
	}
	if intersection.Len() != 1 {
		return hexgrid.Cell{}, fmt.Errorf("%w: %d cells satisfy every clue",
			ErrIncompatibleClues, intersection.Len())
	}
	for cell := range intersection {
		return cell, nil
	}
	panic("unreachable")
}

// Solutions enumerates every cell that some globally consistent
// assignment of clues to players points at. Players listed in known
// contribute only their known clue; everyone else contributes their full
// candidate set. A combination counts only if it resolves to a unique
// cell and is minimal: dropping any single clue must lose uniqueness.
// Duplicate cells from different combinations are preserved.
func (g *Game) Solutions(known ...int) ([]hexgrid.Cell, error) {
	lists := make([][]Clue, len(g.players))
	for i, p := range g.players {
		lists[i] = p.Candidates()
	}
	for _, i := range known {
		if i < 0 || i >= len(g.players) {
			return nil, fmt.Errorf("%w: no player %d", ErrInvalidArgument, i)
		}
		clue, ok := g.players[i].KnownClue()
		if !ok {
			return nil, fmt.Errorf("%w: player %d has no known clue", ErrInvalidState, i)
		}
		lists[i] = []Clue{clue}
	}

	solutions := []hexgrid.Cell{}
	combo := make([]Clue, len(lists))
	regions := make([]hexgrid.Region, len(lists))

	// Walk the Cartesian product depth first, carrying the running
	// intersection so dead prefixes prune whole subtrees.
	var search func(depth int, current hexgrid.Region)
	search = func(depth int, current hexgrid.Region) {
		if current.Len() == 0 {
			return
		}
		if depth == len(lists) {
			if current.Len() != 1 || !minimal(regions) {
				return
			}
			for cell := range current {
				solutions = append(solutions, cell)
			}
			return
		}
	next:
		for _, clue := range lists[depth] {
			for i := 0; i < depth; i++ {
				if combo[i] == clue {
					continue next
				}
			}
			combo[depth] = clue
			regions[depth] = g.catalog[clue]
			search(depth+1, current.Intersect(regions[depth]))
		}
	}
	search(0, g.cells)

	return solutions, nil
}

// minimal reports whether every clue in the combination is needed:
// removing any single one must leave the rest without a unique solution.
func minimal(regions []hexgrid.Region) bool {
	subset := make([]hexgrid.Region, 0, len(regions)-1)
	for skip := range regions {
		subset = subset[:0]
		for i, region := range regions {
			if i != skip {
				subset = append(subset, region)
			}
		}
		if _, err := solveRegions(subset); err == nil {
			return false
		}
	}
	return true
}
