package deduce

import (
	"sort"

	"golang.org/x/exp/maps"

	"cryptid/board"
	"cryptid/hexgrid"
)

// combinedAnimal is the feature name of the clue spanning every animal
// territory at once.
const combinedAnimal = "animal"

// clueRadius fixes the expansion distance for every single-feature clue.
// Terrain-pair clues are raw unions and never expand.
var clueRadius = map[string]int{
	"forest":         1,
	"desert":         1,
	"water":          1,
	"swamp":          1,
	"mountain":       1,
	"bear":           2,
	"cougar":         2,
	combinedAnimal:   1,
	"standing stone": 2,
	"shack":          2,
	"green":          3,
	"white":          3,
	"blue":           3,
	"black":          3,
}

// Catalog maps every candidate clue to its satisfying region. The regions
// are treated as immutable once built; copies share them.
type Catalog map[Clue]hexgrid.Region

// Copy returns an independently shrinkable copy of the catalog.
func (c Catalog) Copy() Catalog {
	out := make(Catalog, len(c))
	for clue, region := range c {
		out[clue] = region
	}
	return out
}

// Clues returns the catalog keys sorted by name.
func (c Catalog) Clues() []Clue {
	clues := maps.Keys(c)
	sort.Slice(clues, func(i, j int) bool { return clues[i].Name() < clues[j].Name() })
	return clues
}

// BuildCatalog derives every candidate clue and its satisfying region
// from the board contents. The result is deterministic: the same board
// always yields the same key set and regions.
func BuildCatalog(b *board.Board) Catalog {
	cells := make(hexgrid.Region)
	terrains := make(map[board.Terrain]hexgrid.Region)
	animals := make(map[board.Animal]hexgrid.Region)
	kinds := make(map[board.StructureKind]hexgrid.Region)
	colors := make(map[board.Color]hexgrid.Region)
	for _, t := range board.Terrains {
		terrains[t] = make(hexgrid.Region)
	}
	for _, a := range board.Animals {
		animals[a] = make(hexgrid.Region)
	}
	for _, k := range board.StructureKinds {
		kinds[k] = make(hexgrid.Region)
	}
	for _, c := range board.Colors {
		colors[c] = make(hexgrid.Region)
	}

	b.Each(func(cell hexgrid.Cell, tile *board.Tile) bool {
		cells.Add(cell)
		terrains[tile.Terrain].Add(cell)
		if tile.Animal != board.NoAnimal {
			animals[tile.Animal].Add(cell)
		}
		if tile.Structure != nil {
			kinds[tile.Structure.Kind].Add(cell)
			colors[tile.Structure.Color].Add(cell)
		}
		return true
	})

	catalog := make(Catalog)
	near := func(feature string, region hexgrid.Region) {
		if region.Len() == 0 {
			return
		}
		catalog[NewClue(feature)] = hexgrid.Expand(region, clueRadius[feature])
	}

	for _, t := range board.Terrains {
		near(t.String(), terrains[t])
	}
	for _, a := range board.Animals {
		near(a.String(), animals[a])
	}
	for _, k := range board.StructureKinds {
		near(k.String(), kinds[k])
	}
	for _, c := range board.Colors {
		near(c.String(), colors[c])
	}

	// One clue spanning every animal territory.
	territory := make(hexgrid.Region)
	for _, a := range board.Animals {
		territory = territory.Union(animals[a])
	}
	near(combinedAnimal, territory)

	// One clue per unordered pair of terrains, with no expansion.
	for i, t1 := range board.Terrains {
		for _, t2 := range board.Terrains[i+1:] {
			catalog[NewClue(t1.String(), t2.String())] = terrains[t1].Union(terrains[t2])
		}
	}

	// Expansion may overshoot the board edges.
	for clue, region := range catalog {
		catalog[clue] = region.Intersect(cells)
	}

	// A black structure signals an advanced session: every clue gains a
	// negated counterpart covering the rest of the board.
	if colors[board.Black].Len() > 0 {
		for _, clue := range catalog.Clues() {
			catalog[clue.Negation()] = cells.Subtract(catalog[clue])
		}
	}

	return catalog
}
