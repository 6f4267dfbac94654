// Package board holds the per-cell content of a game board and assembles
// full boards from the fixed map segments.
package board

import (
	"errors"
	"fmt"

	"cryptid/hexgrid"
)

// ErrBadLayout marks malformed segment or arrangement input.
var ErrBadLayout = errors.New("bad board layout")

// MaxPlayers is the number of mark slots on every tile.
const MaxPlayers = 5

// Terrain is the land type of a tile. Every tile has exactly one.
type Terrain uint8

const (
	Forest Terrain = iota
	Desert
	Water
	Swamp
	Mountain
)

// Terrains lists every terrain in enumeration order.
var Terrains = []Terrain{Forest, Desert, Water, Swamp, Mountain}

func (t Terrain) String() string {
	switch t {
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	case Water:
		return "water"
	case Swamp:
		return "swamp"
	case Mountain:
		return "mountain"
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// Animal is an optional territory marker on a tile.
type Animal uint8

const (
	NoAnimal Animal = iota
	Bear
	Cougar
)

// Animals lists the real animals, excluding NoAnimal.
var Animals = []Animal{Bear, Cougar}

func (a Animal) String() string {
	switch a {
	case NoAnimal:
		return "none"
	case Bear:
		return "bear"
	case Cougar:
		return "cougar"
	}
	return fmt.Sprintf("animal(%d)", uint8(a))
}

// StructureKind is the shape of a placed structure.
type StructureKind uint8

const (
	StandingStone StructureKind = iota
	Shack
)

// StructureKinds lists every structure kind.
var StructureKinds = []StructureKind{StandingStone, Shack}

func (k StructureKind) String() string {
	switch k {
	case StandingStone:
		return "standing stone"
	case Shack:
		return "shack"
	}
	return fmt.Sprintf("structure(%d)", uint8(k))
}

// Color is the paint of a placed structure. Black structures only appear
// in advanced sessions.
type Color uint8

const (
	Green Color = iota
	White
	Blue
	Black
)

// Colors lists every structure color.
var Colors = []Color{Green, White, Blue, Black}

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case White:
		return "white"
	case Blue:
		return "blue"
	case Black:
		return "black"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Structure is a placed structure: a kind plus a color.
type Structure struct {
	Kind  StructureKind
	Color Color
}

func (s Structure) String() string {
	return fmt.Sprintf("%s %s", s.Color, s.Kind)
}

// Mark is one player's state on a tile.
type Mark int8

const (
	MarkUnknown Mark = iota
	MarkPositive
	MarkNegative
)

func (m Mark) String() string {
	switch m {
	case MarkUnknown:
		return "unknown"
	case MarkPositive:
		return "positive"
	case MarkNegative:
		return "negative"
	}
	return fmt.Sprintf("mark(%d)", int8(m))
}

// Tile is the content of a single board cell. Terrain is always set;
// Animal and Structure are optional. Marks holds one slot per player and
// is only ever written by Play.
type Tile struct {
	Terrain   Terrain
	Animal    Animal
	Structure *Structure
	Marks     [MaxPlayers]Mark
}

// Play records a single player's marker on the tile.
func (t *Tile) Play(player int, positive bool) {
	if positive {
		t.Marks[player] = MarkPositive
	} else {
		t.Marks[player] = MarkNegative
	}
}

// Board is a grid of tiles.
type Board = hexgrid.Grid[*Tile]
