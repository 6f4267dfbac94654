// Package render draws boards and play markers as styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cryptid/board"
	"cryptid/hexgrid"
)

var terrainColors = map[board.Terrain]lipgloss.Color{
	board.Water:    lipgloss.Color("#1e7dbb"),
	board.Swamp:    lipgloss.Color("#3a173e"),
	board.Desert:   lipgloss.Color("#fecd0d"),
	board.Mountain: lipgloss.Color("#9a9899"),
	board.Forest:   lipgloss.Color("#199239"),
}

var structureColors = map[board.Color]lipgloss.Color{
	board.Blue:  lipgloss.Color("#3232e8"),
	board.Green: lipgloss.Color("#009a00"),
	board.White: lipgloss.Color("#ffffff"),
	board.Black: lipgloss.Color("#000000"),
}

var animalGlyphs = map[board.Animal]string{
	board.Bear:   "b",
	board.Cougar: "c",
}

var structureGlyphs = map[board.StructureKind]string{
	board.StandingStone: "O",
	board.Shack:         "A",
}

// Board renders the full board, one row of hexes per line. Odd rows are
// indented half a cell to mimic the hexagonal stagger. Terrain shows as
// cell background, structures as a colored glyph, animal territories as a
// lowercase letter.
func Board(b *board.Board) string {
	rows, cols := b.Dimensions()
	var out strings.Builder

	for i := 0; i < rows; i++ {
		if i%2 == 1 {
			out.WriteString("  ")
		}
		for j := 0; j < cols; j++ {
			u, v := hexgrid.ArrayToAxial(i, j)
			tile, err := b.At(hexgrid.At(u, v))
			if err != nil {
				continue
			}
			out.WriteString(renderTile(tile))
		}
		out.WriteString("\n")
	}
	return out.String()
}

// Marks renders one player's markers: + for positive, - for negative, dots
// elsewhere, on the terrain background.
func Marks(b *board.Board, player int) string {
	rows, cols := b.Dimensions()
	var out strings.Builder

	for i := 0; i < rows; i++ {
		if i%2 == 1 {
			out.WriteString("  ")
		}
		for j := 0; j < cols; j++ {
			u, v := hexgrid.ArrayToAxial(i, j)
			tile, err := b.At(hexgrid.At(u, v))
			if err != nil {
				continue
			}
			glyph := " ·"
			switch tile.Marks[player] {
			case board.MarkPositive:
				glyph = " +"
			case board.MarkNegative:
				glyph = " -"
			}
			style := lipgloss.NewStyle().Background(terrainColors[tile.Terrain])
			out.WriteString(style.Render(glyph + "  "))
		}
		out.WriteString("\n")
	}
	return out.String()
}

func renderTile(tile *board.Tile) string {
	style := lipgloss.NewStyle().Background(terrainColors[tile.Terrain])

	animal := " "
	if tile.Animal != board.NoAnimal {
		animal = animalGlyphs[tile.Animal]
	}

	structure := style.Render("  ")
	if tile.Structure != nil {
		structure = style.
			Foreground(structureColors[tile.Structure.Color]).
			Bold(true).
			Render(structureGlyphs[tile.Structure.Kind] + " ")
	}

	return style.Render(" "+animal) + structure
}
