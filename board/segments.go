package board

import (
	"fmt"

	"cryptid/hexgrid"
)

// The six fixed 6x3 map segments. Uppercase letters are terrains, a
// lowercase letter attaches an animal territory to the preceding tile.
var segments = [6]string{
	"WSSWSSWWDWDDbFFDbFFF",
	"ScSSFcSMFcFMFDMFDMFDD",
	"SScMcSScMFFMFMMFWWWWW",
	"DDDDDDMMDMWFMWFMWcFc",
	"SSDSDDSDWMWWMMWbMMbWb",
	"DbMbMDMWSSWSSWSFWFFF",
}

const (
	segmentRows = 6
	segmentCols = 3
)

var terrainLetters = map[byte]Terrain{
	'F': Forest,
	'D': Desert,
	'W': Water,
	'S': Swamp,
	'M': Mountain,
}

var animalLetters = map[byte]Animal{
	'b': Bear,
	'c': Cougar,
}

// Placements lists the full structure set in canonical order. Structure
// coordinates handed to Assemble are matched against this order, so six
// placements make a basic board and eight an advanced one.
var Placements = [8]Structure{
	{Kind: StandingStone, Color: Green},
	{Kind: Shack, Color: Green},
	{Kind: StandingStone, Color: White},
	{Kind: Shack, Color: White},
	{Kind: StandingStone, Color: Blue},
	{Kind: Shack, Color: Blue},
	{Kind: StandingStone, Color: Black},
	{Kind: Shack, Color: Black},
}

// Segment builds map segment n (1 to 6) as a fresh 6x3 board with all
// marks unknown.
func Segment(n int) (*Board, error) {
	if n < 1 || n > len(segments) {
		return nil, fmt.Errorf("%w: segment number must be 1-%d, got %d",
			ErrBadLayout, len(segments), n)
	}

	var tiles []*Tile
	for i := 0; i < len(segments[n-1]); i++ {
		ch := segments[n-1][i]
		if terrain, ok := terrainLetters[ch]; ok {
			tiles = append(tiles, &Tile{Terrain: terrain})
			continue
		}
		animal, ok := animalLetters[ch]
		if !ok || len(tiles) == 0 {
			return nil, fmt.Errorf("%w: unexpected letter %q in segment %d",
				ErrBadLayout, ch, n)
		}
		tiles[len(tiles)-1].Animal = animal
	}

	return hexgrid.NewFrom(segmentRows, segmentCols, tiles)
}

// Assemble builds a full 12x9 board from an arrangement string and the
// axial coordinates of the structures.
//
// The arrangement matches ([1-6]r?){6}: six segment numbers, each
// optionally followed by r to rotate that segment 180 degrees. Segments
// are stacked pairwise into columns of rows, then the columns are joined
// side by side. Structures are assigned to the given coordinates in
// canonical Placements order.
func Assemble(arrangement string, structures []hexgrid.Cell) (*Board, error) {
	var parts []*Board
	for i := 0; i < len(arrangement); i++ {
		ch := arrangement[i]
		if ch == 'r' {
			if len(parts) == 0 {
				return nil, fmt.Errorf("%w: arrangement starts with a rotation", ErrBadLayout)
			}
			if err := parts[len(parts)-1].Rotate(false); err != nil {
				return nil, err
			}
			continue
		}
		if ch < '1' || ch > '6' {
			return nil, fmt.Errorf("%w: unexpected letter %q in arrangement %q",
				ErrBadLayout, ch, arrangement)
		}
		segment, err := Segment(int(ch - '0'))
		if err != nil {
			return nil, err
		}
		parts = append(parts, segment)
	}
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: arrangement %q names %d segments, want 6",
			ErrBadLayout, arrangement, len(parts))
	}

	// Stack segment pairs into three 12x3 columns, then join the columns.
	for _, i := range []int{0, 2, 4} {
		if err := parts[i].Extend(parts[i+1], 0); err != nil {
			return nil, err
		}
	}
	full := parts[0]
	if err := full.Extend(parts[2], 1); err != nil {
		return nil, err
	}
	if err := full.Extend(parts[4], 1); err != nil {
		return nil, err
	}

	if len(structures) > len(Placements) {
		return nil, fmt.Errorf("%w: at most %d structures, got %d",
			ErrBadLayout, len(Placements), len(structures))
	}
	for i, pos := range structures {
		tile, err := full.At(pos)
		if err != nil {
			return nil, err
		}
		placed := Placements[i]
		tile.Structure = &placed
	}

	return full, nil
}
