// Package hexgrid provides coordinates, distances and region algebra for
// rectangular grids of hexagons.
package hexgrid

import (
	"fmt"
	"math"
)

// Cell is a single hexagon position in cubic coordinates.
// The invariant U+V+W = 0 always holds for cells built through At.
type Cell struct {
	U, V, W int
}

// At completes cubic coordinates from the first two axial components.
func At(u, v int) Cell {
	return Cell{U: u, V: v, W: -u - v}
}

// Axial returns the two axial components of the cell.
func (c Cell) Axial() (u, v int) {
	return c.U, c.V
}

// Array returns the array indices of the cell.
func (c Cell) Array() (row, col int) {
	return AxialToArray(c.U, c.V)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.U, c.V, c.W)
}

// ArrayToAxial turns array indices into axial coordinates.
func ArrayToAxial(row, col int) (u, v int) {
	return row, col - (row >> 1)
}

// AxialToArray turns axial coordinates into array indices.
func AxialToArray(u, v int) (row, col int) {
	return u, v + (u >> 1)
}

// Metric selects how Distance measures the gap between two cells.
type Metric string

const (
	// MetricGrid counts steps along grid lines.
	MetricGrid Metric = "grid"
	// MetricDirect measures straight-line euclidean distance.
	MetricDirect Metric = "direct"
)

// Distance returns the distance between two cells under the given metric.
// The grid metric yields whole numbers; the direct metric accounts for the
// 120 degree angle between the hexagonal axes.
func Distance(a, b Cell, metric Metric) (float64, error) {
	switch metric {
	case MetricGrid:
		return float64(GridDistance(a, b)), nil
	case MetricDirect:
		return DirectDistance(a, b), nil
	default:
		return 0, fmt.Errorf("%w: metric must be %q or %q, got %q",
			ErrInvalidArgument, MetricGrid, MetricDirect, metric)
	}
}

// GridDistance returns the number of steps between two cells along grid
// lines: the maximum absolute componentwise cubic difference.
func GridDistance(a, b Cell) int {
	du := abs(a.U - b.U)
	dv := abs(a.V - b.V)
	dw := abs(a.W - b.W)
	return max(du, dv, dw)
}

// DirectDistance returns the euclidean distance between two cells. The
// axial basis vectors meet at 120 degrees, hence the -du*dv cross term.
func DirectDistance(a, b Cell) float64 {
	du := float64(b.U - a.U)
	dv := float64(b.V - a.V)
	return math.Sqrt(du*du + dv*dv - du*dv)
}

// Adjacent returns the six neighbours of a cell in a fixed order: for
// every ordered pair of distinct cubic components, one is incremented and
// the other decremented.
func Adjacent(c Cell) []Cell {
	comps := [3]int{c.U, c.V, c.W}
	neighbours := make([]Cell, 0, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			n := comps
			n[i]++
			n[j]--
			neighbours = append(neighbours, Cell{U: n[0], V: n[1], W: n[2]})
		}
	}
	return neighbours
}

// Expand grows a region to include every cell within radius adjacency
// steps of it. Each round only the most recently added frontier is
// expanded. A radius of 0 returns a copy of the region unchanged.
func Expand(region Region, radius int) Region {
	grown := region.Copy()
	frontier := region.Copy()

	for round := 0; round < radius; round++ {
		next := make(Region)
		for cell := range frontier {
			for _, n := range Adjacent(cell) {
				if !grown.Contains(n) {
					next.Add(n)
				}
			}
		}
		for cell := range next {
			grown.Add(cell)
		}
		frontier = next
	}
	return grown
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
