package hexgrid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument marks caller errors such as an unknown metric or
	// a bad extension axis.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfBounds is returned when coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrSizeMismatch is returned when prefill content cannot cover the
	// grid.
	ErrSizeMismatch = errors.New("content size mismatch")
	// ErrDimensionMismatch is returned when two grids cannot be joined or
	// a mutation would break hexagonal connectivity.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Grid is a dense rectangular store of hexagons addressed by axial or
// cubic coordinates. Content is laid out row-major.
type Grid[T any] struct {
	rows  int
	cols  int
	data  [][]T
	scale float64
}

// New returns an empty rows-by-cols grid holding zero values.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: dimensions must be non-negative, got %dx%d",
			ErrInvalidArgument, rows, cols)
	}
	data := make([][]T, rows)
	for i := range data {
		data[i] = make([]T, cols)
	}
	return &Grid[T]{rows: rows, cols: cols, data: data, scale: 1}, nil
}

// NewFrom returns a rows-by-cols grid prefilled from content, consumed in
// row-major order. content must hold at least rows*cols values.
func NewFrom[T any](rows, cols int, content []T) (*Grid[T], error) {
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(content) < rows*cols {
		return nil, fmt.Errorf("%w: need %d values, got %d",
			ErrSizeMismatch, rows*cols, len(content))
	}
	for i := 0; i < rows; i++ {
		copy(g.data[i], content[i*cols:(i+1)*cols])
	}
	return g, nil
}

// SetScale sets the hexagon side length used by Nearest. The default is 1.
func (g *Grid[T]) SetScale(scale float64) {
	g.scale = scale
}

// Dimensions returns the row and column counts of the grid.
func (g *Grid[T]) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// At returns the content stored for the given cell.
func (g *Grid[T]) At(c Cell) (T, error) {
	row, col := c.Array()
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		var zero T
		return zero, fmt.Errorf("%w: %s maps to array index (%d, %d)",
			ErrOutOfBounds, c, row, col)
	}
	return g.data[row][col], nil
}

// Set stores content for the given cell.
func (g *Grid[T]) Set(c Cell, value T) error {
	row, col := c.Array()
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: %s maps to array index (%d, %d)",
			ErrOutOfBounds, c, row, col)
	}
	g.data[row][col] = value
	return nil
}

// Each calls fn for every (cell, content) pair in row-major order,
// stopping early if fn returns false.
func (g *Grid[T]) Each(fn func(Cell, T) bool) {
	for i, row := range g.data {
		for j, elem := range row {
			u, v := ArrayToAxial(i, j)
			if !fn(At(u, v), elem) {
				return
			}
		}
	}
}

// CellSet returns the region of every valid cell on the grid.
func (g *Grid[T]) CellSet() Region {
	cells := make(Region, g.rows*g.cols)
	g.Each(func(c Cell, _ T) bool {
		cells.Add(c)
		return true
	})
	return cells
}

// Copy returns an independent copy of the grid.
func (g *Grid[T]) Copy() *Grid[T] {
	data := make([][]T, g.rows)
	for i := range data {
		data[i] = make([]T, g.cols)
		copy(data[i], g.data[i])
	}
	return &Grid[T]{rows: g.rows, cols: g.cols, data: data, scale: g.scale}
}

// Rotate turns the grid 180 degrees by reversing the row order and each
// row. Rotating a grid with an odd row count would misalign hexagonal
// connectivity, so it fails unless force is set.
func (g *Grid[T]) Rotate(force bool) error {
	if g.rows%2 != 0 && !force {
		return fmt.Errorf("%w: rotations need an even number of rows, got %d",
			ErrDimensionMismatch, g.rows)
	}
	for i, j := 0, g.rows-1; i < j; i, j = i+1, j-1 {
		g.data[i], g.data[j] = g.data[j], g.data[i]
	}
	for _, row := range g.data {
		for i, j := 0, g.cols-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return nil
}

// FlipVertical mirrors the grid across its horizontal midline by
// reversing the row order. Flipping a grid with an even row count would
// misalign hexagonal connectivity, so it fails unless force is set.
func (g *Grid[T]) FlipVertical(force bool) error {
	if g.rows%2 == 0 && !force {
		return fmt.Errorf("%w: reflections need an odd number of rows, got %d",
			ErrDimensionMismatch, g.rows)
	}
	for i, j := 0, g.rows-1; i < j; i, j = i+1, j-1 {
		g.data[i], g.data[j] = g.data[j], g.data[i]
	}
	return nil
}

// Extend joins another grid onto this one: axis 0 appends rows, axis 1
// appends columns. The non-stacking dimension must match exactly.
func (g *Grid[T]) Extend(other *Grid[T], axis int) error {
	if axis != 0 && axis != 1 {
		return fmt.Errorf("%w: axis must be 0 or 1, got %d", ErrInvalidArgument, axis)
	}
	if axis == 0 {
		if other.cols != g.cols {
			return fmt.Errorf("%w: column counts differ (%d vs %d)",
				ErrDimensionMismatch, g.cols, other.cols)
		}
		for _, row := range other.data {
			appended := make([]T, g.cols)
			copy(appended, row)
			g.data = append(g.data, appended)
		}
		g.rows += other.rows
		return nil
	}
	if other.rows != g.rows {
		return fmt.Errorf("%w: row counts differ (%d vs %d)",
			ErrDimensionMismatch, g.rows, other.rows)
	}
	for i := range g.data {
		g.data[i] = append(g.data[i], other.data[i]...)
	}
	g.cols += other.cols
	return nil
}

// Nearest maps continuous orthonormal coordinates to the nearest cell.
// The fractional cubic coordinates are rounded componentwise, then the
// component with the largest rounding error is recomputed from the other
// two to restore the cubic-sum-zero invariant.
func (g *Grid[T]) Nearest(x, y float64) (Cell, error) {
	root3 := math.Sqrt(3)
	u := (2 / root3 * x) / g.scale
	v := (-1/root3*x + y) / g.scale
	w := -u - v

	exact := [3]float64{u, v, w}
	rounded := [3]int{}
	errs := [3]float64{}
	for i, f := range exact {
		rounded[i] = int(math.Round(f))
		errs[i] = math.Abs(f - math.Round(f))
	}

	worst := 0
	for i := 1; i < 3; i++ {
		if errs[i] > errs[worst] {
			worst = i
		}
	}
	sum := rounded[0] + rounded[1] + rounded[2]
	rounded[worst] -= sum

	cell := Cell{U: rounded[0], V: rounded[1], W: rounded[2]}
	if _, err := g.At(cell); err != nil {
		return Cell{}, err
	}
	return cell, nil
}
