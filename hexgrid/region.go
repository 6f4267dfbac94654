package hexgrid

import "sort"

// Region is an unordered set of cells. The zero value is not usable; use
// NewRegion or make(Region).
type Region map[Cell]struct{}

// NewRegion builds a region from the given cells.
func NewRegion(cells ...Cell) Region {
	r := make(Region, len(cells))
	for _, c := range cells {
		r.Add(c)
	}
	return r
}

// Add inserts a cell into the region.
func (r Region) Add(c Cell) {
	r[c] = struct{}{}
}

// Contains reports whether the region holds the cell.
func (r Region) Contains(c Cell) bool {
	_, ok := r[c]
	return ok
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r)
}

// Copy returns an independent copy of the region.
func (r Region) Copy() Region {
	out := make(Region, len(r))
	for c := range r {
		out[c] = struct{}{}
	}
	return out
}

// Union returns a new region with every cell of r and other.
func (r Region) Union(other Region) Region {
	out := r.Copy()
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Intersect returns a new region with the cells present in both r and
// other.
func (r Region) Intersect(other Region) Region {
	small, large := r, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Region)
	for c := range small {
		if large.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Subtract returns a new region with the cells of r not present in other.
func (r Region) Subtract(other Region) Region {
	out := make(Region)
	for c := range r {
		if !other.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Intersects reports whether r and other share at least one cell.
func (r Region) Intersects(other Region) bool {
	small, large := r, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for c := range small {
		if large.Contains(c) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every cell of other is in r.
func (r Region) ContainsAll(other Region) bool {
	for c := range other {
		if !r.Contains(c) {
			return false
		}
	}
	return true
}

// Equal reports whether r and other hold exactly the same cells.
func (r Region) Equal(other Region) bool {
	return len(r) == len(other) && r.ContainsAll(other)
}

// Cells returns the region's cells sorted by row-major array order, so
// callers get a stable enumeration out of the unordered set.
func (r Region) Cells() []Cell {
	cells := make([]Cell, 0, len(r))
	for c := range r {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		ri, ci := cells[i].Array()
		rj, cj := cells[j].Array()
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return cells
}
