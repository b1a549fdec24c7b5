package mask

// Expand returns a copy of the mask dilated by the given radius.
//
// A cell is selected in the result if any cell within Manhattan
// distance radius (|dx|+|dy| <= radius) is selected in the source.
// A radius of zero returns a plain copy; negative radii panic.
//
// # Performance
//
// This is a naive per-cell neighborhood scan, O(width*height*radius^2).
// That is acceptable at the intended image sizes (up to a few thousand
// pixels per side) but is the performance ceiling of the operation;
// large radii on large masks run proportionally slower.
func (m *Mask) Expand(radius int) *Mask {
	if radius < 0 {
		panic("mask: negative expand radius")
	}
	out := New(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.anyWithin(x, y, radius) {
				out.cells[y*m.width+x] = 1
			}
		}
	}
	return out
}

// Contract returns a copy of the mask eroded by the given radius.
//
// A cell stays selected only if every cell within Manhattan distance
// radius is selected; coordinates outside the mask count as unselected,
// so a selection touching the mask border erodes there too. A radius of
// zero returns a plain copy; negative radii panic.
//
// Same O(width*height*radius^2) ceiling as Expand.
func (m *Mask) Contract(radius int) *Mask {
	if radius < 0 {
		panic("mask: negative contract radius")
	}
	out := New(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.allWithin(x, y, radius) {
				out.cells[y*m.width+x] = 1
			}
		}
	}
	return out
}

// anyWithin reports whether any cell of the Manhattan neighborhood of
// (x, y) is selected.
func (m *Mask) anyWithin(x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		rem := radius - abs(dy)
		for dx := -rem; dx <= rem; dx++ {
			if m.At(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// allWithin reports whether every cell of the Manhattan neighborhood of
// (x, y) is selected, treating out-of-bounds cells as unselected.
func (m *Mask) allWithin(x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		rem := radius - abs(dy)
		for dx := -rem; dx <= rem; dx++ {
			if !m.At(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
