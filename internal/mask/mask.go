package mask

import (
	"fmt"
	"image"
	"image/color"
)

// Mode selects how a candidate mask combines with an existing selection.
type Mode int

// Combination modes, in the order tools present them.
const (
	// ModeNew discards the existing selection and adopts the candidate.
	ModeNew Mode = iota

	// ModeAdd selects cells present in either mask (union).
	ModeAdd

	// ModeSubtract deselects cells present in the candidate (difference).
	ModeSubtract

	// ModeIntersect keeps only cells present in both masks.
	ModeIntersect
)

// String returns the lowercase name of the mode, or "unknown" for
// values outside the defined range.
func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeAdd:
		return "add"
	case ModeSubtract:
		return "subtract"
	case ModeIntersect:
		return "intersect"
	}
	return "unknown"
}

// ParseMode converts a mode name ("new", "add", "subtract", "intersect")
// to its Mode value.
//
// Returns an error for unrecognized names.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "new":
		return ModeNew, nil
	case "add":
		return ModeAdd, nil
	case "subtract":
		return ModeSubtract, nil
	case "intersect":
		return ModeIntersect, nil
	}
	return ModeNew, fmt.Errorf("unknown selection mode %q", name)
}

// Mask is a dense binary grid of width*height cells.
//
// Cells hold 0 (unselected) or 1 (selected). The zero value is not
// usable; construct masks with New.
type Mask struct {
	width  int
	height int
	cells  []byte
}

// New creates an all-unselected mask of the given dimensions.
//
// Panics if either dimension is not positive: mask dimensions always
// mirror the active layer's pixel dimensions, so a non-positive size is
// a caller bug, not a runtime condition.
func New(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("mask: invalid dimensions %dx%d", width, height))
	}
	return &Mask{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
}

// Width returns the mask width in cells.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in cells.
func (m *Mask) Height() int { return m.height }

// At reports whether the cell at (x, y) is selected.
// Out-of-bounds coordinates are unselected.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x] != 0
}

// Set marks the cell at (x, y) selected or unselected.
// Out-of-bounds coordinates are ignored, matching the rasterizer
// policy that clipped geometry is skipped rather than an error.
func (m *Mask) Set(x, y int, selected bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	if selected {
		m.cells[y*m.width+x] = 1
	} else {
		m.cells[y*m.width+x] = 0
	}
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	c := New(m.width, m.height)
	copy(c.cells, m.cells)
	return c
}

// Fill selects every cell.
func (m *Mask) Fill() {
	for i := range m.cells {
		m.cells[i] = 1
	}
}

// Invert toggles every cell between selected and unselected.
func (m *Mask) Invert() {
	for i, v := range m.cells {
		m.cells[i] = 1 - v
	}
}

// Area returns the number of selected cells.
func (m *Mask) Area() int {
	n := 0
	for _, v := range m.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Empty reports whether no cell is selected.
func (m *Mask) Empty() bool {
	for _, v := range m.cells {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two masks have identical dimensions and cells.
func (m *Mask) Equal(o *Mask) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i, v := range m.cells {
		if v != o.cells[i] {
			return false
		}
	}
	return true
}

// Bounds returns the tight bounding box of the selected cells using the
// half-open image.Rectangle convention, and whether any cell is
// selected at all. An empty mask returns the zero rectangle and false.
func (m *Mask) Bounds() (image.Rectangle, bool) {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		row := m.cells[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Combine merges a candidate mask into m cell by cell.
//
// ModeAdd ORs the cells, ModeSubtract clears cells set in the
// candidate, and ModeIntersect keeps only cells set in both. ModeNew is
// a whole-mask replacement and therefore the owner's responsibility;
// passing it here panics, as does a dimension mismatch.
func (m *Mask) Combine(candidate *Mask, mode Mode) {
	m.mustMatch(candidate)
	switch mode {
	case ModeAdd:
		for i, v := range candidate.cells {
			m.cells[i] |= v
		}
	case ModeSubtract:
		for i, v := range candidate.cells {
			if v != 0 {
				m.cells[i] = 0
			}
		}
	case ModeIntersect:
		for i, v := range candidate.cells {
			m.cells[i] &= v
		}
	default:
		panic(fmt.Sprintf("mask: combine called with mode %v", mode))
	}
}

// Overlay renders the mask as an RGBA image suitable for compositing
// over the source layer: selected cells are white at half alpha (0x80),
// unselected cells fully transparent.
func (m *Mask) Overlay() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	// Alpha-premultiplied white at half opacity.
	on := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x] != 0 {
				img.SetRGBA(x, y, on)
			}
		}
	}
	return img
}

// mustMatch panics when the two masks differ in dimensions.
func (m *Mask) mustMatch(o *Mask) {
	if m.width != o.width || m.height != o.height {
		panic(fmt.Sprintf("mask: dimension mismatch %dx%d vs %dx%d",
			m.width, m.height, o.width, o.height))
	}
}
