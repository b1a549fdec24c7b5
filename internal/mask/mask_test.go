package mask

import (
	"image"
	"testing"
)

// buildMask creates a mask with the given cells selected.
func buildMask(w, h int, cells ...[2]int) *Mask {
	m := New(w, h)
	for _, c := range cells {
		m.Set(c[0], c[1], true)
	}
	return m
}

func TestNew_StartsEmpty(t *testing.T) {
	m := New(8, 6)
	if m.Width() != 8 || m.Height() != 6 {
		t.Errorf("dimensions: got %dx%d, want 8x6", m.Width(), m.Height())
	}
	if !m.Empty() {
		t.Error("new mask should be empty")
	}
	if m.Area() != 0 {
		t.Errorf("Area: got %d, want 0", m.Area())
	}
}

func TestNew_InvalidDimensionsPanics(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("New should panic on invalid dimensions")
				}
			}()
			New(tt.w, tt.h)
		})
	}
}

func TestSetAt_OutOfBoundsIgnored(t *testing.T) {
	m := New(4, 4)
	m.Set(-1, 0, true)
	m.Set(0, -1, true)
	m.Set(4, 0, true)
	m.Set(0, 4, true)
	if !m.Empty() {
		t.Error("out-of-bounds Set should not mark any cell")
	}
	if m.At(-1, 0) || m.At(4, 4) {
		t.Error("out-of-bounds At should report unselected")
	}
}

func TestCombine_CellwiseSemantics(t *testing.T) {
	// All four cell combinations appear in a 2x2 grid:
	// a = {(0,0),(1,0)}, b = {(0,0),(0,1)}.
	a := buildMask(2, 2, [2]int{0, 0}, [2]int{1, 0})
	b := buildMask(2, 2, [2]int{0, 0}, [2]int{0, 1})

	tests := []struct {
		name string
		mode Mode
		want map[[2]int]bool
	}{
		{"add is union", ModeAdd, map[[2]int]bool{
			{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: false,
		}},
		{"subtract is difference", ModeSubtract, map[[2]int]bool{
			{0, 0}: false, {1, 0}: true, {0, 1}: false, {1, 1}: false,
		}},
		{"intersect is conjunction", ModeIntersect, map[[2]int]bool{
			{0, 0}: true, {1, 0}: false, {0, 1}: false, {1, 1}: false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Clone()
			got.Combine(b, tt.mode)
			for cell, want := range tt.want {
				if got.At(cell[0], cell[1]) != want {
					t.Errorf("cell %v: got %v, want %v", cell, got.At(cell[0], cell[1]), want)
				}
			}
		})
	}
}

func TestCombine_DimensionMismatchPanics(t *testing.T) {
	a := New(4, 4)
	b := New(5, 4)
	defer func() {
		if recover() == nil {
			t.Error("Combine should panic on dimension mismatch")
		}
	}()
	a.Combine(b, ModeAdd)
}

func TestCombine_NewModePanics(t *testing.T) {
	a := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("Combine with ModeNew should panic")
		}
	}()
	a.Combine(New(2, 2), ModeNew)
}

func TestInvert_DoubleInvertIsIdentity(t *testing.T) {
	m := buildMask(5, 5, [2]int{1, 1}, [2]int{3, 2}, [2]int{0, 4})
	orig := m.Clone()

	m.Invert()
	if m.Area() != 25-3 {
		t.Errorf("inverted area: got %d, want %d", m.Area(), 25-3)
	}
	m.Invert()
	if !m.Equal(orig) {
		t.Error("invert twice should restore the original mask")
	}
}

func TestFill_SelectsEverything(t *testing.T) {
	m := New(7, 3)
	m.Fill()
	if m.Area() != 21 {
		t.Errorf("Area after Fill: got %d, want 21", m.Area())
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		want  image.Rectangle
		any   bool
	}{
		{"empty", nil, image.Rectangle{}, false},
		{"single cell", [][2]int{{3, 2}}, image.Rect(3, 2, 4, 3), true},
		{"spread", [][2]int{{1, 1}, {4, 3}}, image.Rect(1, 1, 5, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(6, 5)
			for _, c := range tt.cells {
				m.Set(c[0], c[1], true)
			}
			got, any := m.Bounds()
			if any != tt.any {
				t.Fatalf("any: got %v, want %v", any, tt.any)
			}
			if got != tt.want {
				t.Errorf("Bounds: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlay_AlphaEncodesSelection(t *testing.T) {
	m := buildMask(3, 3, [2]int{1, 1})
	img := m.Overlay()

	if a := img.RGBAAt(1, 1).A; a != 0x80 {
		t.Errorf("selected cell alpha: got %#x, want 0x80", a)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("unselected cell alpha: got %#x, want 0", a)
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{ModeNew, ModeAdd, ModeSubtract, ModeIntersect} {
		got, err := ParseMode(mode.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", mode.String(), err)
		}
		if got != mode {
			t.Errorf("ParseMode(%q): got %v, want %v", mode.String(), got, mode)
		}
	}
	if _, err := ParseMode("replace"); err == nil {
		t.Error("ParseMode should reject unknown names")
	}
}
