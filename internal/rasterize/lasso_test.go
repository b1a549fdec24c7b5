package rasterize

import (
	"testing"

	"github.com/ironsheep/selection-engine/internal/coords"
)

func TestLasso_RequiresThreePoints(t *testing.T) {
	tests := []struct {
		name string
		path []coords.Point
	}{
		{"empty", nil},
		{"one point", []coords.Point{{X: 1, Y: 1}}},
		{"two points", []coords.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lasso(10, 10, tt.path); err == nil {
				t.Error("Lasso should reject paths shorter than 3 points")
			}
		})
	}
}

func TestLasso_AxisAlignedSquare(t *testing.T) {
	// Square (1,1)-(8,8): cells 1..7 in both axes are fully covered.
	path := []coords.Point{
		{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 8},
	}
	m, err := Lasso(10, 10, path)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	if m.Area() != 49 {
		t.Errorf("Area: got %d, want 49", m.Area())
	}
	if !m.At(1, 1) || !m.At(7, 7) {
		t.Error("interior cells should be selected")
	}
	if m.At(0, 0) || m.At(8, 8) {
		t.Error("cells outside the square should not be selected")
	}
}

func TestLasso_ImplicitClosingEdge(t *testing.T) {
	// An open L shape still closes last->first and encloses a triangle.
	path := []coords.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10},
	}
	m, err := Lasso(12, 12, path)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	if !m.At(2, 2) {
		t.Error("triangle interior should be selected")
	}
	if m.At(9, 9) {
		t.Error("outside the hypotenuse should not be selected")
	}
}

func TestLasso_SelfIntersectingBowtie(t *testing.T) {
	// Bowtie crossing at (5,5); both lobes fill under nonzero winding.
	path := []coords.Point{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10},
	}
	m, err := Lasso(12, 12, path)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	if !m.At(1, 5) {
		t.Error("left lobe interior should be selected")
	}
	if !m.At(8, 5) {
		t.Error("right lobe interior should be selected")
	}
	if m.At(5, 1) || m.At(5, 9) {
		t.Error("cells outside both lobes should not be selected")
	}
}

func TestLasso_ClippedToMask(t *testing.T) {
	// Polygon extends past the layer; no panic, outside area is lost.
	path := []coords.Point{
		{X: -5, Y: -5}, {X: 4, Y: -5}, {X: 4, Y: 4}, {X: -5, Y: 4},
	}
	m, err := Lasso(8, 8, path)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	if m.Area() != 16 {
		t.Errorf("Area: got %d, want 16 (4x4 in-bounds part)", m.Area())
	}
}
