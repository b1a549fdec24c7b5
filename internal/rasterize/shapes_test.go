package rasterize

import "testing"

func TestRect_SelectsHalfOpenBounds(t *testing.T) {
	m, err := Rect(10, 10, 2, 3, 6, 8)
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if m.Area() != 4*5 {
		t.Errorf("Area: got %d, want 20", m.Area())
	}
	if !m.At(2, 3) || !m.At(5, 7) {
		t.Error("corner cells inside the bounds should be selected")
	}
	if m.At(6, 3) || m.At(2, 8) {
		t.Error("cells at the exclusive edges should not be selected")
	}
}

func TestRect_RejectsDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		l, t, r, b int
	}{
		{"width one", 0, 0, 1, 10},
		{"height one", 0, 0, 10, 1},
		{"zero width", 3, 3, 3, 10},
		{"inverted", 5, 5, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Rect(10, 10, tt.l, tt.t, tt.r, tt.b); err == nil {
				t.Error("Rect should reject degenerate bounds")
			}
		})
	}
}

func TestRect_ClipsToLayer(t *testing.T) {
	m, err := Rect(5, 5, -3, -3, 3, 3)
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if m.Area() != 9 {
		t.Errorf("Area: got %d, want 9 (3x3 in-bounds part)", m.Area())
	}
}

func TestEllipse_MatchesEquation(t *testing.T) {
	cx, cy, rx, ry := 5.0, 5.0, 3.0, 2.0
	m, err := Ellipse(11, 11, cx, cy, rx, ry)
	if err != nil {
		t.Fatalf("Ellipse: %v", err)
	}

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			want := dx*dx+dy*dy <= 1
			if m.At(x, y) != want {
				t.Errorf("cell (%d,%d): got %v, want %v", x, y, m.At(x, y), want)
			}
		}
	}
}

func TestEllipse_RejectsSmallRadii(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry float64
	}{
		{"rx below minimum", 1.9, 5},
		{"ry below minimum", 5, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Ellipse(20, 20, 10, 10, tt.rx, tt.ry); err == nil {
				t.Error("Ellipse should reject radii below the minimum")
			}
		})
	}
}

func TestEllipse_ClipsToLayer(t *testing.T) {
	m, err := Ellipse(6, 6, 0, 0, 4, 4)
	if err != nil {
		t.Fatalf("Ellipse: %v", err)
	}
	if !m.At(0, 0) {
		t.Error("center cell should be selected")
	}
	// Everything selected must satisfy the equation and lie in bounds.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			dx := float64(x) / 4
			dy := float64(y) / 4
			want := dx*dx+dy*dy <= 1
			if m.At(x, y) != want {
				t.Errorf("cell (%d,%d): got %v, want %v", x, y, m.At(x, y), want)
			}
		}
	}
}
