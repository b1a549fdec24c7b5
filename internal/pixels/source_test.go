package pixels

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// uniformImage creates an in-memory test image filled with one color.
func uniformImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewSource_Validation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		bufLen  int
		wantErr bool
	}{
		{"valid", 4, 3, 48, false},
		{"short buffer", 4, 3, 47, true},
		{"long buffer", 4, 3, 49, true},
		{"zero width", 0, 3, 0, true},
		{"negative height", 4, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(tt.w, tt.h, make([]byte, tt.bufLen))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSource: err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestSample(t *testing.T) {
	src, err := NewSource(2, 2, []byte{
		255, 0, 0, 255 /**/, 0, 255, 0, 255,
		0, 0, 255, 255 /**/, 10, 20, 30, 40,
	})
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	got, ok := src.Sample(1, 1)
	if !ok {
		t.Fatal("Sample(1,1) should be in bounds")
	}
	want := RGBA{R: 10, G: 20, B: 30, A: 40}
	if got != want {
		t.Errorf("Sample(1,1): got %+v, want %+v", got, want)
	}
}

func TestSample_OutOfBounds(t *testing.T) {
	src, _ := NewSource(3, 3, make([]byte, 36))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 3, 0},
		{"y at height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := src.Sample(tt.x, tt.y); ok {
				t.Error("Sample should report no sample out of bounds")
			}
		})
	}
}

func TestFromImage_MatchesPixels(t *testing.T) {
	src := FromImage(uniformImage(5, 4, color.RGBA{12, 34, 56, 255}))

	if src.Width() != 5 || src.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 5x4", src.Width(), src.Height())
	}
	got, ok := src.Sample(4, 3)
	if !ok {
		t.Fatal("Sample(4,3) should be in bounds")
	}
	if got != (RGBA{R: 12, G: 34, B: 56, A: 255}) {
		t.Errorf("Sample: got %+v", got)
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.SetRGBA(10, 20, color.RGBA{200, 100, 50, 255})

	src := FromImage(img)
	if src.Width() != 3 || src.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", src.Width(), src.Height())
	}
	got, _ := src.Sample(0, 0)
	if got.R != 200 || got.G != 100 || got.B != 50 {
		t.Errorf("origin pixel: got %+v", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGBA
		want float64
	}{
		{"identical", RGBA{10, 20, 30, 255}, RGBA{10, 20, 30, 255}, 0},
		{"alpha ignored", RGBA{10, 20, 30, 0}, RGBA{10, 20, 30, 255}, 0},
		{"single channel", RGBA{0, 0, 0, 255}, RGBA{30, 0, 0, 255}, 30},
		{"black to white", RGBA{0, 0, 0, 255}, RGBA{255, 255, 255, 255}, 255 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance: got %v, want %v", got, tt.want)
			}
		})
	}
}
