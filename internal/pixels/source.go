package pixels

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a single 8-bit-per-channel color sample.
type RGBA struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255)
}

// Source is a read-only width*height RGBA pixel buffer.
//
// The buffer layout is row-major with 4 bytes per pixel (R, G, B, A),
// the same layout the rendering side hands over for the active layer.
type Source struct {
	width  int
	height int
	pix    []byte
}

// NewSource wraps a raw RGBA buffer.
//
// Parameters:
//   - width, height: buffer dimensions in pixels, both positive.
//   - pix: exactly width*height*4 bytes in R,G,B,A order.
//
// Returns an error when the dimensions are not positive or the buffer
// length does not match. The buffer is not copied; the caller must not
// mutate it while the source is in use.
func NewSource(width, height int, pix []byte) (*Source, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid source dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%d (want %d)",
			len(pix), width, height, width*height*4)
	}
	return &Source{width: width, height: height, pix: pix}, nil
}

// FromImage converts any decoded image into a Source.
//
// The image is normalized to 8-bit RGBA via bild's clone.AsRGBA, then
// repacked into a tight row-major buffer. The origin is shifted to
// (0, 0) regardless of the image's bounds.
func FromImage(img image.Image) *Source {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := rgba.Pix[(y+b.Min.Y-rgba.Rect.Min.Y)*rgba.Stride:]
		src = src[(b.Min.X-rgba.Rect.Min.X)*4:]
		copy(pix[y*w*4:(y+1)*w*4], src[:w*4])
	}
	return &Source{width: w, height: h, pix: pix}
}

// Width returns the buffer width in pixels.
func (s *Source) Width() int { return s.width }

// Height returns the buffer height in pixels.
func (s *Source) Height() int { return s.height }

// Sample reads the color at (x, y).
//
// The second return value is false for out-of-bounds coordinates, in
// which case the color is the zero value ("no sample").
func (s *Source) Sample(x, y int) (RGBA, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return RGBA{}, false
	}
	i := (y*s.width + x) * 4
	return RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}, true
}

// Distance returns the Euclidean RGB distance between two samples in
// 0-255 units, so identical colors measure 0 and black-to-white
// measures ~441.
//
// Alpha is excluded from the metric: on uniformly opaque source images
// it carries no information, and mixing it in makes tolerance behavior
// inconsistent between sources that do and do not carry transparency.
func Distance(a, b RGBA) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceRgb(cb) * 255
}
