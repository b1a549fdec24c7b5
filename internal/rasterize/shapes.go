package rasterize

import (
	"fmt"
	"math"

	"github.com/ironsheep/selection-engine/internal/mask"
)

// minShapeExtent is the smallest usable rectangle side or ellipse
// radius. Anything below it is treated as an accidental zero-drag
// click and rejected.
const minShapeExtent = 2

// Rect rasterizes an axis-aligned rectangle.
//
// A cell (x, y) is selected iff left <= x < right and top <= y <
// bottom, clipped to the layer. Rectangles narrower or shorter than
// two cells are rejected so a click without a drag never produces a
// selection.
func Rect(width, height, left, top, right, bottom int) (*mask.Mask, error) {
	if right-left < minShapeExtent || bottom-top < minShapeExtent {
		return nil, fmt.Errorf("rectangle %dx%d below minimum size %d",
			right-left, bottom-top, minShapeExtent)
	}

	m := mask.New(width, height)
	x0, x1 := clampRange(left, right, width)
	y0, y1 := clampRange(top, bottom, height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Set(x, y, true)
		}
	}
	return m, nil
}

// Ellipse rasterizes an axis-aligned ellipse.
//
// A cell (x, y) is selected iff ((x-cx)/rx)^2 + ((y-cy)/ry)^2 <= 1.
// Radii below two cells are rejected under the same zero-drag policy
// as Rect.
func Ellipse(width, height int, cx, cy, rx, ry float64) (*mask.Mask, error) {
	if rx < minShapeExtent || ry < minShapeExtent {
		return nil, fmt.Errorf("ellipse radii %gx%g below minimum %d", rx, ry, minShapeExtent)
	}

	m := mask.New(width, height)
	x0, x1 := clampRange(int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))+1, width)
	y0, y1 := clampRange(int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))+1, height)
	for y := y0; y < y1; y++ {
		dy := (float64(y) - cy) / ry
		for x := x0; x < x1; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy <= 1 {
				m.Set(x, y, true)
			}
		}
	}
	return m, nil
}

// clampRange clips the half-open range [lo, hi) to [0, limit).
func clampRange(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}
