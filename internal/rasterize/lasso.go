package rasterize

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/ironsheep/selection-engine/internal/coords"
	"github.com/ironsheep/selection-engine/internal/mask"
)

// lassoAlphaThreshold is the coverage level at which a cell counts as
// inside the lasso polygon (half of full coverage).
const lassoAlphaThreshold = 0x80

// Lasso rasterizes a closed freehand polygon.
//
// Parameters:
//   - width, height: layer dimensions the candidate mask must match.
//   - path: ordered pointer samples in layer space. The polygon is
//     implicitly closed from the last point back to the first. Callers
//     are expected to pre-filter duplicate and sub-pixel-distance
//     samples to bound the path length; no deduplication happens here.
//
// Returns an error when the path has fewer than three points, the
// minimum for an area-enclosing polygon.
//
// # Fill Rule
//
// The polygon is filled through x/image/vector's coverage rasterizer,
// which implements the nonzero winding rule; a cell is selected when
// its accumulated coverage reaches half opacity. Self-intersecting
// paths are accepted as-is, so regions a self-crossing traverses twice
// in the same direction stay filled under this rule (even-odd would
// punch them out).
func Lasso(width, height int, path []coords.Point) (*mask.Mask, error) {
	if len(path) < 3 {
		return nil, fmt.Errorf("lasso: path has %d points, need at least 3", len(path))
	}

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	r.MoveTo(float32(path[0].X), float32(path[0].Y))
	for _, p := range path[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()

	cov := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	m := mask.New(width, height)
	for y := 0; y < height; y++ {
		row := cov.Pix[y*cov.Stride : y*cov.Stride+width]
		for x, a := range row {
			if a >= lassoAlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m, nil
}
