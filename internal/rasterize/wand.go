package rasterize

import (
	"fmt"
	"image"

	"github.com/ironsheep/selection-engine/internal/mask"
	"github.com/ironsheep/selection-engine/internal/pixels"
)

// Wand flood-fills a contiguous region of similar color.
//
// Parameters:
//   - src: the layer's pixel source. Must not be nil.
//   - x, y: seed coordinate in layer-pixel space.
//   - tolerance: maximum Euclidean RGB distance (0-255 units) between
//     the seed color and a pixel for the pixel to join the region.
//     Larger values are more permissive; 0 selects exact matches only.
//
// Returns:
//   - *mask.Mask: candidate mask sized to the source, with the filled
//     region selected. Never empty on success (the seed always joins).
//   - error: non-nil when src is nil or the seed is out of bounds.
//
// # Algorithm
//
// Iterative stack-based flood fill, 4-connected (N/E/S/W neighbors,
// no diagonals). A pixel joins the region when its RGB distance to the
// seed color is within tolerance; alpha is excluded from the metric. A
// visited bitmap prevents reprocessing, and out-of-bounds neighbors are
// skipped rather than treated as errors.
//
// # Performance
//
// O(pixel count) in the worst case (a fully uniform image) and runs
// synchronously on the calling goroutine; on very large images this can
// visibly stall the triggering event.
func Wand(src *pixels.Source, x, y int, tolerance float64) (*mask.Mask, error) {
	if src == nil {
		return nil, fmt.Errorf("magic wand: pixel source unavailable")
	}
	seed, ok := src.Sample(x, y)
	if !ok {
		return nil, fmt.Errorf("magic wand: seed (%d,%d) outside %dx%d image",
			x, y, src.Width(), src.Height())
	}

	w, h := src.Width(), src.Height()
	m := mask.New(w, h)
	visited := make([]bool, w*h)

	stack := []image.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		if visited[p.Y*w+p.X] {
			continue
		}
		visited[p.Y*w+p.X] = true

		c, _ := src.Sample(p.X, p.Y)
		if pixels.Distance(seed, c) > tolerance {
			continue
		}
		m.Set(p.X, p.Y, true)

		stack = append(stack,
			image.Point{X: p.X, Y: p.Y - 1},
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X - 1, Y: p.Y},
		)
	}

	return m, nil
}
