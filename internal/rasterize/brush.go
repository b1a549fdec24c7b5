package rasterize

import (
	"fmt"
	"math"

	"github.com/ironsheep/selection-engine/internal/coords"
	"github.com/ironsheep/selection-engine/internal/mask"
)

// Brush stroke radius limits, in layer-pixel units.
const (
	MinBrushRadius = 1
	MaxBrushRadius = 100
)

// Brush rasterizes a brush stroke as a union of filled circles.
//
// Parameters:
//   - width, height: layer dimensions the candidate mask must match.
//   - path: ordered pointer samples in layer space; one point is
//     enough (a click without a drag paints a single disk).
//   - radius: stroke radius, clamped to [MinBrushRadius, MaxBrushRadius].
//
// Returns an error only for an empty path.
//
// # Gap Filling
//
// A disk is stamped at every path point, and for each consecutive pair
// additional disks are stepped along the connecting segment at 1-unit
// increments (ceil(distance) steps), so fast pointer movement never
// leaves gaps in the stroke.
func Brush(width, height int, path []coords.Point, radius float64) (*mask.Mask, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("brush: empty path")
	}
	if radius < MinBrushRadius {
		radius = MinBrushRadius
	} else if radius > MaxBrushRadius {
		radius = MaxBrushRadius
	}

	m := mask.New(width, height)
	stampDisk(m, path[0].X, path[0].Y, radius)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		stampDisk(m, b.X, b.Y, radius)

		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(math.Ceil(dist))
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			stampDisk(m, a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, radius)
		}
	}
	return m, nil
}

// stampDisk selects every cell within radius of (cx, cy), clipped to
// the mask.
func stampDisk(m *mask.Mask, cx, cy, radius float64) {
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= r2 {
				m.Set(x, y, true)
			}
		}
	}
}
