package engine

import (
	"fmt"

	"github.com/ironsheep/selection-engine/internal/coords"
	"github.com/ironsheep/selection-engine/internal/mask"
	"github.com/ironsheep/selection-engine/internal/rasterize"
)

// SubtractToleranceFloor is the minimum effective magic-wand tolerance
// used when subtracting a region the seed of which is already
// selected. Subtracting at low tolerance from inside a selection tends
// to leave a fringe of anti-aliased edge pixels behind; raising the
// floor reduces the residue. This is a heuristic, not a guaranteed
// fix.
const SubtractToleranceFloor = 50

// MagicWand flood-fills from (x, y) with the given tolerance and
// applies the region under mode.
//
// When mode is mask.ModeSubtract and the seed already lies inside the
// current selection, the effective tolerance is raised to at least
// SubtractToleranceFloor.
//
// Fails without touching the selection when no pixel source is
// attached or the seed is out of bounds.
func (e *SelectionEngine) MagicWand(x, y int, tolerance float64, mode mask.Mode) error {
	if e.src == nil {
		return fmt.Errorf("magic wand: no pixel source attached")
	}

	effective := tolerance
	if mode == mask.ModeSubtract && e.canonical != nil && e.canonical.At(x, y) {
		if effective < SubtractToleranceFloor {
			effective = SubtractToleranceFloor
		}
	}

	candidate, err := rasterize.Wand(e.src, x, y, effective)
	if err != nil {
		return err
	}
	e.Apply(candidate, mode)
	return nil
}

// LassoFinish closes and fills the freehand path and applies it under
// mode. Paths shorter than three points fail without touching the
// selection.
func (e *SelectionEngine) LassoFinish(path []coords.Point, mode mask.Mode) error {
	candidate, err := rasterize.Lasso(e.width, e.height, path)
	if err != nil {
		return err
	}
	e.Apply(candidate, mode)
	return nil
}

// RectangleFinish applies the rectangle [left,right) x [top,bottom)
// under mode. Rectangles below the two-cell minimum fail without
// touching the selection.
func (e *SelectionEngine) RectangleFinish(left, top, right, bottom int, mode mask.Mode) error {
	candidate, err := rasterize.Rect(e.width, e.height, left, top, right, bottom)
	if err != nil {
		return err
	}
	e.Apply(candidate, mode)
	return nil
}

// EllipseFinish applies the ellipse centered at (cx, cy) with radii
// (rx, ry) under mode. Radii below the two-cell minimum fail without
// touching the selection.
func (e *SelectionEngine) EllipseFinish(cx, cy, rx, ry float64, mode mask.Mode) error {
	candidate, err := rasterize.Ellipse(e.width, e.height, cx, cy, rx, ry)
	if err != nil {
		return err
	}
	e.Apply(candidate, mode)
	return nil
}

// BrushFinish applies a brush stroke along path with the given radius
// (clamped to the brush limits) under mode. Empty paths fail without
// touching the selection.
func (e *SelectionEngine) BrushFinish(path []coords.Point, radius float64, mode mask.Mode) error {
	candidate, err := rasterize.Brush(e.width, e.height, path, radius)
	if err != nil {
		return err
	}
	e.Apply(candidate, mode)
	return nil
}
