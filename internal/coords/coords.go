package coords

import (
	"fmt"
	"math"
)

// System identifies which coordinate system a point is expressed in.
// A Point is meaningless without one.
type System int

const (
	// Viewport is the on-screen space, affected by pan and zoom.
	Viewport System = iota

	// Workspace is the logical canvas space shared by all layers.
	Workspace

	// Layer is a single layer's own pixel grid.
	Layer
)

// String returns the lowercase name of the system.
func (s System) String() string {
	switch s {
	case Viewport:
		return "viewport"
	case Workspace:
		return "workspace"
	case Layer:
		return "layer"
	}
	return "unknown"
}

// Point is a 2D position. Which system it lives in is tracked by the
// caller, not the point.
type Point struct {
	X float64
	Y float64
}

// View describes the current pan/zoom state of the viewport.
//
// Pan is the workspace coordinate shown at the viewport origin; Zoom is
// the uniform workspace-to-viewport scale factor (2 = 200%).
type View struct {
	PanX float64
	PanY float64
	Zoom float64
}

// Placement positions a layer inside the workspace: the workspace
// coordinate of the layer's (0, 0) pixel.
type Placement struct {
	OffsetX float64
	OffsetY float64
}

// Transformer converts points between viewport, workspace, and layer
// space for one layer under one view.
type Transformer struct {
	view      View
	placement Placement
	layerW    int
	layerH    int
}

// NewTransformer builds a transformer for a layer of the given pixel
// dimensions. Returns an error when the zoom factor is not positive or
// the dimensions are invalid.
func NewTransformer(view View, placement Placement, layerWidth, layerHeight int) (*Transformer, error) {
	if view.Zoom <= 0 {
		return nil, fmt.Errorf("invalid zoom factor %v", view.Zoom)
	}
	if layerWidth <= 0 || layerHeight <= 0 {
		return nil, fmt.Errorf("invalid layer dimensions %dx%d", layerWidth, layerHeight)
	}
	return &Transformer{view: view, placement: placement, layerW: layerWidth, layerH: layerHeight}, nil
}

// SetView replaces the pan/zoom state, typically on every viewport
// change. Returns an error when the zoom factor is not positive, in
// which case the previous view is kept.
func (t *Transformer) SetView(view View) error {
	if view.Zoom <= 0 {
		return fmt.Errorf("invalid zoom factor %v", view.Zoom)
	}
	t.view = view
	return nil
}

// Convert re-expresses p, currently in the from system, in the to
// system. Converting a system to itself returns p unchanged.
func (t *Transformer) Convert(p Point, from, to System) Point {
	if from == to {
		return p
	}
	w := t.toWorkspace(p, from)
	return t.fromWorkspace(w, to)
}

// LayerPixel resolves a viewport position to integer layer-pixel
// coordinates. The ok result is false when the position falls outside
// the layer's pixel grid.
func (t *Transformer) LayerPixel(viewport Point) (x, y int, ok bool) {
	l := t.Convert(viewport, Viewport, Layer)
	x = int(math.Floor(l.X))
	y = int(math.Floor(l.Y))
	ok = x >= 0 && x < t.layerW && y >= 0 && y < t.layerH
	return x, y, ok
}

func (t *Transformer) toWorkspace(p Point, from System) Point {
	switch from {
	case Viewport:
		return Point{
			X: p.X/t.view.Zoom + t.view.PanX,
			Y: p.Y/t.view.Zoom + t.view.PanY,
		}
	case Layer:
		return Point{X: p.X + t.placement.OffsetX, Y: p.Y + t.placement.OffsetY}
	}
	return p
}

func (t *Transformer) fromWorkspace(p Point, to System) Point {
	switch to {
	case Viewport:
		return Point{
			X: (p.X - t.view.PanX) * t.view.Zoom,
			Y: (p.Y - t.view.PanY) * t.view.Zoom,
		}
	case Layer:
		return Point{X: p.X - t.placement.OffsetX, Y: p.Y - t.placement.OffsetY}
	}
	return p
}
