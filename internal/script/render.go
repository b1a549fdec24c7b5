package script

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/selection-engine/internal/ants"
	"github.com/ironsheep/selection-engine/internal/engine"
)

// RenderOverlay composites the engine's selection overlay onto the
// source image so selected pixels show the half-alpha white tint.
func RenderOverlay(base image.Image, e *engine.SelectionEngine) *image.NRGBA {
	return imaging.Overlay(base, e.MaskSnapshot(), image.Point{}, 1.0)
}

// RenderOutline draws the marching-ants outline at the current phase
// onto a copy of the source image: light runs in white, dark runs in
// black.
func RenderOutline(base image.Image, e *engine.SelectionEngine) *image.RGBA {
	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)

	light := color.RGBA{255, 255, 255, 255}
	dark := color.RGBA{0, 0, 0, 255}
	for _, run := range e.DashRuns() {
		c := light
		if run.Tone == ants.Dark {
			c = dark
		}
		drawRun(out, run, c)
	}
	return out
}

// drawRun plots one axis-aligned dash run. Grid-line coordinates are
// clamped onto the nearest pixel row/column so outlines along the
// right and bottom borders stay visible.
func drawRun(img *image.RGBA, run ants.Run, c color.RGBA) {
	b := img.Bounds()
	if run.Y1 == run.Y2 {
		y := clampLine(int(run.Y1), b.Min.Y, b.Max.Y)
		x0 := int(math.Floor(run.X1))
		x1 := int(math.Ceil(run.X2))
		for x := x0; x < x1; x++ {
			if x >= b.Min.X && x < b.Max.X {
				img.SetRGBA(x, y, c)
			}
		}
		return
	}
	x := clampLine(int(run.X1), b.Min.X, b.Max.X)
	y0 := int(math.Floor(run.Y1))
	y1 := int(math.Ceil(run.Y2))
	for y := y0; y < y1; y++ {
		if y >= b.Min.Y && y < b.Max.Y {
			img.SetRGBA(x, y, c)
		}
	}
}

// clampLine maps a grid line onto a drawable pixel index in [min, max).
func clampLine(v, min, max int) int {
	if v < min {
		return min
	}
	if v >= max {
		return max - 1
	}
	return v
}
