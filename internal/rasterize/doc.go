// Package rasterize turns tool gestures into candidate selection masks.
//
// Each of the five tools has one entry point producing a fresh
// *mask.Mask sized to the layer, or an error when the gesture is
// degenerate (path too short, shape below the minimum size, seed point
// outside the image). Candidates are transient: the selection engine
// consumes them immediately through its combination modes and they are
// never kept.
//
// The rasterizers are policy-free. Tolerance heuristics, combination
// modes, and canonical-mask ownership all live in the engine layer;
// this package only answers "which cells does this gesture cover".
package rasterize
