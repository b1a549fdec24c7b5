// Package boundary derives outline geometry from a selection mask.
//
// Extract walks the mask once, emitting a unit-length axis-aligned
// edge wherever a selected cell meets an unselected cell or the mask
// border, then merges collinear endpoint-adjacent edges into longer
// segments so the outline renderer issues far fewer draw calls.
//
// Extraction is a pure function of the mask and costs O(width*height),
// so Cache memoizes the result keyed by a mask revision counter;
// repeated renders of an unchanged selection never re-scan the grid.
package boundary
