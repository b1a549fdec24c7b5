// Package mask implements the binary selection mask and its set algebra.
//
// A Mask is a dense width*height grid of one-byte cells where 0 means
// unselected and 1 means selected. The canonical selection owned by the
// engine is always strictly binary; no other cell values are used.
//
// # Combination Modes
//
// Candidate masks produced by the rasterizers merge into an existing
// selection through one of four modes:
//
//   - ModeNew: replace the selection with the candidate
//   - ModeAdd: cell-wise OR
//   - ModeSubtract: cell-wise AND NOT
//   - ModeIntersect: cell-wise AND
//
// # Dimension Invariant
//
// Every operation combining two masks requires identical dimensions.
// A mismatch is a caller bug (for example, forgetting to reset the
// selection when the active layer changes size) and panics rather than
// silently truncating.
//
// # Morphology
//
// Expand and Contract implement dilation and erosion over a
// Manhattan-distance neighborhood (|dx|+|dy| <= radius). Both are naive
// O(width*height*radius^2) scans; see their documentation for the
// performance ceiling.
package mask
