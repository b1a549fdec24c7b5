// Package script drives a SelectionEngine from a line-oriented gesture
// script, one command per line.
//
// It exists for the demo binary and for exercising the whole pipeline
// end to end: each line names a tool gesture or engine operation,
// executes it synchronously, and yields a short status string. Rejected
// gestures (degenerate shapes, short paths, out-of-bounds seeds) are
// reported and skipped rather than aborting the run, mirroring how an
// editor surfaces a no-op.
//
// # Commands
//
//	wand X Y TOLERANCE MODE
//	rect LEFT TOP RIGHT BOTTOM MODE
//	ellipse CX CY RX RY MODE
//	lasso MODE X1 Y1 X2 Y2 X3 Y3 ...
//	brush RADIUS MODE X1 Y1 ...
//	invert | clear | selectall
//	expand RADIUS | contract RADIUS
//	tick N
//	status
//
// MODE is one of new, add, subtract, intersect. Blank lines and lines
// starting with # are ignored.
package script
