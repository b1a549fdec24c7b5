package boundary

import (
	"sort"

	"github.com/ironsheep/selection-engine/internal/mask"
)

// Segment is an axis-aligned line between two mask grid points.
//
// Coordinates are grid-line coordinates, not cell coordinates: a cell
// (x, y) is bounded by the lines x, x+1, y, and y+1. Horizontal
// segments have Y1 == Y2 and X1 < X2; vertical segments have X1 == X2
// and Y1 < Y2.
type Segment struct {
	X1, Y1 int
	X2, Y2 int
}

// Horizontal reports whether the segment runs along a row line.
func (s Segment) Horizontal() bool { return s.Y1 == s.Y2 }

// Length returns the segment length in grid units.
func (s Segment) Length() int {
	if s.Horizontal() {
		return s.X2 - s.X1
	}
	return s.Y2 - s.Y1
}

// span is a run along one grid line during merging.
type span struct {
	line int // y for horizontal runs, x for vertical
	lo   int // start coordinate along the line
	hi   int // end coordinate along the line
}

// Extract computes the merged outline segments of a mask.
//
// A unit edge is emitted on each of the four sides of a selected cell
// whose neighbor on that side is unselected or outside the mask. Runs
// of collinear, endpoint-adjacent unit edges along the same grid line
// are then concatenated, separately for horizontal and vertical edges.
//
// Horizontal segments come first in the result, ordered by (Y1, X1),
// followed by vertical segments ordered by (X1, Y1). An empty mask
// yields an empty slice.
func Extract(m *mask.Mask) []Segment {
	var hspans, vspans []span

	w, h := m.Width(), m.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.At(x, y) {
				continue
			}
			if !m.At(x, y-1) {
				hspans = append(hspans, span{line: y, lo: x, hi: x + 1})
			}
			if !m.At(x, y+1) {
				hspans = append(hspans, span{line: y + 1, lo: x, hi: x + 1})
			}
			if !m.At(x-1, y) {
				vspans = append(vspans, span{line: x, lo: y, hi: y + 1})
			}
			if !m.At(x+1, y) {
				vspans = append(vspans, span{line: x + 1, lo: y, hi: y + 1})
			}
		}
	}

	segments := make([]Segment, 0, len(hspans)+len(vspans))
	for _, s := range mergeSpans(hspans) {
		segments = append(segments, Segment{X1: s.lo, Y1: s.line, X2: s.hi, Y2: s.line})
	}
	for _, s := range mergeSpans(vspans) {
		segments = append(segments, Segment{X1: s.line, Y1: s.lo, X2: s.line, Y2: s.hi})
	}
	return segments
}

// mergeSpans concatenates endpoint-adjacent spans on the same line.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].line != spans[j].line {
			return spans[i].line < spans[j].line
		}
		return spans[i].lo < spans[j].lo
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.line == last.line && s.lo == last.hi {
			last.hi = s.hi
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
