package boundary

import (
	"sync"

	"github.com/ironsheep/selection-engine/internal/mask"
)

// Cache memoizes the extracted segments of the most recent mask
// revision.
//
// The owner of the canonical mask bumps a revision counter on every
// mutation; Segments re-extracts only when the requested revision
// differs from the cached one, so redrawing an unchanged selection is
// free. Only the latest revision is kept, which matches the single
// "current selection" lifecycle.
//
// Cache is safe for concurrent readers, mirroring the locking of the
// rest of the engine's shared lookups, though the selection pipeline
// itself is serial.
type Cache struct {
	mu       sync.RWMutex
	revision uint64
	valid    bool
	segments []Segment
}

// Segments returns the merged outline segments of m, extracting them
// only if revision differs from the cached revision.
func (c *Cache) Segments(revision uint64, m *mask.Mask) []Segment {
	c.mu.RLock()
	if c.valid && c.revision == revision {
		segs := c.segments
		c.mu.RUnlock()
		return segs
	}
	c.mu.RUnlock()

	segs := Extract(m)

	c.mu.Lock()
	c.revision = revision
	c.segments = segs
	c.valid = true
	c.mu.Unlock()

	return segs
}

// Invalidate drops the cached segments, forcing the next Segments call
// to re-extract. Used when the mask is discarded entirely.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.segments = nil
	c.mu.Unlock()
}
