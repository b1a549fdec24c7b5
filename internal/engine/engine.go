package engine

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/selection-engine/internal/ants"
	"github.com/ironsheep/selection-engine/internal/boundary"
	"github.com/ironsheep/selection-engine/internal/mask"
	"github.com/ironsheep/selection-engine/internal/pixels"
)

// Snapshot is the renderable state handed to change observers after a
// selection mutation commits.
type Snapshot struct {
	// HasSelection mirrors SelectionEngine.HasSelection at commit time.
	HasSelection bool

	// Area is the number of selected cells.
	Area int

	// Overlay is the alpha-encoded RGBA rendering of the mask
	// (selected cells white at half alpha). Fully transparent when no
	// selection exists.
	Overlay *image.RGBA
}

// SelectionEngine owns the canonical selection mask for one layer.
//
// Construct with New or NewFromImage. A nil canonical mask means "no
// selection"; an all-zero mask is never stored, it normalizes to nil.
type SelectionEngine struct {
	width  int
	height int
	src    *pixels.Source

	canonical *mask.Mask
	revision  uint64

	cache    boundary.Cache
	animator ants.Animator

	observers []func(Snapshot)
}

// New creates an engine for a layer of the given pixel dimensions with
// no pixel source attached; the magic wand is unavailable until
// SetSource is called. Returns an error for non-positive dimensions.
func New(width, height int) (*SelectionEngine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid layer dimensions %dx%d", width, height)
	}
	return &SelectionEngine{width: width, height: height}, nil
}

// NewFromImage creates an engine sized to the image and attaches its
// pixels as the wand's source. Panics on an empty image, which is a
// caller bug under the dimension invariant.
func NewFromImage(img image.Image) *SelectionEngine {
	src := pixels.FromImage(img)
	e, err := New(src.Width(), src.Height())
	if err != nil {
		panic(fmt.Sprintf("selection: %v", err))
	}
	e.src = src
	return e
}

// SetSource attaches (or replaces) the layer's pixel source.
//
// When the source dimensions differ from the engine's, the engine
// adopts the new dimensions and discards the current selection: a
// dimension change means the layer was swapped or resized, and a mask
// of the old size would violate the size invariant. Passing nil
// detaches the source (magic wand becomes unavailable) without
// touching the selection.
func (e *SelectionEngine) SetSource(src *pixels.Source) {
	if src == nil {
		e.src = nil
		return
	}
	if src.Width() != e.width || src.Height() != e.height {
		e.width = src.Width()
		e.height = src.Height()
		e.discard()
		e.notify()
	}
	e.src = src
}

// Width returns the layer width the engine is bound to.
func (e *SelectionEngine) Width() int { return e.width }

// Height returns the layer height the engine is bound to.
func (e *SelectionEngine) Height() int { return e.height }

// OnChange registers an observer called synchronously after every
// committed selection mutation, with the mutation already visible.
func (e *SelectionEngine) OnChange(fn func(Snapshot)) {
	e.observers = append(e.observers, fn)
}

// Apply merges a candidate mask into the canonical selection.
//
// With ModeNew, or when no selection exists yet, the canonical mask
// becomes a copy of the candidate. Otherwise the candidate combines
// cell-wise under the given mode. A result with no selected cells
// normalizes to "no selection".
//
// The candidate's dimensions must match the engine's; a mismatch is an
// invariant violation and panics (the owner forgot to reset on a layer
// change). Observers are notified after the commit.
func (e *SelectionEngine) Apply(candidate *mask.Mask, mode mask.Mode) {
	if candidate.Width() != e.width || candidate.Height() != e.height {
		panic(fmt.Sprintf("selection: candidate %dx%d does not match layer %dx%d",
			candidate.Width(), candidate.Height(), e.width, e.height))
	}

	if e.canonical == nil || mode == mask.ModeNew {
		e.canonical = candidate.Clone()
	} else {
		e.canonical.Combine(candidate, mode)
	}
	e.commit()
}

// Clear discards the selection.
func (e *SelectionEngine) Clear() {
	e.discard()
	e.notify()
}

// Invert toggles every cell. Inverting "no selection" selects the full
// layer; inverting a full selection clears it (via normalization).
func (e *SelectionEngine) Invert() {
	if e.canonical == nil {
		e.canonical = mask.New(e.width, e.height)
		e.canonical.Fill()
	} else {
		e.canonical.Invert()
	}
	e.commit()
}

// SelectAll selects the full layer.
func (e *SelectionEngine) SelectAll() {
	e.canonical = mask.New(e.width, e.height)
	e.canonical.Fill()
	e.commit()
}

// HasSelection reports whether any cell is selected.
func (e *SelectionEngine) HasSelection() bool {
	return e.canonical != nil
}

// Area returns the number of selected cells, 0 when no selection
// exists.
func (e *SelectionEngine) Area() int {
	if e.canonical == nil {
		return 0
	}
	return e.canonical.Area()
}

// Expand dilates the selection by radius using the Manhattan
// neighborhood. A no-op without a selection; negative radii are
// rejected. See mask.Expand for the performance ceiling.
func (e *SelectionEngine) Expand(radius int) error {
	if radius < 0 {
		return fmt.Errorf("expand: negative radius %d", radius)
	}
	if e.canonical == nil {
		return nil
	}
	e.canonical = e.canonical.Expand(radius)
	e.commit()
	return nil
}

// Contract erodes the selection by radius. A selection thinner than
// the radius vanishes entirely, normalizing to "no selection".
func (e *SelectionEngine) Contract(radius int) error {
	if radius < 0 {
		return fmt.Errorf("contract: negative radius %d", radius)
	}
	if e.canonical == nil {
		return nil
	}
	e.canonical = e.canonical.Contract(radius)
	e.commit()
	return nil
}

// BoundarySegments returns the merged outline segments of the current
// selection, nil when none exists. Results are cached per revision, so
// repeated calls between mutations do not re-scan the mask.
func (e *SelectionEngine) BoundarySegments() []boundary.Segment {
	if e.canonical == nil {
		return nil
	}
	return e.cache.Segments(e.revision, e.canonical)
}

// MaskSnapshot returns the selection rendered as an alpha-encoded RGBA
// overlay at layer scale: selected cells white at half alpha,
// unselected fully transparent. Always non-nil; without a selection it
// is fully transparent.
func (e *SelectionEngine) MaskSnapshot() *image.RGBA {
	if e.canonical == nil {
		return image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	}
	return e.canonical.Overlay()
}

// OverlaySnapshot returns the overlay scaled for a zoomed viewport.
// Nearest-neighbor resampling keeps mask pixels hard-edged instead of
// feathering the selection boundary. Zoom must be positive.
func (e *SelectionEngine) OverlaySnapshot(zoom float64) (image.Image, error) {
	if zoom <= 0 {
		return nil, fmt.Errorf("invalid zoom factor %v", zoom)
	}
	base := e.MaskSnapshot()
	if zoom == 1 {
		return base, nil
	}
	w := int(float64(e.width) * zoom)
	h := int(float64(e.height) * zoom)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(base, w, h, imaging.NearestNeighbor), nil
}

// Tick advances the marching-ants phase by one frame step. Call once
// per frame while AnimationState is Animating.
func (e *SelectionEngine) Tick() {
	e.animator.Tick()
}

// AnimationState reports whether the outline animation is running.
func (e *SelectionEngine) AnimationState() ants.State {
	return e.animator.State()
}

// DashRuns returns the outline split into light and dark dash runs at
// the current animation phase. Nil when no selection exists.
func (e *SelectionEngine) DashRuns() []ants.Run {
	segs := e.BoundarySegments()
	if segs == nil {
		return nil
	}
	return e.animator.Dashes(segs)
}

// commit normalizes, bumps the revision, syncs the animator, and
// notifies observers. Every mutation path funnels through here.
func (e *SelectionEngine) commit() {
	if e.canonical != nil && e.canonical.Empty() {
		e.canonical = nil
	}
	e.revision++
	if e.canonical == nil {
		e.cache.Invalidate()
		e.animator.Stop()
	} else {
		e.animator.Start()
	}
	e.notify()
}

// discard drops the selection without treating it as a mutation
// needing normalization.
func (e *SelectionEngine) discard() {
	e.canonical = nil
	e.revision++
	e.cache.Invalidate()
	e.animator.Stop()
}

// notify calls every observer with the committed state.
func (e *SelectionEngine) notify() {
	if len(e.observers) == 0 {
		return
	}
	snap := Snapshot{
		HasSelection: e.HasSelection(),
		Area:         e.Area(),
		Overlay:      e.MaskSnapshot(),
	}
	for _, fn := range e.observers {
		fn(snap)
	}
}
