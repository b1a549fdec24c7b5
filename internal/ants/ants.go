package ants

import (
	"math"

	"github.com/ironsheep/selection-engine/internal/boundary"
)

// Dash pattern geometry, in grid units.
const (
	// Period is the length of one full light+dark dash cycle.
	Period = 12.0

	// HalfPeriod is the length of a single dash.
	HalfPeriod = Period / 2

	// StepPerTick is how far the phase advances each frame tick.
	StepPerTick = 1.0
)

// State is the animator's lifecycle state.
type State int

const (
	// Idle: no selection, no animation.
	Idle State = iota

	// Animating: a selection exists and the dash phase is advancing.
	Animating
)

// Tone distinguishes the two stroke passes of the outline.
type Tone int

const (
	// Light runs are drawn at the current phase offset.
	Light Tone = iota

	// Dark runs are drawn at the offset shifted by half a period.
	Dark
)

// Run is one constant-tone piece of a boundary segment. Endpoints are
// fractional because dash boundaries fall between grid points.
type Run struct {
	X1, Y1 float64
	X2, Y2 float64
	Tone   Tone
}

// Animator owns the dash phase for the current selection outline.
// The zero value is an Idle animator, ready to use.
type Animator struct {
	state State
	phase float64
}

// State returns the current lifecycle state.
func (a *Animator) State() State { return a.state }

// Phase returns the current dash-phase offset in [0, Period).
func (a *Animator) Phase() float64 { return a.phase }

// Start moves the animator to Animating. Starting an already-running
// animator keeps its phase, so re-applying a selection does not make
// the ants jump.
func (a *Animator) Start() {
	if a.state == Animating {
		return
	}
	a.state = Animating
	a.phase = 0
}

// Stop returns the animator to Idle and resets the phase. The owner
// stops feeding ticks after this; there is no timer handle to cancel.
func (a *Animator) Stop() {
	a.state = Idle
	a.phase = 0
}

// Tick advances the phase by one step, wrapping modulo Period.
// Ticks while Idle are ignored.
func (a *Animator) Tick() {
	if a.state != Animating {
		return
	}
	a.phase = math.Mod(a.phase+StepPerTick, Period)
}

// Dashes splits boundary segments into light and dark runs at the
// current phase.
//
// Walking along each segment, the tone at distance d from its start is
// Light when mod(d+phase, Period) < HalfPeriod and Dark otherwise; a
// run is emitted for every maximal stretch of constant tone. Drawing
// all Light runs in a light stroke and all Dark runs in a dark stroke
// reproduces the two-pass rendering the effect is named for.
func (a *Animator) Dashes(segments []boundary.Segment) []Run {
	var runs []Run
	for _, seg := range segments {
		runs = appendSegmentRuns(runs, seg, a.phase)
	}
	return runs
}

// appendSegmentRuns splits one segment into constant-tone runs.
func appendSegmentRuns(runs []Run, seg boundary.Segment, phase float64) []Run {
	length := float64(seg.Length())
	dx, dy := 0.0, 0.0
	if seg.Horizontal() {
		dx = 1
	} else {
		dy = 1
	}

	pos := 0.0
	for pos < length {
		local := math.Mod(pos+phase, Period)
		tone := Light
		if local >= HalfPeriod {
			tone = Dark
		}
		// Distance to the next dash boundary.
		step := HalfPeriod - math.Mod(local, HalfPeriod)
		end := pos + step
		if end > length {
			end = length
		}
		runs = append(runs, Run{
			X1:   float64(seg.X1) + dx*pos,
			Y1:   float64(seg.Y1) + dy*pos,
			X2:   float64(seg.X1) + dx*end,
			Y2:   float64(seg.Y1) + dy*end,
			Tone: tone,
		})
		pos = end
	}
	return runs
}
