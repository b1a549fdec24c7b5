// Package ants produces the animated "marching ants" outline state.
//
// The Animator is a two-state machine: Idle while no selection exists,
// Animating while one does. Each frame tick advances a dash-phase
// offset that wraps modulo the dash period. Rendering splits the
// boundary segments into alternating light and dark runs, with the
// dark runs offset by half a period, which yields the classic two-tone
// crawling effect when drawn every frame.
//
// The animator holds no timers of its own: whoever drives the frame
// clock calls Tick while the animator is running and simply stops
// calling once Stop puts it back to Idle, so there is nothing to leak
// on teardown.
package ants
