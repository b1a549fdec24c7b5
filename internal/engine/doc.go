// Package engine owns the canonical selection mask and exposes the
// operations the surrounding editor calls.
//
// A SelectionEngine holds exactly one current selection for one layer.
// Rasterizers never touch it directly: every tool gesture produces a
// transient candidate mask that Apply merges in under a combination
// mode. Failed gestures return an error and leave the canonical mask
// untouched; there is no partial mutation.
//
// The whole pipeline per gesture is serial and synchronous on the
// calling goroutine. The only recurring activity is the marching-ants
// phase tick, which the engine's owner drives from its frame clock via
// Tick and which stops being meaningful the moment the selection is
// cleared.
package engine
