// Package coords converts pointer positions between the three nested
// coordinate systems of the editor: viewport (what the user sees,
// affected by pan and zoom), workspace (the logical canvas), and layer
// (a single layer's own pixel grid).
//
// Every selection tool operates in layer-pixel space; the Transformer
// is how raw pointer positions get there without the tools knowing
// anything about pan or zoom.
package coords
