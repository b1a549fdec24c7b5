// Package pixels provides read-only access to the rasterized pixel
// content of the layer being edited.
//
// A Source wraps a flat width*height RGBA byte buffer. The selection
// engine only ever reads it: sampling individual pixels for the magic
// wand and measuring color distance between samples. Out-of-bounds
// sampling is reported through an ok flag, never an error, because
// tools routinely probe coordinates near the image border.
//
// Color distance is Euclidean over the RGB channels in 0-255 units;
// alpha is deliberately excluded so uniformly opaque images behave
// consistently.
package pixels
