// Package pixel implements the 1-bit color and image types used by
// two-color e-paper scan memories.
//
// The types are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
