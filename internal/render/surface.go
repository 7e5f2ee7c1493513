// Package render defines the drawing surface the scene draws onto and
// provides the production rasterizer backed by fogleman/gg. The engine
// itself never touches pixels; everything goes through Surface.
package render

import (
	"image"
	"image/color"
)

// Surface accumulates one frame of filled shapes. Begin resets the surface
// for a new frame; Snapshot returns the finished frame image. Oval and
// rounded-rect coordinates name the shape's bounding box, x/y its top-left.
type Surface interface {
	Begin(width, height int)
	SetFill(c color.Color)
	FillRect(x, y, w, h float64)
	FillOval(x, y, w, h float64)
	FillRoundedRect(x, y, w, h, radius float64)
	Snapshot() image.Image
}
