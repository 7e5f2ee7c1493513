package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Context is a Surface rasterizing through a fogleman/gg drawing context.
// Not safe for concurrent use; parallel renderers allocate one per worker.
type Context struct {
	dc *gg.Context
}

// NewContext returns an empty Context. Begin must be called before drawing.
func NewContext() *Context {
	return &Context{}
}

func (c *Context) Begin(width, height int) {
	c.dc = gg.NewContext(width, height)
}

func (c *Context) SetFill(col color.Color) {
	c.dc.SetColor(col)
}

func (c *Context) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Context) FillOval(x, y, w, h float64) {
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	c.dc.Fill()
}

func (c *Context) FillRoundedRect(x, y, w, h, radius float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Fill()
}

func (c *Context) Snapshot() image.Image {
	return c.dc.Image()
}
