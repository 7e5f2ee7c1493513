// Package scene rasterizes resolved frame states: the 3x3 dot grid colored
// by the field, one morphing capsule per blob slot, and a white wipe square
// per rule cell that is currently on. It owns all shape geometry; the
// timeline owns all state.
package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/roberto-arista/gridloop/internal/ease"
	"github.com/roberto-arista/gridloop/internal/field"
	"github.com/roberto-arista/gridloop/internal/layout"
	"github.com/roberto-arista/gridloop/internal/render"
	"github.com/roberto-arista/gridloop/internal/timeline"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Renderer draws frames onto a Surface. Draw order within a frame is
// background, blobs, dots, rule squares, so the opaque dots sit on top of
// the translucent blobs.
type Renderer struct {
	surface render.Surface
	grid    layout.Grid
	field   *field.Field
	cfg     timeline.Config

	// RuleSide is the rule square edge in pixels. Zero means size/15
	// (80px on the stock 1200px canvas).
	RuleSide float64

	// SkipDots holds grid indices (0..8) left out of the dot pass.
	SkipDots map[int]bool
}

// NewRenderer binds a surface, a color field and the run configuration.
func NewRenderer(surface render.Surface, f *field.Field, cfg timeline.Config) *Renderer {
	return &Renderer{
		surface: surface,
		grid:    layout.New(float64(cfg.Size)),
		field:   f,
		cfg:     cfg,
	}
}

// diameter of a grid dot, also the blob thickness.
func (r *Renderer) diameter() float64 { return float64(r.cfg.Size) * 0.25 }

func (r *Renderer) radius() float64 { return r.diameter() / 2 }

func (r *Renderer) ruleSide() float64 {
	if r.RuleSide > 0 {
		return r.RuleSide
	}
	return float64(r.cfg.Size) / 15
}

// RenderFrame rasterizes one frame state and returns the finished image.
func (r *Renderer) RenderFrame(st timeline.FrameState) image.Image {
	size := r.cfg.Size
	r.surface.Begin(size, size)
	r.surface.SetFill(white)
	r.surface.FillRect(0, 0, float64(size), float64(size))

	for _, b := range st.Blobs {
		r.surface.SetFill(r.field.At(b.XRatio, b.YRatio, r.cfg.BaseOpacity))
		r.blob(b)
	}

	r.dots()

	for row, yr := range layout.GridRatios {
		for col, xr := range layout.GridRatios {
			cell := st.Rules[layout.CellIndex(row, col)]
			if !cell.On {
				continue
			}
			r.surface.SetFill(white)
			p := r.grid.Coordinate(xr, yr)
			side := r.ruleSide()
			r.wipe(p.X-side/2, p.Y-side/2, side, side, cell.Phase)
		}
	}

	return r.surface.Snapshot()
}

func (r *Renderer) dots() {
	for row, yr := range layout.GridRatios {
		for col, xr := range layout.GridRatios {
			if r.SkipDots[layout.CellIndex(row, col)] {
				continue
			}
			r.surface.SetFill(r.field.At(xr, yr, 1))
			p := r.grid.Coordinate(xr, yr)
			r.surface.FillOval(p.X-r.radius(), p.Y-r.radius(), r.diameter(), r.diameter())
		}
	}
}

// blob draws the capsule for one slot. The first half of the cycle grows
// the far edge away from the near anchor; the second half pulls the near
// edge after it, leaving a circle at the far anchor.
func (r *Renderer) blob(st timeline.BlobState) {
	near, far := st.Range.Near, st.Range.Far
	if st.Completion <= 0.5 {
		ratio := ease.ParametricBlend(st.Completion * 2)
		r.capsule(near.X, near.Y, near.Y+(far.Y-near.Y)*ratio)
	} else {
		ratio := ease.ParametricBlend((st.Completion - 0.5) * 2)
		r.capsule(near.X, near.Y+(far.Y-near.Y)*ratio, far.Y)
	}
}

// capsule fills a rounded rect covering dot-sized circles centered at
// (x, yA) and (x, yB), in either vertical order.
func (r *Renderer) capsule(x, yA, yB float64) {
	top := math.Min(yA, yB)
	h := math.Abs(yB-yA) + r.diameter()
	r.surface.FillRoundedRect(x-r.radius(), top-r.radius(), r.diameter(), h, r.radius())
}

// wipe draws the horizontal open-then-close sweep of a rule square.
func (r *Renderer) wipe(x, y, w, h, phase float64) {
	if phase < 0.5 {
		ratio := ease.ParametricBlend(phase * 2)
		r.surface.FillRect(x, y, w*ratio, h)
	} else {
		ratio := ease.ParametricBlend((phase - 0.5) * 2)
		r.surface.FillRect(x+w*ratio, y, w*(1-ratio), h)
	}
}
