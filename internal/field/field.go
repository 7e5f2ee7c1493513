// Package field builds a continuous color field over the unit square from
// four corner samples. Each RGB channel is interpolated independently by an
// Interpolator; the default implementation is bilinear, which reproduces the
// sample values exactly at the corners.
package field

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/roberto-arista/gridloop/internal/ease"
)

// Sample anchors a color at a normalized location. The field requires its
// samples to sit exactly on the four unit-square corners.
type Sample struct {
	X, Y  float64
	Color colorful.Color
}

// Interpolator evaluates one scalar channel at a normalized location.
// Implementations must reproduce their control values exactly at the
// control-point locations.
type Interpolator interface {
	Evaluate(x, y float64) float64
}

// bilinear interpolates between four corner values of the unit square.
type bilinear struct {
	v00, v10, v01, v11 float64 // indexed vXY
}

func (b bilinear) Evaluate(x, y float64) float64 {
	bottom := ease.Lerp(b.v00, b.v10, x)
	top := ease.Lerp(b.v01, b.v11, x)
	return ease.Lerp(bottom, top, y)
}

// Field evaluates RGB colors over the unit square.
type Field struct {
	r, g, b Interpolator
}

func cornerKey(x, y float64) (int, bool) {
	switch {
	case x == 0 && y == 0:
		return 0, true
	case x == 1 && y == 0:
		return 1, true
	case x == 0 && y == 1:
		return 2, true
	case x == 1 && y == 1:
		return 3, true
	}
	return 0, false
}

// New builds a field from exactly four corner samples, one per corner of the
// unit square, in any order.
func New(samples []Sample) (*Field, error) {
	if len(samples) != 4 {
		return nil, fmt.Errorf("field: need exactly 4 corner samples, got %d", len(samples))
	}

	var r, g, b [4]float64
	var seen [4]bool
	for _, s := range samples {
		key, ok := cornerKey(s.X, s.Y)
		if !ok {
			return nil, fmt.Errorf("field: sample at (%v, %v) is not a unit-square corner", s.X, s.Y)
		}
		if seen[key] {
			return nil, fmt.Errorf("field: duplicate sample at corner (%v, %v)", s.X, s.Y)
		}
		seen[key] = true
		r[key] = s.Color.R
		g[key] = s.Color.G
		b[key] = s.Color.B
	}

	mk := func(v [4]float64) Interpolator {
		return bilinear{v00: v[0], v10: v[1], v01: v[2], v11: v[3]}
	}
	return &Field{r: mk(r), g: mk(g), b: mk(b)}, nil
}

// ColorAt evaluates the field at a normalized location.
func (f *Field) ColorAt(x, y float64) colorful.Color {
	return colorful.Color{
		R: f.r.Evaluate(x, y),
		G: f.g.Evaluate(x, y),
		B: f.b.Evaluate(x, y),
	}
}

// At evaluates the field and attaches an opacity. Opacity is passed through,
// never interpolated.
func (f *Field) At(x, y, opacity float64) color.NRGBA {
	c := f.ColorAt(x, y).Clamped()
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(opacity),
	}
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
