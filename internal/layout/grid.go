// Package layout maps normalized grid ratios to canvas pixel coordinates.
package layout

import "github.com/roberto-arista/gridloop/internal/ease"

// Ratios of the 3x3 grid on each axis.
var GridRatios = [3]float64{0, 0.5, 1}

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Grid insets an S x S canvas by a margin ratio on every side and maps
// grid ratios into the remaining area. With the default margin of 0.22
// the content occupies the central 56% of each axis.
type Grid struct {
	Size   float64
	Margin float64
}

// New returns a grid for a square canvas of the given size with the
// standard 0.22 margin.
func New(size float64) Grid {
	return Grid{Size: size, Margin: 0.22}
}

// Coordinate maps (xRatio, yRatio) into canvas space. Ratio 0 lands on the
// near margin edge, 1 on the far one.
func (g Grid) Coordinate(xRatio, yRatio float64) Point {
	origin := []float64{0, 0}
	extent := []float64{g.Size, g.Size}
	lo := ease.MultiLerp(origin, extent, g.Margin)
	hi := ease.MultiLerp(origin, extent, 1-g.Margin)
	return Point{
		X: ease.Lerp(lo[0], hi[0], xRatio),
		Y: ease.Lerp(lo[1], hi[1], yRatio),
	}
}

// CellIndex flattens a (row, col) pair into the 0..8 grid index.
func CellIndex(row, col int) int {
	return row*3 + col
}
