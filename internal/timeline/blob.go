package timeline

import (
	"fmt"

	"github.com/roberto-arista/gridloop/internal/layout"
)

// NewBlobSlot builds a slot whose travel alternates between the lower and
// upper half of the grid column at xRatio, with anchors resolved against
// the given grid.
func NewBlobSlot(name string, xRatio float64, cycleLength int, grid layout.Grid) BlobSlot {
	return BlobSlot{
		Name:        name,
		XRatio:      xRatio,
		CycleLength: cycleLength,
		YRatio:      0.75,
		NextYRatio:  0.25,
		Range: Range{
			Near: grid.Coordinate(xRatio, 0.5),
			Far:  grid.Coordinate(xRatio, 1),
		},
		NextRange: Range{
			Near: grid.Coordinate(xRatio, 0),
			Far:  grid.Coordinate(xRatio, 0.5),
		},
	}
}

func (s BlobSlot) validate() error {
	if s.CycleLength < 2 {
		return fmt.Errorf("%w: slot %q has cycle %d", ErrShortCycle, s.Name, s.CycleLength)
	}
	return nil
}

// StateAt resolves the slot's state for a frame as a pure function of the
// frame index. Each frame renders first and a swap fires after it when the
// frame sits on a cycle boundary, so only boundaries strictly before the
// frame count: frame 0 renders the configured pair, and every boundary
// frame kC still shows the outgoing range at completion 0.
func (s BlobSlot) StateAt(frame int) BlobState {
	swaps := (frame + s.CycleLength - 1) / s.CycleLength
	st := BlobState{
		XRatio:     s.XRatio,
		YRatio:     s.YRatio,
		Range:      s.Range,
		Completion: float64(frame%s.CycleLength) / float64(s.CycleLength),
	}
	if swaps%2 == 1 {
		st.YRatio = s.NextYRatio
		st.Range = s.NextRange
	}
	return st
}

// SwapsAt reports whether a range swap fires at the given frame, after it
// has rendered.
func (s BlobSlot) SwapsAt(frame int) bool {
	return frame%s.CycleLength == 0
}
