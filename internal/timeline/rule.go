package timeline

import "fmt"

// NewRuleCell converts per-cell durations from seconds to frames. Both
// durations must come out to at least 2 frames.
func NewRuleCell(row, col int, offSeconds, onSeconds float64, on bool, fps int) RuleCell {
	return RuleCell{
		Row:       row,
		Col:       col,
		OffFrames: int(offSeconds * float64(fps)),
		OnFrames:  int(onSeconds * float64(fps)),
		On:        on,
	}
}

func (c RuleCell) validate() error {
	if c.OnFrames < 2 || c.OffFrames < 2 {
		return fmt.Errorf("%w: cell (%d,%d) has on=%d off=%d",
			ErrShortDuty, c.Row, c.Col, c.OnFrames, c.OffFrames)
	}
	return nil
}

// advance applies the cell's toggle rule for one frame and returns the next
// switch state. Both checks run in order and the off-check sees the result
// of the on-check, so a cell that just switched off can switch straight
// back on within the same frame when the off-phase happens to be at its
// last index.
//
// The toggle fires at frame mod duration == duration−1, one frame before a
// naive full-cycle check. The phase is the global frame index, not the time
// since the last toggle; this is what de-synchronizes the blinking.
func (c RuleCell) advance(on bool, frame int) bool {
	if on && frame%c.OnFrames == c.OnFrames-1 {
		on = false
	}
	if !on && frame%c.OffFrames == c.OffFrames-1 {
		on = true
	}
	return on
}

// stateFor resolves the rendered state for a frame given the switch value
// carried into it.
func (c RuleCell) stateFor(on bool, frame int) RuleState {
	return RuleState{
		On:    on,
		Phase: float64(frame%c.OnFrames) / float64(c.OnFrames),
	}
}
