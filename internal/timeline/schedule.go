package timeline

// Schedule answers per-frame states without replaying prior frames. Blob
// states are closed-form in the frame index; rule states depend on toggle
// history, so the switch value carried into every frame is precomputed once
// by an O(frames) replay. A Schedule is immutable after construction and
// safe for concurrent readers.
type Schedule struct {
	frames int
	blobs  []BlobSlot
	rules  [9]RuleCell
	ruleOn [][9]bool // switch value entering each frame
}

// NewSchedule replays the rule toggle history for the whole run.
func NewSchedule(blobs []BlobSlot, rules [9]RuleCell, frames int) *Schedule {
	s := &Schedule{
		frames: frames,
		blobs:  blobs,
		rules:  rules,
		ruleOn: make([][9]bool, frames),
	}

	var on [9]bool
	for i, c := range rules {
		on[i] = c.On
	}
	for f := 0; f < frames; f++ {
		s.ruleOn[f] = on
		for i, c := range rules {
			on[i] = c.advance(on[i], f)
		}
	}
	return s
}

// Frames returns the total frame count.
func (s *Schedule) Frames() int { return s.frames }

// At resolves the full state rendered for one frame.
func (s *Schedule) At(frame int) FrameState {
	st := FrameState{
		Index: frame,
		Blobs: make([]BlobState, len(s.blobs)),
	}
	for i, slot := range s.blobs {
		st.Blobs[i] = slot.StateAt(frame)
	}
	for i, cell := range s.rules {
		st.Rules[i] = cell.stateFor(s.ruleOn[frame][i], frame)
	}
	return st
}
