package timeline

import (
	"fmt"
	"image"

	"github.com/roberto-arista/gridloop/internal/layout"
)

// Config holds the run-level settings of a Timeline.
type Config struct {
	Size        int     // canvas edge in pixels (square)
	FPS         int     // frames per second
	Frames      int     // total frames in the loop
	BaseOpacity float64 // blob opacity; dots are always opaque
}

// DefaultConfig mirrors the stock 1200px, 24fps, 12s loop.
func DefaultConfig() Config {
	return Config{
		Size:        1200,
		FPS:         24,
		Frames:      24 * 12,
		BaseOpacity: 0.6,
	}
}

// Range is a blob's travel segment between two canvas anchor points.
type Range struct {
	Near, Far layout.Point
}

// BlobSlot configures one oscillator. YRatio/Range and their Next
// counterparts swap after every cycle-boundary frame renders, so the
// configured values are the first rendered state and each boundary frame
// still shows the outgoing range at completion 0.
type BlobSlot struct {
	Name        string
	XRatio      float64
	CycleLength int
	YRatio      float64
	NextYRatio  float64
	Range       Range
	NextRange   Range
}

// BlobState is a slot's resolved state for a single frame.
type BlobState struct {
	XRatio     float64
	YRatio     float64
	Range      Range
	Completion float64 // (frame mod cycle) / cycle, in [0, 1)
}

// RuleCell configures one duty-cycle blinker. Durations are in frames and
// must both be at least 2. On is the initial switch state.
type RuleCell struct {
	Row, Col  int
	OffFrames int
	OnFrames  int
	On        bool
}

// Ratios returns the cell's grid ratios.
func (c RuleCell) Ratios() (xRatio, yRatio float64) {
	return layout.GridRatios[c.Col], layout.GridRatios[c.Row]
}

// RuleState is a cell's resolved state for a single frame. Phase is only
// meaningful while On.
type RuleState struct {
	On    bool
	Phase float64 // (frame mod onFrames) / onFrames, in [0, 1)
}

// FrameState bundles every mutable state resolved for one frame.
type FrameState struct {
	Index int
	Blobs []BlobState
	Rules [9]RuleState
}

// FrameRenderer rasterizes one frame state into an image.
type FrameRenderer interface {
	RenderFrame(st FrameState) image.Image
}

// Sink receives finished frames in order.
type Sink interface {
	Append(img image.Image) error
}

// Observer is notified after each frame is rendered and appended.
type Observer interface {
	OnFrame(st FrameState)
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w, got %d", ErrCanvasSize, c.Size)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w, got %d", ErrFrameRate, c.FPS)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w, got %d", ErrFrameCount, c.Frames)
	}
	if c.BaseOpacity < 0 || c.BaseOpacity > 1 {
		return fmt.Errorf("%w, got %v", ErrOpacity, c.BaseOpacity)
	}
	return nil
}
