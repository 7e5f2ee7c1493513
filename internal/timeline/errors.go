package timeline

import "errors"

// Configuration errors. All of them surface at construction; a Timeline
// that was built successfully cannot fail validation mid-render.
var (
	// ErrCanvasSize indicates a non-positive canvas size.
	ErrCanvasSize = errors.New("timeline: canvas size must be positive")

	// ErrFrameRate indicates a non-positive frame rate.
	ErrFrameRate = errors.New("timeline: frame rate must be positive")

	// ErrFrameCount indicates a run of zero frames.
	ErrFrameCount = errors.New("timeline: total frames must be positive")

	// ErrShortCycle indicates a blob cycle shorter than 2 frames.
	ErrShortCycle = errors.New("timeline: blob cycle must span at least 2 frames")

	// ErrShortDuty indicates a rule on or off duration shorter than 2 frames.
	// One-frame durations would divide by zero in the toggle check.
	ErrShortDuty = errors.New("timeline: rule durations must span at least 2 frames")

	// ErrOpacity indicates a base opacity outside [0, 1].
	ErrOpacity = errors.New("timeline: base opacity must be within [0, 1]")
)
