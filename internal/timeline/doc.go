// Package timeline drives the frame-by-frame evolution of the looping
// animation: the vertically traveling blob per horizontal slot, the
// independently blinking rule square per grid cell, and the loop that
// turns both into a fixed-length frame sequence.
//
// The package defines the engine's fundamental types:
//
//   - [BlobSlot]: oscillator config for one horizontal slot
//   - [RuleCell]: duty-cycle config for one grid cell
//   - [Schedule]: per-frame states precomputed once, answered in O(1)
//   - [Timeline]: orchestrates a render run
//
// # Example
//
//	tl, _ := timeline.New(cfg, blobs, rules)
//	err := tl.Run(ctx, renderer, sink)
//
// # Thread safety
//
// Timeline instances are not safe for concurrent use. [RenderAll] renders
// frames in parallel by reading a Schedule, which is immutable once built.
package timeline
