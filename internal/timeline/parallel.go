package timeline

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// RenderAll rasterizes every frame of the schedule across a bounded set of
// workers and returns the frames in order. Frame states come from the
// immutable Schedule, so no sequencing is needed beyond its construction;
// each worker gets its own FrameRenderer because rasterizers keep mutable
// draw state.
func RenderAll(ctx context.Context, sched *Schedule, newRenderer func() FrameRenderer, workers int) ([]image.Image, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > sched.Frames() {
		workers = sched.Frames()
	}

	frames := make([]image.Image, sched.Frames())
	jobs := make(chan int)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fr := newRenderer()
			for idx := range jobs {
				frames[idx] = fr.RenderFrame(sched.At(idx))
			}
		}()
	}

feed:
	for i := 0; i < sched.Frames(); i++ {
		select {
		case <-runCtx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}
