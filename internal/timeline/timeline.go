package timeline

import "context"

// Timeline orchestrates a render run: it owns the slot and cell
// collections, validates them up front, and walks the frame loop.
type Timeline struct {
	cfg       Config
	blobs     []BlobSlot
	rules     [9]RuleCell
	observers []Observer
	sched     *Schedule
}

// New validates the configuration and builds the frame schedule.
// Every configuration problem is fatal here; Run cannot fail on config.
func New(cfg Config, blobs []BlobSlot, rules [9]RuleCell) (*Timeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for _, s := range blobs {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	for _, c := range rules {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}

	return &Timeline{
		cfg:   cfg,
		blobs: blobs,
		rules: rules,
		sched: NewSchedule(blobs, rules, cfg.Frames),
	}, nil
}

func (t *Timeline) AddObserver(o Observer) { t.observers = append(t.observers, o) }

// Config returns the run configuration.
func (t *Timeline) Config() Config { return t.cfg }

// Schedule exposes the precomputed per-frame states, for inspection and
// for out-of-order rendering.
func (t *Timeline) Schedule() *Schedule { return t.sched }

// Run renders every frame in order and hands each to the sink. The context
// is checked once per frame; cancellation aborts the run mid-sequence.
func (t *Timeline) Run(ctx context.Context, fr FrameRenderer, sink Sink) error {
	for i := 0; i < t.cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		st := t.sched.At(i)
		if err := sink.Append(fr.RenderFrame(st)); err != nil {
			return err
		}
		for _, o := range t.observers {
			o.OnFrame(st)
		}
	}
	return nil
}
