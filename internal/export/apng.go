package export

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/setanarut/apng"
)

// APNGSink buffers frames and encodes a looping animated PNG on Close.
type APNGSink struct {
	path   string
	delay  uint16 // per-frame delay in centiseconds
	frames []image.Image
}

// NewAPNG returns a sink writing to path. The APNG delay granularity is
// 1/100s, so frame rates that don't divide 100 get a rounded delay.
func NewAPNG(path string, fps int) *APNGSink {
	delay := uint16(math.Round(100 / float64(fps)))
	if delay == 0 {
		delay = 1
	}
	return &APNGSink{path: path, delay: delay}
}

func (s *APNGSink) Append(img image.Image) error {
	s.frames = append(s.frames, img)
	return nil
}

func (s *APNGSink) Close() error {
	if len(s.frames) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}

	delays := make([]uint16, len(s.frames))
	for i := range delays {
		delays[i] = s.delay
	}

	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	anim := apng.APNG{Images: s.frames, Delays: delays}
	if err := apng.EncodeAll(file, &anim); err != nil {
		return fmt.Errorf("export: apng encode: %w", err)
	}
	return nil
}
