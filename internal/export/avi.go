package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// AVISink streams frames into an MJPEG AVI container, JPEG-encoding each
// frame as it arrives.
type AVISink struct {
	writer  mjpeg.AviWriter
	buf     bytes.Buffer
	quality int
}

// NewAVI opens an AVI writer for a square canvas at the given frame rate.
func NewAVI(path string, size, fps int) (*AVISink, error) {
	aw, err := mjpeg.New(path, int32(size), int32(size), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("export: avi writer: %w", err)
	}
	return &AVISink{writer: aw, quality: 95}, nil
}

func (s *AVISink) Append(img image.Image) error {
	s.buf.Reset()
	if err := jpeg.Encode(&s.buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return fmt.Errorf("export: jpeg encode: %w", err)
	}
	if err := s.writer.AddFrame(s.buf.Bytes()); err != nil {
		return fmt.Errorf("export: add frame: %w", err)
	}
	return nil
}

func (s *AVISink) Close() error {
	return s.writer.Close()
}
