package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FrameDirSink writes each frame as a numbered PNG into a directory,
// suitable for piping into ffmpeg or similar.
type FrameDirSink struct {
	dir  string
	next int
}

// NewFrameDir creates the directory if needed.
func NewFrameDir(dir string) (*FrameDirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FrameDirSink{dir: dir}, nil
}

func (s *FrameDirSink) Append(img image.Image) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", s.next))
	s.next++

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func (s *FrameDirSink) Close() error { return nil }
