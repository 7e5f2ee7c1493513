// Package export writes finished frame sequences to disk. Sinks consume
// frames one by one so streaming formats never hold the whole run in
// memory; the APNG sink necessarily buffers, since the encoder needs every
// frame before it can write the animation control chunks.
package export

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Sink receives frames in order and finalizes the output on Close.
type Sink interface {
	Append(img image.Image) error
	Close() error
}

// ForPath picks a sink for the output path. An empty format infers from
// the extension: .png becomes a looping APNG, .avi an MJPEG video, and
// anything else a directory of numbered PNG frames.
func ForPath(path, format string, size, fps int) (Sink, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png":
			format = "apng"
		case ".avi":
			format = "avi"
		default:
			format = "frames"
		}
	}

	switch format {
	case "apng":
		return NewAPNG(path, fps), nil
	case "avi":
		return NewAVI(path, size, fps)
	case "frames":
		return NewFrameDir(path)
	default:
		return nil, fmt.Errorf("export: unknown format %q", format)
	}
}
