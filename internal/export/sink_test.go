package export

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func testFrame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 8, 8))
}

func TestForPathInference(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want interface{}
	}{
		{"png is apng", filepath.Join(dir, "loop.png"), &APNGSink{}},
		{"uppercase ext", filepath.Join(dir, "LOOP.PNG"), &APNGSink{}},
		{"plain dir", filepath.Join(dir, "frames"), &FrameDirSink{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := ForPath(tt.path, "", 8, 24)
			if err != nil {
				t.Fatalf("ForPath failed: %v", err)
			}
			switch tt.want.(type) {
			case *APNGSink:
				if _, ok := sink.(*APNGSink); !ok {
					t.Errorf("expected APNG sink, got %T", sink)
				}
			case *FrameDirSink:
				if _, ok := sink.(*FrameDirSink); !ok {
					t.Errorf("expected frame dir sink, got %T", sink)
				}
			}
		})
	}
}

func TestForPathUnknownFormat(t *testing.T) {
	if _, err := ForPath("out.png", "webm", 8, 24); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFrameDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := NewFrameDir(dir)
	if err != nil {
		t.Fatalf("NewFrameDir failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := sink.Append(testFrame()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 frame files, got %d", len(entries))
	}
	if entries[0].Name() != "frame_0000.png" {
		t.Errorf("unexpected first frame name %s", entries[0].Name())
	}
}

func TestAPNGSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.png")
	sink := NewAPNG(path, 24)

	for i := 0; i < 4; i++ {
		if err := sink.Append(testFrame()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestAPNGSinkEmpty(t *testing.T) {
	sink := NewAPNG(filepath.Join(t.TempDir(), "loop.png"), 24)
	if err := sink.Close(); err == nil {
		t.Error("expected error closing an empty sink")
	}
}

func TestAPNGDelayRounding(t *testing.T) {
	tests := []struct {
		fps  int
		want uint16
	}{
		{24, 4},  // 4.16cs rounds down
		{25, 4},
		{10, 10},
		{200, 1}, // never zero
	}

	for _, tt := range tests {
		sink := NewAPNG("x.png", tt.fps)
		if sink.delay != tt.want {
			t.Errorf("fps %d: delay = %d, want %d", tt.fps, sink.delay, tt.want)
		}
	}
}
