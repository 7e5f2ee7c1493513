// Package config loads and validates animation configuration and turns it
// into the engine's runtime types.
package config

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/roberto-arista/gridloop/internal/field"
	"github.com/roberto-arista/gridloop/internal/layout"
	"github.com/roberto-arista/gridloop/internal/timeline"
)

const (
	DefaultCanvasSize  = 1200
	DefaultFPS         = 24
	DefaultDuration    = 12.0
	DefaultBaseOpacity = 0.6
)

type Config struct {
	CanvasSize  int           `yaml:"canvas_size"`
	FPS         int           `yaml:"fps"`
	Duration    float64       `yaml:"duration"` // seconds
	BaseOpacity float64       `yaml:"base_opacity"`
	RuleSide    float64       `yaml:"rule_side"` // pixels; 0 means canvas/15
	Colors      []ColorSample `yaml:"colors"`    // exactly 4 corner samples
	Blobs       BlobConfig    `yaml:"blobs"`
	Rules       [][]RuleSpec  `yaml:"rules"` // 3 rows of 3 cells
	Output      string        `yaml:"output"`
	Format      string        `yaml:"format"` // apng, avi, frames; empty infers from Output
}

// ColorSample is one corner color, channels in [0, 1].
type ColorSample struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// BlobConfig holds per-slot cycle lengths in frames.
type BlobConfig struct {
	Left  int `yaml:"left"`
	Mid   int `yaml:"mid"`
	Right int `yaml:"right"`
}

// RuleSpec is one cell's duty cycle: durations in seconds, initial switch.
type RuleSpec struct {
	Off     float64 `yaml:"off"`
	On      float64 `yaml:"on"`
	StartOn bool    `yaml:"start_on"`
}

func DefaultConfig() *Config {
	return Presets["ember"].clone()
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on anything the engine could only discover
// mid-render: sample counts, channel ranges, table shapes.
func (c *Config) Validate() error {
	if c.CanvasSize <= 0 {
		return fmt.Errorf("config: canvas_size must be positive, got %d", c.CanvasSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %v", c.Duration)
	}
	if len(c.Colors) != 4 {
		return fmt.Errorf("config: need exactly 4 corner colors, got %d", len(c.Colors))
	}
	for _, s := range c.Colors {
		for _, v := range []float64{s.R, s.G, s.B} {
			if v < 0 || v > 1 {
				return fmt.Errorf("config: color channel %v out of [0,1] at (%v,%v)", v, s.X, s.Y)
			}
		}
	}
	if len(c.Rules) != 3 {
		return fmt.Errorf("config: rules must have 3 rows, got %d", len(c.Rules))
	}
	for i, row := range c.Rules {
		if len(row) != 3 {
			return fmt.Errorf("config: rules row %d must have 3 cells, got %d", i, len(row))
		}
	}
	return nil
}

// TotalFrames is the loop length in frames.
func (c *Config) TotalFrames() int {
	return int(c.Duration * float64(c.FPS))
}

// TimelineConfig builds the engine-level run config.
func (c *Config) TimelineConfig() timeline.Config {
	return timeline.Config{
		Size:        c.CanvasSize,
		FPS:         c.FPS,
		Frames:      c.TotalFrames(),
		BaseOpacity: c.BaseOpacity,
	}
}

// Samples converts the corner colors into field samples.
func (c *Config) Samples() []field.Sample {
	samples := make([]field.Sample, len(c.Colors))
	for i, s := range c.Colors {
		samples[i] = field.Sample{
			X:     s.X,
			Y:     s.Y,
			Color: colorful.Color{R: s.R, G: s.G, B: s.B},
		}
	}
	return samples
}

// BlobSlots resolves the three slots against the canvas grid, ordered
// left, mid, right.
func (c *Config) BlobSlots() []timeline.BlobSlot {
	grid := layout.New(float64(c.CanvasSize))
	return []timeline.BlobSlot{
		timeline.NewBlobSlot("left", 0, c.Blobs.Left, grid),
		timeline.NewBlobSlot("mid", 0.5, c.Blobs.Mid, grid),
		timeline.NewBlobSlot("right", 1, c.Blobs.Right, grid),
	}
}

// RuleCells converts the duty table into frame-based cells.
func (c *Config) RuleCells() [9]timeline.RuleCell {
	var cells [9]timeline.RuleCell
	for row, specs := range c.Rules {
		for col, spec := range specs {
			cells[layout.CellIndex(row, col)] =
				timeline.NewRuleCell(row, col, spec.Off, spec.On, spec.StartOn, c.FPS)
		}
	}
	return cells
}
