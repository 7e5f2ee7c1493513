package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CanvasSize != 1200 {
		t.Errorf("expected canvas 1200, got %d", cfg.CanvasSize)
	}
	if cfg.FPS != 24 {
		t.Errorf("expected 24 fps, got %d", cfg.FPS)
	}
	if cfg.TotalFrames() != 288 {
		t.Errorf("expected 288 frames for 12s at 24fps, got %d", cfg.TotalFrames())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("drift")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Blobs.Mid != 96 {
		t.Errorf("expected mid cycle 96, got %d", cfg.Blobs.Mid)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAllValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestGetPresetIsACopy(t *testing.T) {
	cfg := GetPreset("ember")
	cfg.Colors[0].R = 0
	cfg.Rules[0][0].Off = 99

	if Presets["ember"].Colors[0].R == 0 {
		t.Error("mutating a preset copy leaked into the shared table")
	}
	if Presets["ember"].Rules[0][0].Off == 99 {
		t.Error("mutating a preset copy's rules leaked into the shared table")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")
	data := []byte("canvas_size: 600\nfps: 12\nduration: 2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CanvasSize != 600 || cfg.FPS != 12 || cfg.Duration != 2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// untouched fields keep defaults
	if len(cfg.Colors) != 4 {
		t.Errorf("expected default colors to survive, got %d samples", len(cfg.Colors))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero canvas", func(c *Config) { c.CanvasSize = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"three colors", func(c *Config) { c.Colors = c.Colors[:3] }},
		{"channel out of range", func(c *Config) { c.Colors[0].R = 1.5 }},
		{"two rule rows", func(c *Config) { c.Rules = c.Rules[:2] }},
		{"short rule row", func(c *Config) { c.Rules[1] = c.Rules[1][:2] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRuleCellsConversion(t *testing.T) {
	cfg := DefaultConfig() // ember: rules[0][0] = off 4s, on 2s at 24fps
	cells := cfg.RuleCells()

	if cells[0].OffFrames != 96 || cells[0].OnFrames != 48 {
		t.Errorf("cell 0 = %d/%d frames, want 96/48", cells[0].OffFrames, cells[0].OnFrames)
	}
	if cells[0].On {
		t.Error("cells default to off")
	}
	if cells[5].Row != 1 || cells[5].Col != 2 {
		t.Errorf("cell 5 coordinates = (%d,%d), want (1,2)", cells[5].Row, cells[5].Col)
	}
}

func TestBlobSlotsOrder(t *testing.T) {
	slots := DefaultConfig().BlobSlots()

	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	wantX := []float64{0, 0.5, 1}
	wantName := []string{"left", "mid", "right"}
	for i, s := range slots {
		if s.XRatio != wantX[i] || s.Name != wantName[i] {
			t.Errorf("slot %d = %s at %v, want %s at %v", i, s.Name, s.XRatio, wantName[i], wantX[i])
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("prism")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Blobs != cfg.Blobs {
		t.Errorf("blob config changed across save/load: %+v != %+v", loaded.Blobs, cfg.Blobs)
	}
	if loaded.Colors[3] != cfg.Colors[3] {
		t.Errorf("colors changed across save/load")
	}
}
