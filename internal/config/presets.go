package config

import "sort"

// Presets are the three built-in scenes. They share canvas, rate and
// duration and differ in palette orientation, blob cycles and duty tables.
var Presets = map[string]*Config{
	"ember": {
		CanvasSize:  DefaultCanvasSize,
		FPS:         DefaultFPS,
		Duration:    DefaultDuration,
		BaseOpacity: DefaultBaseOpacity,
		Colors: []ColorSample{
			{X: 0, Y: 1, R: 1, G: 0.8, B: 0},
			{X: 0, Y: 0, R: 1, G: 0.2, B: 0},
			{X: 1, Y: 1, R: 1, G: 0.2, B: 0.75},
			{X: 1, Y: 0, R: 0.1, G: 0.1, B: 0.8},
		},
		Blobs: BlobConfig{Left: 24 * 2, Mid: 24 * 3, Right: 24},
		Rules: [][]RuleSpec{
			{{Off: 4, On: 2}, {Off: 3, On: 2}, {Off: 4, On: 3}},
			{{Off: 2, On: 2}, {Off: 4, On: 2}, {Off: 1, On: 3}},
			{{Off: 3, On: 1}, {Off: 3, On: 3}, {Off: 4, On: 2}},
		},
		Output: "output/ember.png",
	},
	"drift": {
		CanvasSize:  DefaultCanvasSize,
		FPS:         DefaultFPS,
		Duration:    DefaultDuration,
		BaseOpacity: DefaultBaseOpacity,
		Colors: []ColorSample{
			{X: 1, Y: 1, R: 1, G: 0.8, B: 0},
			{X: 0, Y: 1, R: 1, G: 0.2, B: 0},
			{X: 1, Y: 0, R: 1, G: 0.2, B: 0.75},
			{X: 0, Y: 0, R: 0.1, G: 0.1, B: 0.8},
		},
		Blobs: BlobConfig{Left: 24, Mid: 24 * 4, Right: 24},
		Rules: [][]RuleSpec{
			{{Off: 3, On: 1}, {Off: 3, On: 3}, {Off: 4, On: 2}},
			{{Off: 2, On: 2}, {Off: 4, On: 2}, {Off: 1, On: 3}},
			{{Off: 4, On: 2}, {Off: 3, On: 2}, {Off: 4, On: 3}},
		},
		Output: "output/drift.png",
	},
	"prism": {
		CanvasSize:  DefaultCanvasSize,
		FPS:         DefaultFPS,
		Duration:    DefaultDuration,
		BaseOpacity: DefaultBaseOpacity,
		Colors: []ColorSample{
			{X: 1, Y: 1, R: 1, G: 0.8, B: 0},
			{X: 1, Y: 0, R: 1, G: 0.2, B: 0},
			{X: 0, Y: 1, R: 1, G: 0.2, B: 0.75},
			{X: 0, Y: 0, R: 0.1, G: 0.1, B: 0.8},
		},
		Blobs: BlobConfig{Left: 24 * 2, Mid: 24 * 3, Right: 24 * 4},
		Rules: [][]RuleSpec{
			{{Off: 3, On: 2}, {Off: 4, On: 2}, {Off: 4, On: 2}},
			{{Off: 3, On: 3}, {Off: 4, On: 3}, {Off: 4, On: 2}},
			{{Off: 2, On: 2}, {Off: 3, On: 3}, {Off: 1, On: 3}},
		},
		Output: "output/prism.png",
	},
}

// GetPreset returns a copy of a named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.clone()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) clone() *Config {
	out := *c
	out.Colors = append([]ColorSample(nil), c.Colors...)
	out.Rules = make([][]RuleSpec, len(c.Rules))
	for i, row := range c.Rules {
		out.Rules[i] = append([]RuleSpec(nil), row...)
	}
	return &out
}
