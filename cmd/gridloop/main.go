package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/roberto-arista/gridloop/internal/config"
	"github.com/roberto-arista/gridloop/internal/ease"
	"github.com/roberto-arista/gridloop/internal/export"
	"github.com/roberto-arista/gridloop/internal/field"
	"github.com/roberto-arista/gridloop/internal/render"
	"github.com/roberto-arista/gridloop/internal/scene"
	"github.com/roberto-arista/gridloop/internal/timeline"
	"github.com/roberto-arista/gridloop/internal/viz"
)

var (
	configFile string
	outPath    string
	format     string
	canvasSize int
	frameRate  int
	duration   float64
	workers    int
	renderAll  bool
	// trace flags
	traceSlot   string
	traceCell   string
	traceFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridloop",
		Short: "looping dot-grid animation generator",
	}

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "render an animation to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&outPath, "out", "", "output path (.png apng, .avi mjpeg, else frame dir)")
	renderCmd.Flags().StringVar(&format, "format", "", "force output format: apng, avi, frames")
	renderCmd.Flags().IntVar(&canvasSize, "size", 0, "canvas size in pixels")
	renderCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	renderCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	renderCmd.Flags().IntVar(&workers, "workers", 1, "parallel render workers (1 = sequential)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "render every preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE:  listPresets,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [preset]",
		Short: "plot a slot or cell signal over frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().StringVar(&traceSlot, "slot", "", "blob slot: left, mid, right")
	traceCmd.Flags().StringVar(&traceCell, "cell", "", "rule cell as row,col (0-2)")
	traceCmd.Flags().IntVar(&traceFrames, "frames", 0, "frames to plot (default: full loop)")

	previewCmd := &cobra.Command{
		Use:   "preview [preset]",
		Short: "play the animation schematically in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(renderCmd, presetsCmd, traceCmd, previewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies preset, config file and flag overrides in that
// order, mirroring preset < file < flag precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) == 1 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.CanvasSize = canvasSize
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if outPath != "" {
		cfg.Output = outPath
	}
	if format != "" {
		cfg.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderAll {
		for _, name := range config.ListPresets() {
			if err := renderOne(config.GetPreset(name), name); err != nil {
				return err
			}
		}
		return nil
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	name := "config"
	if len(args) == 1 {
		name = args[0]
	}
	return renderOne(cfg, name)
}

func renderOne(cfg *config.Config, name string) error {
	f, err := field.New(cfg.Samples())
	if err != nil {
		return err
	}

	tl, err := timeline.New(cfg.TimelineConfig(), cfg.BlobSlots(), cfg.RuleCells())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	sink, err := export.ForPath(cfg.Output, cfg.Format, cfg.CanvasSize, cfg.FPS)
	if err != nil {
		return err
	}

	newRenderer := func() timeline.FrameRenderer {
		r := scene.NewRenderer(render.NewContext(), f, tl.Config())
		r.RuleSide = cfg.RuleSide
		return r
	}

	fmt.Printf("rendering %s (%d frames at %dfps, %dpx)...\n",
		name, tl.Config().Frames, cfg.FPS, cfg.CanvasSize)
	start := time.Now()

	if workers > 1 {
		frames, err := timeline.RenderAll(context.Background(), tl.Schedule(), newRenderer, workers)
		if err != nil {
			return err
		}
		for _, frame := range frames {
			if err := sink.Append(frame); err != nil {
				return err
			}
		}
	} else {
		tl.AddObserver(progress{total: tl.Config().Frames, step: tl.Config().FPS})
		if err := tl.Run(context.Background(), newRenderer(), sink); err != nil {
			return err
		}
	}

	if err := sink.Close(); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s\n", cfg.Output)
	return nil
}

// progress prints a heartbeat once per second of animation.
type progress struct {
	total, step int
}

func (p progress) OnFrame(st timeline.FrameState) {
	if st.Index%p.step == 0 {
		fmt.Printf("  frame %d/%d\n", st.Index, p.total)
	}
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tFPS\tDURATION\tBLOB CYCLES\tOUTPUT")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0fs\t%d/%d/%d\t%s\n",
			name, p.CanvasSize, p.FPS, p.Duration,
			p.Blobs.Left, p.Blobs.Mid, p.Blobs.Right, p.Output)
	}
	return w.Flush()
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	tl, err := timeline.New(cfg.TimelineConfig(), cfg.BlobSlots(), cfg.RuleCells())
	if err != nil {
		return err
	}

	frames := traceFrames
	if frames <= 0 || frames > tl.Config().Frames {
		frames = tl.Config().Frames
	}
	sched := tl.Schedule()

	if traceCell != "" {
		row, col, err := parseCell(traceCell)
		if err != nil {
			return err
		}
		data := make([]float64, frames)
		for i := 0; i < frames; i++ {
			if sched.At(i).Rules[row*3+col].On {
				data[i] = 1
			}
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(4),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("rule (%d,%d) duty signal", row, col)),
		))
		return nil
	}

	slot := traceSlot
	if slot == "" {
		slot = "mid"
	}
	idx := map[string]int{"left": 0, "mid": 1, "right": 2}
	si, ok := idx[slot]
	if !ok {
		return fmt.Errorf("unknown slot: %s", slot)
	}

	data := make([]float64, frames)
	for i := 0; i < frames; i++ {
		b := sched.At(i).Blobs[si]
		if b.Completion <= 0.5 {
			data[i] = ease.ParametricBlend(b.Completion * 2)
		} else {
			data[i] = 1 - ease.ParametricBlend((b.Completion-0.5)*2)
		}
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s blob eased extent", slot)),
	))
	return nil
}

func parseCell(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cell must be row,col, got %q", s)
	}
	if _, err := fmt.Sscanf(s, "%d,%d", &row, &col); err != nil {
		return 0, 0, err
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, 0, fmt.Errorf("cell indices must be 0-2, got %q", s)
	}
	return row, col, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	f, err := field.New(cfg.Samples())
	if err != nil {
		return err
	}

	tl, err := timeline.New(cfg.TimelineConfig(), cfg.BlobSlots(), cfg.RuleCells())
	if err != nil {
		return err
	}

	name := "config"
	if len(args) == 1 {
		name = args[0]
	}

	p := tea.NewProgram(viz.NewPreview(name, tl, f))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
