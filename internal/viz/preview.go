package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/roberto-arista/gridloop/internal/ease"
	"github.com/roberto-arista/gridloop/internal/field"
	"github.com/roberto-arista/gridloop/internal/layout"
	"github.com/roberto-arista/gridloop/internal/timeline"
)

// character canvas dimensions for the schematic
const (
	previewRows = 13
	previewCols = 25
)

// slot columns and grid rows/cols on the character canvas
var (
	slotCols = [3]int{2, 12, 22}
	gridRows = [3]int{0, 6, 12}
)

type TickMsg time.Time

// Preview is a bubbletea model that plays the schedule as a schematic:
// colored dots for the grid, vertical bars for the blob capsules, bright
// squares for rule cells that are on.
type Preview struct {
	name    string
	sched   *timeline.Schedule
	field   *field.Field
	cfg     timeline.Config
	frame   int
	playing bool
}

// NewPreview builds the model for a prepared timeline.
func NewPreview(name string, tl *timeline.Timeline, f *field.Field) Preview {
	return Preview{
		name:    name,
		sched:   tl.Schedule(),
		field:   f,
		cfg:     tl.Config(),
		playing: true,
	}
}

func (m Preview) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Preview) Init() tea.Cmd {
	return m.tick()
}

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.playing {
			m.frame = (m.frame + 1) % m.cfg.Frames
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "right", "l":
			m.frame = (m.frame + 1) % m.cfg.Frames
		case "left", "h":
			m.frame = (m.frame - 1 + m.cfg.Frames) % m.cfg.Frames
		case "0":
			m.frame = 0
		}
	}
	return m, nil
}

type cell struct {
	ch    rune
	style lipgloss.Style
}

func (m Preview) View() string {
	st := m.sched.At(m.frame)

	canvas := make([][]cell, previewRows)
	for r := range canvas {
		canvas[r] = make([]cell, previewCols)
		for c := range canvas[r] {
			canvas[r][c] = cell{ch: ' '}
		}
	}

	// blob bars
	for i, b := range st.Blobs {
		lo, hi := m.blobExtent(b)
		col := slotCols[i]
		style := styleFor(m.field.ColorAt(b.XRatio, b.YRatio))
		for r := 0; r < previewRows; r++ {
			yr := float64(r) / float64(previewRows-1)
			if yr >= lo && yr <= hi {
				canvas[r][col] = cell{ch: '┃', style: style}
			}
		}
	}

	// grid dots
	ratios := [3]float64{0, 0.5, 1}
	for row, yr := range ratios {
		for col, xr := range ratios {
			canvas[gridRows[row]][slotCols[col]] = cell{
				ch:    '●',
				style: styleFor(m.field.ColorAt(xr, yr)),
			}
		}
	}

	// rule squares on top
	for row := range ratios {
		for col := range ratios {
			if st.Rules[row*3+col].On {
				canvas[gridRows[row]][slotCols[col]] = cell{ch: '▣', style: RuleOnStyle}
			}
		}
	}

	var body strings.Builder
	for r := range canvas {
		for c := range canvas[r] {
			body.WriteString(canvas[r][c].style.Render(string(canvas[r][c].ch)))
		}
		if r < len(canvas)-1 {
			body.WriteByte('\n')
		}
	}

	status := fmt.Sprintf("%s %s",
		LabelStyle.Render("frame"),
		ValueStyle.Render(fmt.Sprintf("%d / %d", m.frame, m.cfg.Frames)))
	if !m.playing {
		status += "  " + LabelStyle.Render("paused")
	}

	return TitleStyle.Render("gridloop · "+m.name) + "\n" +
		CanvasStyle.Render(body.String()) + "\n" +
		status + "\n" +
		HelpStyle.Render("space pause · ←/→ step · 0 rewind · q quit")
}

// blobExtent returns the capsule's covered span as yRatios within the
// column, mirroring the scene's grow/shrink geometry in ratio space.
func (m Preview) blobExtent(b timeline.BlobState) (lo, hi float64) {
	nearYr, farYr := m.rangeRatios(b)
	var a, z float64
	if b.Completion <= 0.5 {
		ratio := ease.ParametricBlend(b.Completion * 2)
		a, z = nearYr, nearYr+(farYr-nearYr)*ratio
	} else {
		ratio := ease.ParametricBlend((b.Completion - 0.5) * 2)
		a, z = nearYr+(farYr-nearYr)*ratio, farYr
	}
	if a > z {
		a, z = z, a
	}
	return a, z
}

// rangeRatios recovers the grid ratios a slot's anchors sit on by
// inverting the margin mapping, so the bars track whatever geometry the
// slot was built with.
func (m Preview) rangeRatios(b timeline.BlobState) (near, far float64) {
	g := layout.New(float64(m.cfg.Size))
	lo := g.Coordinate(0, 0).Y
	span := g.Coordinate(0, 1).Y - lo
	return (b.Range.Near.Y - lo) / span, (b.Range.Far.Y - lo) / span
}

func styleFor(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
}
