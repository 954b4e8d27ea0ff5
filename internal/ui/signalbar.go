package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/audiobar/internal/bars"
)

// ProgressMsg asks a SignalBar to move to a new progress value in [0, 1].
type ProgressMsg float64

// StyleMsg asks a SignalBar to switch height styles and redraw.
type StyleMsg bars.Style

// SignalBar is a Bubble Tea component that draws a bars.Renderer into a
// TermCanvas. The frame is only redrawn when the renderer requests it, the
// size changes, or the style is switched through the component.
type SignalBar struct {
	renderer *bars.Renderer
	canvas   *TermCanvas
	frame    string
	dirty    bool
}

// NewSignalBar creates a signal bar component from cfg.
// Extra options are passed through to the renderer.
func NewSignalBar(cfg bars.Config, opts ...bars.Option) *SignalBar {
	s := &SignalBar{
		canvas: NewTermCanvas(0, 0),
		dirty:  true,
	}
	opts = append(opts, bars.WithInvalidate(func() { s.dirty = true }))
	s.renderer = bars.NewRenderer(cfg, opts...)
	s.canvas.SetShadeColor(cfg.PrimaryColor)
	return s
}

// Renderer exposes the underlying renderer.
func (s *SignalBar) Renderer() *bars.Renderer {
	return s.renderer
}

// Init follows the bubbles component pattern; there is nothing to start.
func (s *SignalBar) Init() tea.Cmd { return nil }

// Update handles resize, progress and style messages. A WindowSizeMsg is
// treated as the space available to the bar, not the whole terminal.
func (s *SignalBar) Update(msg tea.Msg) (*SignalBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(s.Measure(msg.Width, msg.Height))
	case ProgressMsg:
		s.SetProgress(float64(msg))
	case StyleMsg:
		s.SetBarStyle(bars.Style(msg))
	}
	return s, nil
}

// SetProgress forwards to the renderer and reports whether a redraw was requested.
func (s *SignalBar) SetProgress(progress float64) bool {
	wasDirty := s.dirty
	s.dirty = false
	s.renderer.SetProgress(progress)
	redraw := s.dirty
	s.dirty = s.dirty || wasDirty
	return redraw
}

// Progress returns the renderer's progress.
func (s *SignalBar) Progress() float64 {
	return s.renderer.Progress()
}

// SetBarStyle switches the height style and invalidates the frame so the
// change shows up immediately.
func (s *SignalBar) SetBarStyle(style bars.Style) {
	s.renderer.SetBarStyle(style)
	s.dirty = true
}

// BarStyle returns the current height style.
func (s *SignalBar) BarStyle() bars.Style {
	return s.renderer.BarStyle()
}

// SetSize resizes the drawing surface, in cells.
func (s *SignalBar) SetSize(cols, rows int) {
	if cols == s.canvas.Cols() && rows == s.canvas.Rows() {
		return
	}
	s.canvas.Resize(cols, rows)
	s.renderer.OnSizeChanged(PixelSize(cols, rows))
	s.dirty = true
}

// Measure returns the preferred cell size when at most maxCols x maxRows is
// available. Non-positive limits leave that dimension unconstrained.
func (s *SignalBar) Measure(maxCols, maxRows int) (cols, rows int) {
	return MeasureCells(s.renderer, maxCols, maxRows)
}

// MeasureCells returns the preferred cell size of r within maxCols x maxRows.
// Non-positive limits leave that dimension unconstrained.
func MeasureCells(r *bars.Renderer, maxCols, maxRows int) (cols, rows int) {
	wSpec := bars.MeasureSpec{Mode: bars.Unspecified}
	if maxCols > 0 {
		wSpec = bars.MeasureSpec{Mode: bars.AtMost, Size: maxCols}
	}
	hSpec := bars.MeasureSpec{Mode: bars.Unspecified}
	if maxRows > 0 {
		_, maxHeight := PixelSize(0, maxRows)
		hSpec = bars.MeasureSpec{Mode: bars.AtMost, Size: maxHeight}
	}

	width, height := r.Measure(wSpec, hSpec)
	return width, (height + 1) / 2
}

// View renders the bars, redrawing only when the frame is stale.
func (s *SignalBar) View() string {
	if s.dirty {
		s.canvas.Reset()
		s.renderer.Draw(s.canvas)
		s.frame = s.canvas.String()
		s.dirty = false
	}
	return s.frame
}

// Label renders the progress as a right-aligned percentage.
// Complete progress is shown in the success color.
func (s *SignalBar) Label() string {
	color := ColorMuted
	if s.renderer.Progress() >= 1 {
		color = ColorSuccess
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Render(fmt.Sprintf("%3.0f%%", s.renderer.Progress()*100))
}

// RenderFrame draws a single frame of r onto a cols x rows canvas.
func RenderFrame(r *bars.Renderer, cols, rows int) string {
	canvas := NewTermCanvas(cols, rows)
	canvas.SetShadeColor(r.PrimaryColor())
	r.OnSizeChanged(PixelSize(cols, rows))
	r.Draw(canvas)
	return canvas.String()
}
