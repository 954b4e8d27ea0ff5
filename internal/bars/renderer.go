package bars

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

// Height jitter range, in tenths of the surface height.
const (
	minHeightTenths = 4
	maxHeightTenths = 9
)

// IntSource supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type IntSource interface {
	IntN(n int) int
}

// globalSource adapts the math/rand/v2 top-level functions to IntSource.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Segment is one vertical bar to paint.
type Segment struct {
	Index  int
	X      float64
	StartY float64
	StopY  float64
	Height int // Generated bar height in pixels
	Color  lipgloss.Color
	Filled bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithIntSource sets the random source used for bar heights.
func WithIntSource(src IntSource) Option {
	return func(r *Renderer) {
		if src != nil {
			r.rng = src
		}
	}
}

// WithInvalidate sets the callback invoked when a progress change needs a redraw.
func WithInvalidate(fn func()) Option {
	return func(r *Renderer) {
		r.invalidate = fn
	}
}

// Renderer lays out signal bars for the current size, progress and style.
type Renderer struct {
	primaryColor  lipgloss.Color
	progressColor lipgloss.Color
	spacing       int
	unitWidth     int
	style         Style

	progress float64
	width    int
	height   int

	// history holds NORMAL-style heights by bar index. It only grows.
	history []int

	rng        IntSource
	invalidate func()
}

// NewRenderer creates a renderer from cfg.
func NewRenderer(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		primaryColor:  cfg.PrimaryColor,
		progressColor: cfg.ProgressColor,
		spacing:       cfg.Spacing,
		unitWidth:     cfg.UnitWidth,
		style:         cfg.Style,
		rng:           globalSource{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetProgress stores a progress value in [0, 1] and requests a redraw if it
// changed. Values outside the range, and NaN, are ignored.
func (r *Renderer) SetProgress(progress float64) {
	if math.IsNaN(progress) || progress < 0 || progress > 1 {
		return
	}
	if r.progress == progress {
		return
	}
	r.progress = progress
	if r.invalidate != nil {
		r.invalidate()
	}
}

// Progress returns the stored progress.
func (r *Renderer) Progress() float64 {
	return r.progress
}

// SetBarStyle changes the height style. It takes effect on the next draw and
// does not request a redraw.
func (r *Renderer) SetBarStyle(style Style) {
	r.style = style
}

// BarStyle returns the current height style.
func (r *Renderer) BarStyle() Style {
	return r.style
}

// OnSizeChanged records new surface dimensions. Cached heights are kept.
func (r *Renderer) OnSizeChanged(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// PrimaryColor returns the color of unfilled bars.
func (r *Renderer) PrimaryColor() lipgloss.Color {
	return r.primaryColor
}

// UnitWidth returns the bar stroke thickness.
func (r *Renderer) UnitWidth() int {
	return r.unitWidth
}

// HistoryLen returns how many NORMAL-style heights have been cached.
func (r *Renderer) HistoryLen() int {
	return len(r.history)
}

// BarCount returns how many bars fit the current width.
func (r *Renderer) BarCount() int {
	pitch := r.unitWidth + r.spacing
	if pitch <= 0 || r.width <= 0 {
		return 0
	}
	return r.width / pitch
}

// Render lays out every bar for the current state.
// In StyleNormal it grows the height cache as new indices appear.
func (r *Renderer) Render() []Segment {
	count := r.BarCount()
	if count == 0 {
		return nil
	}

	filled := int(float64(count) * r.progress)
	pitch := r.unitWidth + r.spacing
	h := float64(r.height)

	segments := make([]Segment, count)
	for i := 0; i < count; i++ {
		// Inclusive on purpose: the bar at the threshold is filled too.
		isFilled := i <= filled
		color := r.primaryColor
		if isFilled {
			color = r.progressColor
		}

		barHeight := r.barHeight(i)

		var startY, stopY float64
		if r.height > 0 {
			coefficient := float64(barHeight) / h / 2
			startY = (0.5 - coefficient) * h
			stopY = (0.5 + coefficient) * h
		}

		segments[i] = Segment{
			Index:  i,
			X:      float64(pitch*i + r.spacing),
			StartY: startY,
			StopY:  stopY,
			Height: barHeight,
			Color:  color,
			Filled: isFilled,
		}
	}
	return segments
}

// barHeight applies the height policy for the bar at index.
func (r *Renderer) barHeight(index int) int {
	if r.style == StyleDynamic {
		return r.randomHeight()
	}
	for len(r.history) <= index {
		r.history = append(r.history, r.randomHeight())
	}
	return r.history[index]
}

// randomHeight returns 40%-90% of the surface height in 10% steps.
func (r *Renderer) randomHeight() int {
	tenths := r.rng.IntN(maxHeightTenths-minHeightTenths+1) + minHeightTenths
	return r.height * tenths / 10
}
