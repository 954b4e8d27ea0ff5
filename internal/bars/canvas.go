package bars

import "github.com/charmbracelet/lipgloss"

// Cap is the end style of a stroked line.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// PaintStyle selects whether shapes are filled or outlined.
type PaintStyle int

const (
	PaintFill PaintStyle = iota
	PaintStroke
)

// Paint describes how a line is stroked.
type Paint struct {
	StrokeWidth float64
	Cap         Cap
	Style       PaintStyle
	Color       lipgloss.Color
}

// Canvas is a surface that can draw stroked line segments.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 float64, paint Paint)
}

// Draw renders the current state and paints each bar onto canvas as a
// square-capped line of thickness UnitWidth.
func (r *Renderer) Draw(canvas Canvas) []Segment {
	segments := r.Render()
	paint := Paint{
		StrokeWidth: float64(r.unitWidth),
		Cap:         CapSquare,
		Style:       PaintFill,
	}
	for _, seg := range segments {
		paint.Color = seg.Color
		canvas.DrawLine(seg.X, seg.StartY, seg.X, seg.StopY, paint)
	}
	return segments
}
