package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/audiobar/internal/bars"
)

// Compile-time check that TermCanvas implements bars.Canvas
var _ bars.Canvas = (*TermCanvas)(nil)

// TermCanvas rasterizes line segments into a grid of terminal cells.
// A cell is one pixel wide and two pixels tall, so a canvas of cols x rows
// cells exposes a cols x rows*2 pixel surface.
type TermCanvas struct {
	cols   int
	rows   int
	pixels []lipgloss.Color // row-major, cols x rows*2; "" means unpainted

	// shade is drawn with blockShade under the Ascii profile, where colors
	// can't tell it apart from other strokes.
	shade lipgloss.Color
}

// NewTermCanvas creates an empty canvas of the given cell size.
func NewTermCanvas(cols, rows int) *TermCanvas {
	c := &TermCanvas{}
	c.Resize(cols, rows)
	return c
}

// PixelSize converts a cell size to the pixel size of the drawing surface.
func PixelSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Resize changes the cell size and clears the canvas.
func (c *TermCanvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.pixels = make([]lipgloss.Color, c.cols*c.rows*2)
}

// SetShadeColor marks color as the one drawn with a shade rune when the
// color profile is Ascii. Use it for unfilled bars.
func (c *TermCanvas) SetShadeColor(color lipgloss.Color) {
	c.shade = color
}

// Reset clears all painted pixels.
func (c *TermCanvas) Reset() {
	clear(c.pixels)
}

// Cols returns the width in cells.
func (c *TermCanvas) Cols() int { return c.cols }

// Rows returns the height in cells.
func (c *TermCanvas) Rows() int { return c.rows }

// DrawLine paints a stroked line. The stroke covers the bounding box of the
// two points, widened by half the stroke width horizontally. Square and
// round caps extend it by half the stroke width vertically as well.
// A pixel is painted when its center falls inside the stroke.
func (c *TermCanvas) DrawLine(x0, y0, x1, y1 float64, paint bars.Paint) {
	half := math.Max(paint.StrokeWidth, 1) / 2

	left, right := math.Min(x0, x1)-half, math.Max(x0, x1)+half
	top, bottom := math.Min(y0, y1), math.Max(y0, y1)
	if paint.Cap != bars.CapButt {
		top -= half
		bottom += half
	}

	_, height := PixelSize(c.cols, c.rows)
	xStart, xEnd := pixelSpan(left, right, c.cols)
	yStart, yEnd := pixelSpan(top, bottom, height)

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			c.pixels[y*c.cols+x] = paint.Color
		}
	}
}

// pixelSpan returns the half-open pixel range whose centers lie in [lo, hi),
// clipped to [0, limit).
func pixelSpan(lo, hi float64, limit int) (int, int) {
	start := int(math.Ceil(lo - 0.5))
	end := int(math.Ceil(hi - 0.5))
	start = max(start, 0)
	end = min(end, limit)
	if end < start {
		end = start
	}
	return start, end
}

// Pixel returns the color painted at a pixel, or "" if none.
func (c *TermCanvas) Pixel(x, y int) lipgloss.Color {
	_, height := PixelSize(c.cols, c.rows)
	if x < 0 || x >= c.cols || y < 0 || y >= height {
		return ""
	}
	return c.pixels[y*c.cols+x]
}

// cell is the rune and colors for one terminal cell.
type cell struct {
	r  rune
	fg lipgloss.Color
	bg lipgloss.Color
}

func (c *TermCanvas) cellAt(col, row int, mono bool) cell {
	top := c.pixels[(row*2)*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	if mono {
		return c.monoCellAt(top, bottom)
	}

	switch {
	case top == "" && bottom == "":
		return cell{r: blockEmpty}
	case top == bottom:
		return cell{r: blockFull, fg: top}
	case bottom == "":
		return cell{r: blockUpper, fg: top}
	case top == "":
		return cell{r: blockLower, fg: bottom}
	default:
		return cell{r: blockUpper, fg: top, bg: bottom}
	}
}

// monoCellAt picks a rune for a cell when only runes carry meaning.
// Solid strokes keep half-block resolution; shade-only cells use blockShade.
func (c *TermCanvas) monoCellAt(top, bottom lipgloss.Color) cell {
	solidTop := top != "" && top != c.shade
	solidBottom := bottom != "" && bottom != c.shade

	switch {
	case solidTop && solidBottom:
		return cell{r: blockFull}
	case solidTop:
		return cell{r: blockUpper}
	case solidBottom:
		return cell{r: blockLower}
	case top == "" && bottom == "":
		return cell{r: blockEmpty}
	default:
		return cell{r: blockShade}
	}
}

// String renders the canvas as styled lines joined by newlines.
// Runs of cells sharing colors are styled together.
func (c *TermCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols * c.rows * 4)

	mono := lipgloss.ColorProfile() == termenv.Ascii

	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		var runFg, runBg lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleRun(run.String(), runFg, runBg))
			run.Reset()
		}

		for col := 0; col < c.cols; col++ {
			ce := c.cellAt(col, row, mono)
			if ce.fg != runFg || ce.bg != runBg {
				flush()
				runFg, runBg = ce.fg, ce.bg
			}
			run.WriteRune(ce.r)
		}
		flush()
	}
	return sb.String()
}

func styleRun(s string, fg, bg lipgloss.Color) string {
	if fg == "" && bg == "" {
		return s
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(fg)
	}
	if bg != "" {
		style = style.Background(bg)
	}
	return style.Render(s)
}
