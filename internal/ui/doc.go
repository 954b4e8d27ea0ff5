// Package ui provides the terminal surface for audiobar.
//
// The bars package produces abstract line segments; this package turns them
// into styled terminal cells using the Lip Gloss library.
//
// # Components Overview
//
//	TermCanvas - bars.Canvas backed by a grid of half-block cells
//	SignalBar  - Bubble Tea component wrapping a renderer and a canvas
//	RenderFrame - one-shot render for non-interactive output
//	MeasureCells - preferred cell size of a renderer
//	Header     - title line with version, style and status
//
// # Resolution
//
// Each cell is one pixel wide and two pixels tall. Cells whose top and
// bottom pixels differ use ▀ or ▄ with foreground and background colors, so
// bar ends land on half-cell boundaries:
//
//	canvas := ui.NewTermCanvas(80, 8)   // 80 x 16 pixel surface
//	fmt.Println(ui.RenderFrame(r, 80, 8))
//
// # Colors
//
// Use DisableColors() to switch to monochrome output (for --no-color), or
// ApplyColorMode() with the output.color setting. Without colors, cells
// painted only in the canvas shade color (the unfilled bar color) print as ░
// so progress stays visible.
package ui
