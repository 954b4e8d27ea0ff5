package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/audiobar/internal/bars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignalBar(src bars.IntSource) *SignalBar {
	return NewSignalBar(bars.DefaultConfig(1), bars.WithIntSource(src))
}

func TestSignalBar_SetSize(t *testing.T) {
	s := newTestSignalBar(&countingSource{})
	s.SetSize(80, 25)

	w, h := s.Renderer().Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 50, h)

	lines := strings.Split(stripANSI(s.View()), "\n")
	assert.Len(t, lines, 25)
}

func TestSignalBar_SetProgressReportsRedraw(t *testing.T) {
	s := newTestSignalBar(&countingSource{})

	assert.True(t, s.SetProgress(0.5))
	assert.False(t, s.SetProgress(0.5), "unchanged progress")
	assert.False(t, s.SetProgress(-1), "out of range progress")
	assert.False(t, s.SetProgress(1.2), "out of range progress")
	assert.Equal(t, 0.5, s.Progress())
}

func TestSignalBar_ViewIsCachedUntilInvalidated(t *testing.T) {
	src := &countingSource{value: 1}
	s := newTestSignalBar(src)
	s.SetBarStyle(bars.StyleDynamic)
	s.SetSize(30, 5)

	first := s.View()
	calls := src.calls
	require.Positive(t, calls)

	assert.Equal(t, first, s.View())
	assert.Equal(t, calls, src.calls, "a clean frame is not redrawn")

	s.SetProgress(0.5)
	s.View()
	assert.Greater(t, src.calls, calls, "progress change redraws")

	calls = src.calls
	s.SetProgress(0.5)
	s.View()
	assert.Equal(t, calls, src.calls, "same progress does not redraw")
}

func TestSignalBar_SetProgressKeepsPendingRedraw(t *testing.T) {
	src := &countingSource{}
	s := newTestSignalBar(src)
	s.SetSize(30, 5)

	// The resize is still pending; a no-op progress update must not drop it.
	s.SetProgress(0)
	s.View()
	assert.Positive(t, src.calls)
}

func TestSignalBar_StyleChangeRedraws(t *testing.T) {
	src := &countingSource{}
	s := newTestSignalBar(src)
	s.SetSize(30, 5)
	s.View()
	calls := src.calls

	s.SetBarStyle(bars.StyleDynamic)
	assert.Equal(t, bars.StyleDynamic, s.BarStyle())
	s.View()
	assert.Greater(t, src.calls, calls)
}

func TestSignalBar_Update(t *testing.T) {
	s := newTestSignalBar(&countingSource{})

	s, cmd := s.Update(ProgressMsg(0.25))
	assert.Nil(t, cmd)
	assert.Equal(t, 0.25, s.Progress())

	s, _ = s.Update(StyleMsg(bars.StyleDynamic))
	assert.Equal(t, bars.StyleDynamic, s.BarStyle())

	s, _ = s.Update(ProgressMsg(3))
	assert.Equal(t, 0.25, s.Progress())
}

func TestSignalBar_UpdateWindowSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
		wantBars      int
	}{
		{"small space caps the bar", 40, 6, 40, 12, 6},
		{"large space uses preferred size", 300, 100, 80, 50, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSignalBar(&countingSource{})
			s, cmd := s.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			assert.Nil(t, cmd)

			w, h := s.Renderer().Size()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantBars, s.Renderer().BarCount())
			assert.Len(t, strings.Split(s.View(), "\n"), tt.wantH/2)
		})
	}
}

func TestSignalBar_Measure(t *testing.T) {
	tests := []struct {
		name             string
		maxCols, maxRows int
		wantCols         int
		wantRows         int
	}{
		{"plenty of room", 200, 100, 80, 25},
		{"constrained", 40, 10, 40, 10},
		{"unconstrained", 0, 0, 80, 25},
		{"width only", 60, 0, 60, 25},
	}

	s := newTestSignalBar(&countingSource{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := s.Measure(tt.maxCols, tt.maxRows)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestSignalBar_Label(t *testing.T) {
	s := newTestSignalBar(&countingSource{})
	assert.Equal(t, "  0%", stripANSI(s.Label()))

	s.SetProgress(0.42)
	assert.Equal(t, " 42%", stripANSI(s.Label()))

	s.SetProgress(1)
	assert.Equal(t, "100%", stripANSI(s.Label()))
}

func TestMeasureCells(t *testing.T) {
	r := bars.NewRenderer(bars.DefaultConfig(1))

	cols, rows := MeasureCells(r, 0, 0)
	assert.Equal(t, 80, cols)
	assert.Equal(t, 25, rows)

	cols, rows = MeasureCells(r, 30, 4)
	assert.Equal(t, 30, cols)
	assert.Equal(t, 4, rows)
}
