package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rileyhilliard/audiobar/internal/config"
	"github.com/rileyhilliard/audiobar/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLines(t *testing.T, cfg *config.Config, opts RenderOptions) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cfg, opts))
	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestRender_Size(t *testing.T) {
	tests := []struct {
		name     string
		opts     RenderOptions
		wantCols int
		wantRows int
	}{
		{
			name:     "preferred size",
			opts:     RenderOptions{},
			wantCols: 80,
			wantRows: 25,
		},
		{
			name:     "explicit size",
			opts:     RenderOptions{Width: 40, Height: 5},
			wantCols: 40,
			wantRows: 5,
		},
		{
			name:     "capped by terminal",
			opts:     RenderOptions{MaxCols: 30, MaxRows: 4},
			wantCols: 30,
			wantRows: 4,
		},
		{
			name:     "explicit width wins over terminal",
			opts:     RenderOptions{Width: 20, MaxCols: 30, MaxRows: 4},
			wantCols: 20,
			wantRows: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Seed, opts.UseSeed = 1, true
			lines := renderLines(t, nil, opts)
			assert.Len(t, lines, tt.wantRows)
			for _, line := range lines {
				assert.Equal(t, tt.wantCols, utf8.RuneCountInString(line))
			}
		})
	}
}

func TestRender_SeedIsReproducible(t *testing.T) {
	opts := RenderOptions{Width: 40, Height: 6, Progress: 0.5, Seed: 42, UseSeed: true}

	first := renderLines(t, nil, opts)
	second := renderLines(t, nil, opts)
	assert.Equal(t, first, second)
}

func TestRender_DrawsBars(t *testing.T) {
	lines := renderLines(t, nil, RenderOptions{Width: 40, Height: 6, Seed: 7, UseSeed: true})

	// Bars are centered vertically and at least 40% tall, so the middle row
	// is always painted.
	middle := lines[len(lines)/2]
	assert.NotEqual(t, strings.Repeat(" ", 40), middle)
}

func TestRender_ProgressOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil, RenderOptions{Width: 20, Height: 2, Progress: 1.5})
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}

func TestRender_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bar.Style = "dynamic"
	lines := renderLines(t, cfg, RenderOptions{Width: 16, Height: 3})
	assert.Len(t, lines, 3)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts RenderOptions
		want string
	}{
		{
			name: "negative width",
			opts: RenderOptions{Width: -1},
			want: "can't be negative",
		},
		{
			name: "negative height",
			opts: RenderOptions{Height: -3},
			want: "can't be negative",
		},
		{
			name: "unknown style",
			opts: RenderOptions{Style: "wobbly"},
			want: "Unknown style 'wobbly'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, nil, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrRender))
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRender_ProgressVisibleWithoutColor(t *testing.T) {
	render := func(progress float64) []string {
		return renderLines(t, nil, RenderOptions{Width: 24, Height: 3, Progress: progress, Seed: 3, UseSeed: true})
	}

	empty := render(0)
	half := render(0.5)
	full := render(1)

	assert.NotEqual(t, empty, full)
	assert.NotEqual(t, half, full)
	assert.Contains(t, strings.Join(empty, "\n"), "░", "unfilled bars are shaded")
	assert.NotContains(t, strings.Join(full, "\n"), "░")
}
