package bars

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style selects how bar heights are generated.
type Style int

const (
	// StyleNormal caches one height per bar index.
	StyleNormal Style = iota
	// StyleDynamic draws fresh heights on every render.
	StyleDynamic
)

// String returns the config name of the style.
func (s Style) String() string {
	switch s {
	case StyleDynamic:
		return "dynamic"
	default:
		return "normal"
	}
}

// Next cycles to the other style.
func (s Style) Next() Style {
	if s == StyleDynamic {
		return StyleNormal
	}
	return StyleDynamic
}

// ParseStyle converts a config or flag value to a Style.
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return StyleNormal, true
	case "dynamic":
		return StyleDynamic, true
	default:
		return StyleNormal, false
	}
}

// Default colors and dimensions, before scaling.
const (
	DefaultPrimaryColor  lipgloss.Color = "0"  // Black
	DefaultProgressColor lipgloss.Color = "15" // Bright white
	DefaultSpacing                      = 4
	DefaultUnitWidth                    = 2
)

// Config holds the construction-time parameters of a Renderer.
type Config struct {
	PrimaryColor  lipgloss.Color // Color of bars past the progress point
	ProgressColor lipgloss.Color // Color of filled bars
	Spacing       int            // Gap between bar left edges, in pixels
	UnitWidth     int            // Stroke thickness of a bar, in pixels
	Style         Style
}

// DefaultConfig returns the default configuration with dimensions multiplied
// by scale. A non-positive scale is treated as 1.
func DefaultConfig(scale float64) Config {
	return Config{
		PrimaryColor:  DefaultPrimaryColor,
		ProgressColor: DefaultProgressColor,
		Spacing:       ScalePx(DefaultSpacing, scale),
		UnitWidth:     ScalePx(DefaultUnitWidth, scale),
		Style:         StyleNormal,
	}
}

// ScalePx converts a density-independent size to pixels, truncating.
func ScalePx(v int, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(v) * scale)
}
