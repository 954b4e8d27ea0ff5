package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/audiobar/internal/bars"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .audiobar.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Bar     BarConfig    `yaml:"bar" mapstructure:"bar"`
	Demo    DemoConfig   `yaml:"demo" mapstructure:"demo"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
}

// BarConfig holds the signal bar appearance.
type BarConfig struct {
	// PrimaryColor is used for bars past the progress point.
	// ANSI color number ("0"-"255") or hex ("#RRGGBB").
	PrimaryColor string `yaml:"primary_color" mapstructure:"primary_color"`

	// ProgressColor is used for filled bars.
	ProgressColor string `yaml:"progress_color" mapstructure:"progress_color"`

	// Spacing is the gap between bar left edges, before scaling.
	Spacing int `yaml:"spacing" mapstructure:"spacing"`

	// UnitWidth is the bar thickness, before scaling.
	UnitWidth int `yaml:"unit_width" mapstructure:"unit_width"`

	// Style is "normal" (stable heights) or "dynamic" (re-randomized every draw).
	Style string `yaml:"style" mapstructure:"style"`

	// Scale multiplies Spacing and UnitWidth.
	Scale float64 `yaml:"scale" mapstructure:"scale"`
}

// DemoConfig controls the demo progress loop.
type DemoConfig struct {
	// Interval between progress steps.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Steps is how many increments take progress from 0 to 1.
	Steps int `yaml:"steps" mapstructure:"steps"`

	// Loop restarts from 0 after reaching 100% instead of exiting.
	Loop bool `yaml:"loop" mapstructure:"loop"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Bar: BarConfig{
			PrimaryColor:  string(bars.DefaultPrimaryColor),
			ProgressColor: string(bars.DefaultProgressColor),
			Spacing:       bars.DefaultSpacing,
			UnitWidth:     bars.DefaultUnitWidth,
			Style:         bars.StyleNormal.String(),
			Scale:         1,
		},
		Demo: DemoConfig{
			Interval: 10 * time.Millisecond,
			Steps:    100,
			Loop:     false,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// RendererConfig converts the bar section to a bars.Config, applying Scale.
// An unknown style falls back to normal; Validate reports it.
func (b BarConfig) RendererConfig() bars.Config {
	style, _ := bars.ParseStyle(b.Style)
	return bars.Config{
		PrimaryColor:  lipgloss.Color(b.PrimaryColor),
		ProgressColor: lipgloss.Color(b.ProgressColor),
		Spacing:       bars.ScalePx(b.Spacing, b.Scale),
		UnitWidth:     bars.ScalePx(b.UnitWidth, b.Scale),
		Style:         style,
	}
}
