package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rileyhilliard/audiobar/internal/bars"
	"github.com/rileyhilliard/audiobar/internal/errors"
)

// ValidColorModes lists the accepted output.color values.
var ValidColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but audiobar only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade audiobar or lower the version in .audiobar.yaml.")
	}

	if err := validateBar(cfg.Bar); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'bar' section in your .audiobar.yaml.")
	}

	if err := validateDemo(cfg.Demo); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'demo' section in your .audiobar.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'output' section in your .audiobar.yaml.")
	}

	return nil
}

func validateBar(b BarConfig) error {
	if _, ok := bars.ParseStyle(b.Style); !ok {
		return fmt.Errorf("unknown bar style %q (use normal or dynamic)", b.Style)
	}
	if err := validateColor("primary_color", b.PrimaryColor); err != nil {
		return err
	}
	if err := validateColor("progress_color", b.ProgressColor); err != nil {
		return err
	}
	if b.Spacing < 0 {
		return fmt.Errorf("spacing can't be negative (got %d)", b.Spacing)
	}
	if b.UnitWidth < 0 {
		return fmt.Errorf("unit_width can't be negative (got %d)", b.UnitWidth)
	}
	if b.Scale < 0 {
		return fmt.Errorf("scale can't be negative (got %g)", b.Scale)
	}

	rc := b.RendererConfig()
	if rc.Spacing+rc.UnitWidth == 0 {
		return fmt.Errorf("spacing and unit_width are both zero after scaling, so no bars fit")
	}
	return nil
}

// validateColor accepts ANSI color numbers 0-255 and #RGB / #RRGGBB hex.
func validateColor(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is empty", field)
	}
	if hexColorRe.MatchString(value) {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("%s %q isn't a color (use 0-255 or #RRGGBB)", field, value)
}

func validateDemo(d DemoConfig) error {
	if d.Interval <= 0 {
		return fmt.Errorf("demo interval must be positive (got %s)", d.Interval)
	}
	if d.Steps <= 0 {
		return fmt.Errorf("demo steps must be positive (got %d)", d.Steps)
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	if o.Color != "" && !ValidColorModes[o.Color] {
		return fmt.Errorf("output color %q isn't valid (use auto, always, or never)", o.Color)
	}
	return nil
}
