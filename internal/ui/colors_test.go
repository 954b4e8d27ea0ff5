package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSemanticColorsExist(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.Color
	}{
		{"ColorSuccess", ColorSuccess},
		{"ColorWarning", ColorWarning},
		{"ColorInfo", ColorInfo},
		{"ColorSecondary", ColorSecondary},
		{"ColorMuted", ColorMuted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, string(tt.color), "%s should not be empty", tt.name)
		})
	}
}

func TestApplyColorMode(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	tests := []struct {
		name       string
		mode       string
		isTerminal bool
		start      termenv.Profile
		want       termenv.Profile
	}{
		{"never disables", ColorModeNever, true, termenv.TrueColor, termenv.Ascii},
		{"auto keeps terminal profile", ColorModeAuto, true, termenv.TrueColor, termenv.TrueColor},
		{"auto disables when piped", ColorModeAuto, false, termenv.TrueColor, termenv.Ascii},
		{"always upgrades ascii", ColorModeAlways, false, termenv.Ascii, termenv.ANSI256},
		{"always keeps richer profile", ColorModeAlways, false, termenv.TrueColor, termenv.TrueColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lipgloss.SetColorProfile(tt.start)
			ApplyColorMode(tt.mode, tt.isTerminal)
			assert.Equal(t, tt.want, lipgloss.ColorProfile())
		})
	}
}
