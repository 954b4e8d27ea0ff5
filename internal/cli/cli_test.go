package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Frames are compared as plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
}
