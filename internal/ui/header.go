package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Style   string // Current bar style name
	Status  string // Status symbol, e.g. SymbolPlaying
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the title line and a divider of the given width.
// A non-positive width falls back to HeaderWidth.
func RenderHeader(info HeaderInfo, width int) string {
	if width <= 0 {
		width = HeaderWidth
	}

	titleStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var output strings.Builder

	if info.Status != "" {
		output.WriteString(info.Status)
		output.WriteString(" ")
	}
	output.WriteString(titleStyle.Render("audiobar"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	if info.Style != "" {
		output.WriteString(mutedStyle.Render(fmt.Sprintf("  style: %s", info.Style)))
	}
	output.WriteString("\n")

	output.WriteString(mutedStyle.Render(strings.Repeat("━", width)))
	output.WriteString("\n")

	return output.String()
}
