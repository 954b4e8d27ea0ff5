package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Plain output keeps rendered frames comparable rune by rune.
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape codes from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// countingSource returns a fixed value and counts calls.
type countingSource struct {
	value int
	calls int
}

func (s *countingSource) IntN(n int) int {
	s.calls++
	return s.value % n
}
