package ui

// Unicode symbols for demo status.
const (
	SymbolPlaying  = "▶" // Progress is advancing
	SymbolPaused   = "⏸" // Progress is on hold
	SymbolComplete = "●" // Progress reached 100%
)

// Half-block runes used by TermCanvas. Each terminal cell holds two
// vertical pixels.
const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
	blockEmpty = ' '
	blockShade = '░' // Unfilled bars when colors are off
)
