package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/audiobar/internal/logger"
	"github.com/rileyhilliard/audiobar/internal/ui"
)

// Defaults mirror a 10ms update loop walking 0..100%.
const (
	DefaultInterval = 10 * time.Millisecond
	DefaultSteps    = 100
)

// Rows reserved around the bar: header (2) and footer (label + help).
const (
	headerHeight = 2
	footerHeight = 2
)

// Options configures the demo loop.
type Options struct {
	Interval       time.Duration
	Steps          int
	Loop           bool // Wrap to 0 after 100% instead of stopping
	ExitOnComplete bool // Quit the program when progress completes
	Version        string
	Logger         logger.Logger
}

// tickMsg signals a progress step.
type tickMsg time.Time

// Model is the Bubble Tea model for the demo.
type Model struct {
	bar     *ui.SignalBar
	keys    keyMap
	help    help.Model
	log     logger.Logger
	version string

	interval time.Duration
	steps    int
	step     int
	loop     bool
	exit     bool

	ticking  bool
	paused   bool
	done     bool
	quitting bool

	width  int
	height int
}

// NewModel creates a demo model driving bar.
func NewModel(bar *ui.SignalBar, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Steps <= 0 {
		opts.Steps = DefaultSteps
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	// Start at the preferred size until the first WindowSizeMsg arrives.
	bar.SetSize(bar.Measure(0, 0))

	return Model{
		bar:      bar,
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      opts.Logger,
		version:  opts.Version,
		interval: opts.Interval,
		steps:    opts.Steps,
		loop:     opts.Loop,
		exit:     opts.ExitOnComplete,
		ticking:  true, // Init schedules the first tick
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// startTicking is a no-op when a tick is already scheduled, so restarts
// never run two timers.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tickCmd()
}

// tickCmd returns a command that sends a tick after the interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		rows := m.height - headerHeight - footerHeight
		if rows < 1 {
			rows = 1
		}
		m.bar, _ = m.bar.Update(tea.WindowSizeMsg{Width: m.width, Height: rows})

	case tickMsg:
		if m.done || m.paused {
			m.ticking = false
			return m, nil
		}
		m.advance()
		if m.done && m.exit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.done {
			m.ticking = false
			return m, nil
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Style):
		next := m.bar.BarStyle().Next()
		m.bar, _ = m.bar.Update(ui.StyleMsg(next))
		m.log.Debug("style switched to %s", next)

	case key.Matches(msg, m.keys.Restart):
		m.step = 0
		m.done = false
		m.paused = false
		m.log.Debug("restarting progress loop")
		return m, m.startTicking()

	case key.Matches(msg, m.keys.Pause):
		if m.done {
			return m, nil
		}
		m.paused = !m.paused
		if !m.paused {
			return m, m.startTicking()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// advance feeds the next progress value to the bar.
func (m *Model) advance() {
	m.bar, _ = m.bar.Update(ui.ProgressMsg(float64(m.step) / float64(m.steps)))
	m.step++

	if m.step > m.steps {
		if m.loop {
			m.step = 0
			return
		}
		m.done = true
		m.log.Debug("progress complete after %d steps", m.steps)
	}
}

// Step returns the next step to be fed to the bar.
func (m Model) Step() int {
	return m.step
}

// Done reports whether progress has completed.
func (m Model) Done() bool {
	return m.done
}

// Paused reports whether progress is on hold.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the demo.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := lipgloss.NewStyle().Foreground(ui.ColorInfo).Render(ui.SymbolPlaying)
	switch {
	case m.done:
		status = lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolComplete)
	case m.paused:
		status = lipgloss.NewStyle().Foreground(ui.ColorWarning).Render(ui.SymbolPaused)
	}

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Version: m.version,
		Style:   m.bar.BarStyle().String(),
		Status:  status,
	}, m.width))
	b.WriteString(m.bar.View())
	b.WriteString("\n")
	b.WriteString(m.bar.Label())
	b.WriteString(fmt.Sprintf("  step %d/%d", min(m.step, m.steps), m.steps))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
