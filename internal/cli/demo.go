package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/audiobar/internal/bars"
	"github.com/rileyhilliard/audiobar/internal/config"
	"github.com/rileyhilliard/audiobar/internal/demo"
	"github.com/rileyhilliard/audiobar/internal/errors"
	"github.com/rileyhilliard/audiobar/internal/logger"
	"github.com/rileyhilliard/audiobar/internal/ui"
	"github.com/spf13/cobra"
)

// debugLogFile receives logs while the demo owns the terminal.
const debugLogFile = "audiobar-debug.log"

// DemoOptions holds flag overrides for the demo command.
type DemoOptions struct {
	Interval string
	Style    string
	Loop     bool
	Exit     bool
}

var demoOpts DemoOptions

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Animate the signal bar from 0 to 100%",
	Long: `Run an interactive demo that feeds progress to the signal bar on a timer.

Keys:
  space  pause / resume
  s      toggle normal / dynamic style
  r      restart from 0%
  q      quit

Examples:
  audiobar demo
  audiobar demo --interval 50ms --style dynamic
  audiobar demo --loop`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := demoOpts
		if !cmd.Flags().Changed("loop") {
			opts.Loop = loadedConfig.Demo.Loop
		}
		return demoCommand(loadedConfig, opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoOpts.Interval, "interval", "", "time between progress steps (e.g., 10ms, 100ms)")
	demoCmd.Flags().StringVar(&demoOpts.Style, "style", "", "bar style: normal or dynamic")
	demoCmd.Flags().BoolVar(&demoOpts.Loop, "loop", false, "restart at 0% after reaching 100%")
	demoCmd.Flags().BoolVar(&demoOpts.Exit, "exit", false, "quit when progress reaches 100%")
}

// buildDemoModel applies flag overrides to cfg and creates the demo model.
func buildDemoModel(cfg *config.Config, opts DemoOptions) (demo.Model, error) {
	interval := cfg.Demo.Interval
	if opts.Interval != "" {
		d, err := time.ParseDuration(opts.Interval)
		if err != nil || d <= 0 {
			return demo.Model{}, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a valid interval", opts.Interval),
				"Try something like 10ms, 100ms, or 1s.")
		}
		interval = d
	}

	rc := cfg.Bar.RendererConfig()
	if opts.Style != "" {
		style, ok := bars.ParseStyle(opts.Style)
		if !ok {
			return demo.Model{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown style '%s'", opts.Style),
				"Use --style normal or --style dynamic.")
		}
		rc.Style = style
	}

	bar := ui.NewSignalBar(rc)
	return demo.NewModel(bar, demo.Options{
		Interval:       interval,
		Steps:          cfg.Demo.Steps,
		Loop:           opts.Loop,
		ExitOnComplete: opts.Exit,
		Version:        formatVersion(version),
		Logger:         logger.NewEnvLogger("[demo]"),
	}), nil
}

// demoCommand runs the demo TUI.
func demoCommand(cfg *config.Config, opts DemoOptions) error {
	if !stdoutIsTerminal() {
		return errors.New(errors.ErrTerm,
			"The demo needs an interactive terminal",
			"Use 'audiobar render' to print a single frame when piping output.")
	}

	model, err := buildDemoModel(cfg, opts)
	if err != nil {
		return err
	}

	// Logging to stderr would tear the alt screen.
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "demo")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerm,
				"Couldn't open the debug log",
				"Check that the current directory is writable, or drop --verbose.")
		}
		defer f.Close()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"The demo exited unexpectedly",
			"Try a different terminal, or run with --verbose for details.")
	}
	return nil
}
