package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/audiobar/internal/config"
	"github.com/rileyhilliard/audiobar/internal/errors"
	"github.com/rileyhilliard/audiobar/internal/logger"
	"github.com/rileyhilliard/audiobar/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags
var (
	cfgFile string
	noColor bool
	verbose bool
)

// loadedConfig is the validated config for the current invocation.
var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "audiobar",
	Short: "Audio-style signal bar progress indicator",
	Long: `audiobar draws progress as a row of vertical signal bars, like an audio
level meter. Bars up to the progress point use the progress color and the
rest use the primary color.

Examples:
  audiobar demo
  audiobar demo --style dynamic --loop
  audiobar render --progress 0.5 --width 60 --height 6`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .audiobar.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
}

// setup applies global flags and loads the config.
func setup() error {
	logger.SetVerbose(verbose)
	log := logger.NewEnvLogger("[config]")

	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug("loaded %s", path)
	} else {
		log.Debug("no config file found, using defaults")
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	loadedConfig = cfg

	mode := cfg.Output.Color
	if noColor {
		mode = ui.ColorModeNever
	}
	ui.ApplyColorMode(mode, stdoutIsTerminal())
	return nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the root command and exits with errors.ExitCode on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
		os.Exit(errors.ExitCode(err))
	}
}
