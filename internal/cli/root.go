// Package cli implements the ecocalc command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/ecocalc/internal/config"
	"github.com/rshade/ecocalc/internal/logging"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logResult *logging.LogPathResult
	lookupEnv func(string) (string, bool)

	// isTerminal reports whether styled output may be written to w.
	isTerminal func(w io.Writer) bool

	configPath string
	output     string
	noColor    bool
	debug      bool
}

// NewRootCmd creates the root command of the ecocalc CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{
		logger:     zerolog.Nop(),
		lookupEnv:  lookupEnv,
		isTerminal: isWriterTerminal,
	}

	cmd := &cobra.Command{
		Use:           "ecocalc",
		Short:         "Calculate CO₂ emissions and savings of everyday activities",
		Long:          "ecocalc converts everyday activities (cycling, meals, flights, recycling, ...) into kg of CO₂ emitted or saved.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logResult != nil {
				return a.logResult.Close()
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.ecocalc/config.yaml)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	cmd.AddCommand(
		newCalcCmd(a),
		newFactorsCmd(a),
		newActivitiesCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

const rootCmdExample = `  # CO₂ saved cycling 5.2 km instead of driving
  ecocalc calc bike --km 5.2

  # Emissions of a medium-range flight as JSON
  ecocalc calc flight --km 1200 --range medium -o json

  # List the factors of the food calculator
  ecocalc factors food

  # Write a default configuration file
  ecocalc config init`

// setup loads the configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	path := config.ResolvePath(a.configPath, a.lookupEnv)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.output
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	if _, ok := a.lookupEnv("NO_COLOR"); ok {
		cfg.Output.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	setupLogging(cmd, a)
	return nil
}

// styled reports whether text output to w gets lipgloss styling.
func (a *app) styled(w io.Writer) bool {
	return !a.cfg.Output.NoColor && a.isTerminal(w)
}

// isWriterTerminal reports whether w is a terminal file.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// usageError marks a command-line mistake.
func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}
