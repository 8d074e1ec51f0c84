package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ecocalc/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a))
	return cmd
}

// newConfigInitCmd creates the config init command, which writes the default
// configuration to the resolved config path.
func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.ecocalc/config.yaml
  ecocalc config init

  # Overwrite an existing file
  ecocalc config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			cfg.SetConfigPath(a.cfg.ConfigPath())

			if !force {
				if _, err := os.Stat(cfg.ConfigPath()); err == nil {
					return usageError("configuration file %s already exists, use --force to overwrite", cfg.ConfigPath())
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			a.logger.Debug().Str("path", cfg.ConfigPath()).Msg("configuration written")

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigShowCmd prints the effective configuration after env and flag overrides.
func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat := a.cfg.Output.Format
			if outputFormat == config.OutputText {
				outputFormat = config.OutputYAML
			}
			_, err := encode(cmd.OutOrStdout(), outputFormat, a.cfg)
			return err
		},
	}
}
