// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/config"
	"github.com/toeirei/keycalc/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var system bool
	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		Long: `Writes the configuration currently in effect (defaults, file,
environment and flags merged) as YAML. By default it goes to the user
config directory; --system targets /etc/keycalc and --output any path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			var err error
			if path != "" {
				err = config.WriteConfigFileTo(&appConfig, path)
			} else {
				path, err = config.WriteConfigFile(&appConfig, system)
			}
			if err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config instead of the user config")
	initCmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path")
	cmd.AddCommand(initCmd)

	return cmd
}
