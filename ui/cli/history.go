// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/archive"
	"github.com/toeirei/keycalc/internal/db"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage the persisted history",
		Long: `Operates on the history database. These commands require
history.persist to be enabled.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print every stored calculation",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, store *db.Store, _ []string) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, i18n.T("cli.history_empty"))
					return nil
				}
				for _, e := range entries {
					fmt.Fprintln(out, e.String())
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every stored calculation",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, store *db.Store, _ []string) error {
				n, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_cleared", n))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "export <file>",
			Short: "Export the history to a YAML file (zstd when the name ends in .zst)",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, store *db.Store, args []string) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if err := archive.WriteFile(args[0], entries); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_exported", len(entries), args[0]))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Append the calculations of an exported file to the history",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, store *db.Store, args []string) error {
				entries, err := archive.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
				if err := store.AppendAll(cmd.Context(), entries); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_imported", len(entries), args[0]))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "vacuum",
			Short: "Compact the history database",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, store *db.Store, _ []string) error {
				if err := store.RunMaintenance(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_vacuumed"))
				return nil
			}),
		},
	)

	return cmd
}

// withStore opens the configured store around fn, or explains how to
// enable persistence when it is off.
func withStore(fn func(cmd *cobra.Command, store *db.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !appConfig.History.Persist {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.persist_disabled"))
			return nil
		}
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Warnf("closing history database: %v", err)
			}
		}()
		return fn(cmd, store, args)
	}
}
