// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, shared flags and the configuration
// bootstrap every subcommand runs through.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/config"
	"github.com/toeirei/keycalc/internal/db"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/internal/tui"
	"golang.org/x/term"
)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	// Running on defaults without any config file is fine.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	} else if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		return err
	}
	i18n.Init(appConfig.Language)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func calcOptions() calc.Options {
	return calc.Options{
		SegmentDecimal:  appConfig.Calc.SegmentDecimal,
		ResetAfterError: appConfig.Calc.ResetAfterError,
	}
}

// newAccumulator builds the accumulator from appConfig. With history
// persistence enabled it is seeded from, and mirrored into, the store; the
// returned cleanup closes it.
func newAccumulator(ctx context.Context, extra ...calc.Option) (*calc.Accumulator, func(), error) {
	opts := append([]calc.Option{calc.WithOptions(calcOptions())}, extra...)
	if !appConfig.History.Persist {
		return calc.New(opts...), func() {}, nil
	}

	store, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	entries, err := store.List(ctx)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	acc := calc.New(append(opts, calc.WithStore(store))...)
	acc.Restore(entries)
	logging.Debugf("restored %d history entries from %s", len(entries), store.Type())
	return acc, func() { _ = store.Close() }, nil
}

func openStore(ctx context.Context) (*db.Store, error) {
	store, err := db.Open(ctx, appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}
	return store, nil
}

// NewRootCmd builds a fresh command tree. Tests call it once per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keycalc",
		Short: "Keycalc is a keypad calculator for the terminal.",
		Long: `Keycalc is a four-function keypad calculator with a display and a
history of completed calculations.

Running without a subcommand launches the interactive keypad. When stdin is
not a terminal the keys are read from stdin and evaluated instead, e.g.

  echo "2+3=" | keycalc`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return runEval(cmd, cmd.InOrStdin(), nil, false)
			}
			return runTUI(cmd.Context())
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (including database logs)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is keycalc.yaml in the user config dir, /etc/keycalc or .)")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", "", "Log file used while the keypad owns the terminal")
	cmd.PersistentFlags().Bool("calc.segment_decimal", false, "Allow one decimal point per operand instead of per display")
	cmd.PersistentFlags().Bool("calc.reset_after_error", false, "Start a fresh display when typing over an error")
	cmd.PersistentFlags().Bool("history.persist", false, "Persist history in the database")
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./keycalc.db", "Database connection string (DSN)")

	cmd.AddCommand(
		newEvalCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func runTUI(ctx context.Context) error {
	closer, err := logging.ToFile(appConfig.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	acc, cleanup, err := newAccumulator(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(ctx, acc)
}
