// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/i18n"
)

func newEvalCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "eval [keys...]",
		Short: "Press a sequence of keys and print the result",
		Long: `Feeds key presses to the calculator and prints the final display
followed by any calculations added to the history.

Keys: 0-9 . + - * / =, x (delete), c (clear), h (clear history).
Without arguments the keys are read from stdin.`,
		Example: `  keycalc eval 12+30=
  keycalc eval --trace "7/0="`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if len(args) == 0 {
				r = cmd.InOrStdin()
			}
			return runEval(cmd, r, args, trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the display after every key")
	return cmd
}

// runEval reads keys from args, or from r when args is empty.
func runEval(cmd *cobra.Command, r io.Reader, args []string, trace bool) error {
	text := strings.Join(args, "")
	if r != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("could not read keys: %w", err)
		}
		text = string(data)
	}

	keys, err := calc.ParseKeys(text)
	if err != nil {
		return err
	}

	acc, cleanup, err := newAccumulator(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	var added []calc.Entry
	for _, k := range keys {
		o := acc.Press(cmd.Context(), k)
		if o.Entry != nil {
			added = append(added, *o.Entry)
		}
		if k.Kind == calc.KeyClearHistory {
			added = nil
		}
		if trace {
			fmt.Fprintf(out, "%-14s %s\n", k.Label(), o.Display)
		}
	}

	if !trace {
		fmt.Fprintln(out, acc.Display())
	}
	if len(added) > 0 {
		fmt.Fprintln(out, i18n.T("cli.eval_history"))
		for _, e := range added {
			fmt.Fprintln(out, e.String())
		}
	}
	return nil
}
