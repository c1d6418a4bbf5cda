// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the keypad over HTTP",
		Long: `Starts an HTTP server sharing one calculator between all clients.

  POST   /keys     {"keys":"2+3="}
  GET    /state
  POST   /clear
  DELETE /history
  GET    /health
  GET    /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			acc, cleanup, err := newAccumulator(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := server.New(acc, server.NewMetrics())
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.serve_listening", appConfig.Server.Addr))
			return srv.ListenAndServe(ctx, appConfig.Server.Addr)
		},
	}
	cmd.Flags().String("server.addr", "127.0.0.1:8080", "Address to listen on")
	return cmd
}
