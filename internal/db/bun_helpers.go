// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// rawRunner accepts either *bun.DB or bun.Tx.
type rawRunner interface {
	NewRaw(query string, args ...interface{}) *bun.RawQuery
}

func execRaw(ctx context.Context, r rawRunner, query string, args ...interface{}) (sql.Result, error) {
	return r.NewRaw(query, args...).Exec(ctx)
}

func queryRawInto(ctx context.Context, r rawRunner, dest interface{}, query string, args ...interface{}) error {
	return r.NewRaw(query, args...).Scan(ctx, dest)
}
