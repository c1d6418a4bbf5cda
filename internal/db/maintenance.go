// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"time"
)

// RunMaintenance performs engine-specific compaction. For SQLite this runs
// PRAGMA optimize, VACUUM, a WAL checkpoint and an integrity check; for
// Postgres VACUUM ANALYZE on the history table; for MySQL OPTIMIZE TABLE.
func (s *Store) RunMaintenance(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	switch s.dbType {
	case "sqlite":
		// PRAGMA optimize may not be supported in every environment.
		if _, err := execRaw(ctx, s.bun, "PRAGMA optimize;"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := execRaw(ctx, s.bun, "VACUUM;"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", mapDBError(err))
		}
		_, _ = execRaw(ctx, s.bun, "PRAGMA wal_checkpoint(TRUNCATE);")
		var res string
		if err := queryRawInto(ctx, s.bun, &res, "PRAGMA integrity_check;"); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case "postgres":
		if _, err := execRaw(ctx, s.bun, "VACUUM ANALYZE history;"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		if _, err := execRaw(ctx, s.bun, "OPTIMIZE TABLE history;"); err != nil {
			return fmt.Errorf("mysql optimize failed: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, s.dbType)
	}
	return nil
}
