// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrUnsupportedType is returned for a database.type other than sqlite,
// postgres or mysql.
var ErrUnsupportedType = errors.New("unsupported database type")

// ErrLocked is returned when the database refused a write because another
// process holds the lock.
var ErrLocked = errors.New("history database is locked")

// mapDBError maps driver errors to package sentinels. The mapping is
// string-based so this file does not import the drivers.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// SQLite SQLITE_BUSY, MySQL lock wait timeout (1205), Postgres lock_not_available (55P03)
	if strings.Contains(le, "database is locked") || strings.Contains(le, "sqlite_busy") ||
		strings.Contains(le, "1205") || strings.Contains(le, "55p03") {
		return errors.Join(ErrLocked, err)
	}
	return err
}
