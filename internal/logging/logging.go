// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// SetLevel sets the minimum level by name ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput redirects the logger to w.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ToFile redirects logging to path (appending) and returns a closer. An
// empty path discards log output; the TUI uses this to keep the screen clean.
func ToFile(path string) (io.Closer, error) {
	if path == "" {
		L.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	L.SetOutput(f)
	return f, nil
}
