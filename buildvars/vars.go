// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars holds release metadata injected with
//
//	-ldflags "-X github.com/toeirei/keycalc/buildvars.Version=v1.0.0 -X github.com/toeirei/keycalc/buildvars.Commit=abc123"
//
// All values are empty for local builds.
package buildvars

var (
	Version string
	Commit  string
	Date    string
)

// VersionOrDefault returns Version, or def when it was not injected.
func VersionOrDefault(def string) string { return orDefault(Version, def) }

// CommitOrDefault returns Commit, or def when it was not injected.
func CommitOrDefault(def string) string { return orDefault(Commit, def) }

// DateOrDefault returns Date, or def when it was not injected.
func DateOrDefault(def string) string { return orDefault(Date, def) }

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
