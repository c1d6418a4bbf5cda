// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate keeps config lookups away from the developer's real files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// run executes a fresh root command and returns its stdout.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_EvaluatesStdinWhenNotATerminal(t *testing.T) {
	isolate(t)
	orig := stdinIsTerminal
	defer func() { stdinIsTerminal = orig }()
	stdinIsTerminal = func() bool { return false }

	out, err := run(t, strings.NewReader("9*9=\n"))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if out != "81\nHistory:\n9 * 9 = 81\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSetup_ExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := run(t, nil, "--config", filepath.Join(dir, "missing.yaml"), "eval", "1")
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestSetup_ReadsConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("calc:\n  segment_decimal: true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, nil, "--config", path, "eval", "1.5+2.5=")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.HasPrefix(out, "4\n") {
		t.Fatalf("expected segment decimal from config file, got %q", out)
	}
}

func TestSetup_InvalidLogLevel(t *testing.T) {
	isolate(t)
	if _, err := run(t, nil, "--log.level", "loud", "eval", "1"); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestConfigInit_WritesEffectiveConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "keycalc.yaml")
	out, err := run(t, nil, "--history.persist", "config", "init", "-o", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "persist: true") {
		t.Fatalf("expected flag value in written config, got:\n%s", data)
	}
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := run(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
