// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads keycalc settings from defaults, config files,
// KEYCALC_* environment variables and command flags (in increasing order of
// precedence) and writes default config files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full keycalc configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Calc     CalcConfig     `mapstructure:"calc" yaml:"calc"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI owns the terminal. Empty discards it.
	File string `mapstructure:"file" yaml:"file"`
}

// CalcConfig toggles fixes for the classic keypad quirks.
type CalcConfig struct {
	SegmentDecimal  bool `mapstructure:"segment_decimal" yaml:"segment_decimal"`
	ResetAfterError bool `mapstructure:"reset_after_error" yaml:"reset_after_error"`
}

type HistoryConfig struct {
	// Persist mirrors the history log into the database. Off by default:
	// history then lives only as long as the process.
	Persist bool `mapstructure:"persist" yaml:"persist"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Defaults returns the built-in values keyed the way viper expects.
func Defaults() map[string]any {
	return map[string]any{
		"language":               "en",
		"log.level":              "info",
		"log.file":               "",
		"calc.segment_decimal":   false,
		"calc.reset_after_error": false,
		"history.persist":        false,
		"database.type":          "sqlite",
		"database.dsn":           "./keycalc.db",
		"server.addr":            "127.0.0.1:8080",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keycalc")
		default:
			configDir = "/etc/keycalc"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keycalc")
	}

	return filepath.Join(configDir, "keycalc.yaml"), nil
}

// LoadConfig resolves T from defaults, the first keycalc.yaml found (or
// explicitPath), the environment and the flags of cmd. A missing config
// file is reported as viper.ConfigFileNotFoundError alongside the
// otherwise complete value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keycalc")
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("keycalc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user (or system) config path
// and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
