// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package archive exports and imports calculation history as YAML,
// optionally zstd-compressed.
package archive

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/keycalc/internal/calc"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written into every archive.
const FormatVersion = 1

type document struct {
	Version    int       `yaml:"version"`
	ExportedAt time.Time `yaml:"exported_at"`
	Entries    []record  `yaml:"entries"`
}

type record struct {
	Num1     float64   `yaml:"num1"`
	Operator string    `yaml:"operator"`
	Num2     float64   `yaml:"num2"`
	Result   float64   `yaml:"result"`
	At       time.Time `yaml:"at,omitempty"`
	Text     string    `yaml:"text"`
}

// Compressed reports whether path selects zstd compression.
func Compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// Write encodes entries to w.
func Write(w io.Writer, entries []calc.Entry, compress bool) error {
	doc := document{Version: FormatVersion, ExportedAt: time.Now().UTC()}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, record{
			Num1:     e.Num1,
			Operator: e.Op.Glyph(),
			Num2:     e.Num2,
			Result:   e.Result,
			At:       e.At,
			Text:     e.String(),
		})
	}

	if !compress {
		return encode(w, doc)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if err := encode(zw, doc); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func encode(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode history: %w", err)
	}
	return enc.Close()
}

// Read decodes entries from r.
func Read(r io.Reader, compressed bool) ([]calc.Entry, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode history: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported history archive version %d", doc.Version)
	}

	out := make([]calc.Entry, 0, len(doc.Entries))
	for i, rec := range doc.Entries {
		if len(rec.Operator) != 1 {
			return nil, fmt.Errorf("entry %d: bad operator %q", i, rec.Operator)
		}
		op, ok := calc.ParseOperator(rune(rec.Operator[0]))
		if !ok {
			return nil, fmt.Errorf("entry %d: bad operator %q", i, rec.Operator)
		}
		out = append(out, calc.Entry{Num1: rec.Num1, Op: op, Num2: rec.Num2, Result: rec.Result, At: rec.At})
	}
	return out, nil
}

// WriteFile exports entries to path, compressing when it ends in ".zst".
func WriteFile(path string, entries []calc.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := Write(f, entries, Compressed(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile imports entries from path.
func ReadFile(path string) ([]calc.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, Compressed(path))
}
