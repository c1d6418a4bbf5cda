// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/toeirei/keycalc/internal/calc"
	"github.com/uptrace/bun"
)

type historyRow struct {
	bun.BaseModel `bun:"table:history"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Num1          float64   `bun:"num1,notnull"`
	Operator      string    `bun:"operator,type:varchar(1),notnull"`
	Num2          float64   `bun:"num2,notnull"`
	Result        float64   `bun:"result,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}

func rowFromEntry(e calc.Entry) *historyRow {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	return &historyRow{
		Num1:      e.Num1,
		Operator:  e.Op.Glyph(),
		Num2:      e.Num2,
		Result:    e.Result,
		CreatedAt: at.UTC(),
	}
}

func (r historyRow) entry() (calc.Entry, error) {
	if len(r.Operator) != 1 {
		return calc.Entry{}, fmt.Errorf("history row %d: bad operator %q", r.ID, r.Operator)
	}
	op, ok := calc.ParseOperator(rune(r.Operator[0]))
	if !ok {
		return calc.Entry{}, fmt.Errorf("history row %d: bad operator %q", r.ID, r.Operator)
	}
	return calc.Entry{Num1: r.Num1, Op: op, Num2: r.Num2, Result: r.Result, At: r.CreatedAt}, nil
}

// Append stores one history entry.
func (s *Store) Append(ctx context.Context, e calc.Entry) error {
	if _, err := s.bun.NewInsert().Model(rowFromEntry(e)).Exec(ctx); err != nil {
		return fmt.Errorf("insert history entry: %w", mapDBError(err))
	}
	return nil
}

// AppendAll stores entries in one transaction.
func (s *Store) AppendAll(ctx context.Context, entries []calc.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]*historyRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, rowFromEntry(e))
	}
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert history entries: %w", mapDBError(err))
		}
		return nil
	})
}

// List returns every stored entry, oldest first.
func (s *Store) List(ctx context.Context) ([]calc.Entry, error) {
	var rows []historyRow
	if err := s.bun.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	out := make([]calc.Entry, 0, len(rows))
	for _, r := range rows {
		e, err := r.entry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.bun.NewSelect().Model((*historyRow)(nil)).Count(ctx)
}

// Clear deletes every stored entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.bun.NewDelete().Model((*historyRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("clear history: %w", mapDBError(err))
	}
	return nil
}

var _ calc.HistoryStore = (*Store)(nil)
