// Package csvio maps external CSV rows onto income and expense records
// and renders a month's transactions back out as CSV.
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"budgetbook/internal/core"
)

// Kind selects which entity an import file holds.
type Kind string

const (
	KindExpenses Kind = "expenses"
	KindIncome   Kind = "income"
)

// TransactionStore is the slice of the repository the importer writes
// through.
type TransactionStore interface {
	AddIncome(ctx context.Context, in core.Income) (int64, error)
	AddExpense(ctx context.Context, e core.Expense) (int64, error)
}

// RowError records a single failed row. Row is the 1-based index of the
// failing data row, counted after the header.
type RowError struct {
	Row     int
	Message string
}

// ImportResult summarizes one import batch. Failed rows never abort the
// batch; they accumulate in Errors while later rows keep importing.
type ImportResult struct {
	BatchID  string
	Imported int
	Errors   []RowError
}

// ImportFile imports the CSV file at path. Whole-file failures (missing
// file, unreadable header) return an error; per-row failures land in the
// result.
func ImportFile(ctx context.Context, path string, kind Kind, store TransactionStore) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return Import(ctx, f, kind, store)
}

// Import reads header-mapped CSV rows from r and inserts them through
// store. Missing columns take defaults (source/category "Other", account
// "Checking", person "Joint", date today, cleared true, is-transfer
// false); malformed rows are recorded and skipped.
func Import(ctx context.Context, r io.Reader, kind Kind, store TransactionStore) (ImportResult, error) {
	if kind != KindExpenses && kind != KindIncome {
		return ImportResult{}, fmt.Errorf("unsupported import kind %q", kind)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	result := ImportResult{BatchID: uuid.NewString()}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Message: err.Error()})
			continue
		}

		if err := importRow(ctx, cols, record, kind, store); err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	slog.InfoContext(ctx, "CSV import finished",
		"batch_id", result.BatchID,
		"kind", string(kind),
		"imported", result.Imported,
		"errors", len(result.Errors))

	return result, nil
}

func importRow(ctx context.Context, cols map[string]int, record []string, kind Kind, store TransactionStore) error {
	get := func(name, fallback string) string {
		i, ok := cols[name]
		if !ok {
			return fallback
		}
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	amount, err := core.ParseMoney(get("Amount", "0"))
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	switch kind {
	case KindExpenses:
		_, err = store.AddExpense(ctx, core.Expense{
			Date:        get("Date", core.Today()),
			Category:    get("Category", "Other"),
			Subcategory: get("Sub Category", "Other"),
			Amount:      amount,
			Person:      get("Person", "Joint"),
			Description: get("Description", ""),
			Account:     get("Account", "Checking"),
			Cleared:     strings.EqualFold(get("Cleared", "True"), "true"),
		})
	case KindIncome:
		_, err = store.AddIncome(ctx, core.Income{
			Date:        get("Date", core.Today()),
			Source:      get("Source", "Other"),
			Amount:      amount,
			Person:      get("Person", "Joint"),
			Account:     get("Account", "Checking"),
			Description: get("Description", ""),
			IsTransfer:  strings.EqualFold(get("IsTransfer", "False"), "true"),
			FromAccount: get("FromAccount", ""),
		})
	}
	return err
}
