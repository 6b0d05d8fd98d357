package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"budgetbook/internal/core"
)

var (
	incomeHeader = []string{
		"Date", "Source", "Amount", "Person", "Account", "Description", "Is Transfer",
	}
	expenseHeader = []string{
		"Date", "Category", "Subcategory", "Amount", "Person", "Description", "Account", "Cleared",
	}
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ExportMonth writes a month's transactions as a two-section CSV: an
// INCOME block, a blank separator row, then an EXPENSES block, each with
// its fixed header.
func ExportMonth(w io.Writer, data core.MonthlyData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"INCOME"}); err != nil {
		return fmt.Errorf("write income section: %w", err)
	}
	if err := cw.Write(incomeHeader); err != nil {
		return fmt.Errorf("write income header: %w", err)
	}
	for _, in := range data.Income {
		row := []string{
			in.Date, in.Source, in.Amount.String(), in.Person, in.Account,
			in.Description, yesNo(in.IsTransfer),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write income row: %w", err)
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	if err := cw.Write([]string{"EXPENSES"}); err != nil {
		return fmt.Errorf("write expenses section: %w", err)
	}
	if err := cw.Write(expenseHeader); err != nil {
		return fmt.Errorf("write expenses header: %w", err)
	}
	for _, e := range data.Expenses {
		row := []string{
			e.Date, e.Category, e.Subcategory, e.Amount.String(), e.Person,
			e.Description, e.Account, yesNo(e.Cleared),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write expense row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportMonthToFile writes ExportMonth output to the file at path,
// creating or truncating it.
func ExportMonthToFile(path string, data core.MonthlyData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := ExportMonth(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
