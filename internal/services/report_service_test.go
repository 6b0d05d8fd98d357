package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/core"
	"budgetbook/internal/storage"
)

func newTestService(t *testing.T) (*ReportService, *storage.SQLiteRepository) {
	t.Helper()

	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "budgetbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewReportService(repo), repo
}

func seedMonth(t *testing.T, repo *storage.SQLiteRepository) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.AddIncome(ctx, core.Income{
		Date: "2024-03-01", Source: "Salary",
		Amount: core.Money{Cents: 800000}, Person: "Jeff", Account: "Checking",
	})
	require.NoError(t, err)

	_, err = repo.AddExpense(ctx, core.Expense{
		Date: "2024-03-10", Category: "Food", Subcategory: "Food (Groceries)",
		Amount: core.Money{Cents: 60000}, Person: "Joint", Account: "Checking",
		Cleared: true,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertBudgetPlan(ctx, core.BudgetPlan{
		Month: "03", Year: 2024,
		Category: "Food", Subcategory: "Food (Groceries)",
		Planned: core.Money{Cents: 50000},
	}))
}

func TestMonthReport(t *testing.T) {
	svc, repo := newTestService(t)
	seedMonth(t, repo)

	report, err := svc.MonthReport(context.Background(), "03", 2024)
	require.NoError(t, err)

	assert.Equal(t, int64(800000), report.Data.Summary.TotalIncome.Cents)
	assert.Equal(t, int64(60000), report.Data.Summary.TotalExpenses.Cents)

	groceries := report.Budget["Food"]["Food (Groceries)"]
	assert.Equal(t, int64(-10000), groceries.Variance.Cents)
	assert.InDelta(t, 120.0, groceries.Percentage, 1e-9)
}

func TestCloseMonthSavesSnapshot(t *testing.T) {
	svc, repo := newTestService(t)
	seedMonth(t, repo)
	ctx := context.Background()

	summary, err := svc.CloseMonth(ctx, "03", 2024, "first close")
	require.NoError(t, err)

	assert.Equal(t, int64(800000), summary.TotalIncome.Cents)
	assert.Equal(t, int64(60000), summary.TotalExpenses.Cents)
	assert.Equal(t, int64(740000), summary.TotalSaved.Cents)
	assert.Equal(t, int64(-10000), summary.BudgetVariance.Cents)
	assert.InDelta(t, 92.5, summary.SavingsRate, 1e-9)

	ytd, err := repo.YearToDate(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(800000), ytd.Income.Cents)
	assert.Equal(t, int64(740000), ytd.Saved.Cents)
}

func TestCloseMonthIsRepeatable(t *testing.T) {
	svc, repo := newTestService(t)
	seedMonth(t, repo)
	ctx := context.Background()

	_, err := svc.CloseMonth(ctx, "03", 2024, "")
	require.NoError(t, err)

	// Closing again after more activity replaces the snapshot rather
	// than adding a second row.
	_, err = repo.AddExpense(ctx, core.Expense{
		Date: "2024-03-25", Category: "Vehicles", Subcategory: "Gas",
		Amount: core.Money{Cents: 7000}, Person: "Jeff", Account: "Checking",
		Cleared: true,
	})
	require.NoError(t, err)

	summary, err := svc.CloseMonth(ctx, "03", 2024, "")
	require.NoError(t, err)
	assert.Equal(t, int64(67000), summary.TotalExpenses.Cents)

	ytd, err := repo.YearToDate(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(67000), ytd.Expenses.Cents)
}

func TestCloseMonthEmptyPeriod(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.CloseMonth(context.Background(), "11", 2023, "")
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.Zero(t, summary.SavingsRate)
}
