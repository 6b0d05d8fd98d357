package storage

import (
	"context"
	"fmt"
	"time"

	"budgetbook/internal/core"
)

// SaveMonthlySummary upserts the cached snapshot for (month, year).
func (r *SQLiteRepository) SaveMonthlySummary(ctx context.Context, s core.MonthlySummary) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO monthly_summary
		(month, year, total_income_cents, total_expenses_cents, total_saved_cents,
		 net_worth_cents, budget_variance_cents, savings_rate, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Month, s.Year, s.TotalIncome.Cents, s.TotalExpenses.Cents,
		s.TotalSaved.Cents, s.NetWorth.Cents, s.BudgetVariance.Cents,
		s.SavingsRate, s.Notes)
	if err != nil {
		return fmt.Errorf("save monthly summary: %w", err)
	}
	return nil
}

const summaryColumns = `month, year, total_income_cents, total_expenses_cents,
	total_saved_cents, net_worth_cents, budget_variance_cents, savings_rate,
	COALESCE(notes, '')`

// HistoricalTrends returns the saved summaries for the trailing N months
// (approximated as N*30 days back from now), oldest first.
func (r *SQLiteRepository) HistoricalTrends(ctx context.Context, months int) ([]core.MonthlySummary, error) {
	start := time.Now().AddDate(0, 0, -months*30)
	cutoff := start.Year()*100 + int(start.Month())

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+summaryColumns+` FROM monthly_summary
		WHERE year * 100 + CAST(month AS INTEGER) >= ?
		ORDER BY year, month`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query historical trends: %w", err)
	}
	defer rows.Close()

	var summaries []core.MonthlySummary
	for rows.Next() {
		var s core.MonthlySummary
		if err := rows.Scan(&s.Month, &s.Year, &s.TotalIncome.Cents,
			&s.TotalExpenses.Cents, &s.TotalSaved.Cents, &s.NetWorth.Cents,
			&s.BudgetVariance.Cents, &s.SavingsRate, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan monthly summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// YearToDate sums income, expenses and savings over the year's saved
// summaries and averages their savings rate. Months without a saved
// summary contribute nothing.
func (r *SQLiteRepository) YearToDate(ctx context.Context, year int) (core.YearToDate, error) {
	var ytd core.YearToDate
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_income_cents), 0),
		       COALESCE(SUM(total_expenses_cents), 0),
		       COALESCE(SUM(total_saved_cents), 0),
		       COALESCE(AVG(savings_rate), 0)
		FROM monthly_summary
		WHERE year = ?`, year).Scan(
		&ytd.Income.Cents, &ytd.Expenses.Cents, &ytd.Saved.Cents, &ytd.AvgSavingsRate)
	if err != nil {
		return core.YearToDate{}, fmt.Errorf("query year to date: %w", err)
	}
	return ytd, nil
}
