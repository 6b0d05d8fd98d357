// Package services composes repository queries into the reports the CLI
// renders. The data layer stays synchronous; read-only fan-out lives here.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"budgetbook/internal/core"
	"budgetbook/internal/storage"
)

// MonthReport bundles everything the month view needs: the raw monthly
// data plus the budget-vs-actual comparison for the same period.
type MonthReport struct {
	Data   core.MonthlyData
	Budget core.BudgetReport
}

// ReportService runs the aggregate reports against a repository.
type ReportService struct {
	repo *storage.SQLiteRepository
}

func NewReportService(repo *storage.SQLiteRepository) *ReportService {
	return &ReportService{repo: repo}
}

// MonthReport fetches the monthly data and the budget comparison for one
// period. Both queries are read-only, so they fan out concurrently.
func (s *ReportService) MonthReport(ctx context.Context, month string, year int) (MonthReport, error) {
	var report MonthReport

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.repo.MonthlyData(ctx, month, year)
		if err != nil {
			return fmt.Errorf("monthly data: %w", err)
		}
		report.Data = data
		return nil
	})
	g.Go(func() error {
		budget, err := s.repo.BudgetVsActual(ctx, month, year)
		if err != nil {
			return fmt.Errorf("budget vs actual: %w", err)
		}
		report.Budget = budget
		return nil
	})

	if err := g.Wait(); err != nil {
		return MonthReport{}, err
	}
	return report, nil
}

// CloseMonth computes the month's aggregate snapshot and saves it to
// monthly_summary, feeding the year-to-date and trend reports. Saved is
// income minus expenses; savings rate is saved/income*100 when income is
// positive. The total budget variance is summed across every
// (category, subcategory) cell of the comparison.
func (s *ReportService) CloseMonth(ctx context.Context, month string, year int, notes string) (core.MonthlySummary, error) {
	report, err := s.MonthReport(ctx, month, year)
	if err != nil {
		return core.MonthlySummary{}, err
	}

	netWorth, err := s.repo.NetWorthSummary(ctx)
	if err != nil {
		return core.MonthlySummary{}, fmt.Errorf("net worth: %w", err)
	}

	var variance core.Money
	for _, subs := range report.Budget {
		for _, cmp := range subs {
			variance = variance.Add(cmp.Variance)
		}
	}

	saved := report.Data.Summary.TotalIncome.Sub(report.Data.Summary.TotalExpenses)
	summary := core.MonthlySummary{
		Month:          month,
		Year:           year,
		TotalIncome:    report.Data.Summary.TotalIncome,
		TotalExpenses:  report.Data.Summary.TotalExpenses,
		TotalSaved:     saved,
		NetWorth:       netWorth.TotalAssets,
		BudgetVariance: variance,
		SavingsRate:    saved.PercentOf(report.Data.Summary.TotalIncome),
		Notes:          notes,
	}

	if err := s.repo.SaveMonthlySummary(ctx, summary); err != nil {
		return core.MonthlySummary{}, err
	}

	slog.InfoContext(ctx, "Month closed",
		"month", month,
		"year", year,
		"income", summary.TotalIncome.String(),
		"expenses", summary.TotalExpenses.String(),
		"saved", summary.TotalSaved.String())

	return summary, nil
}
