package storage

import (
	"context"
	"fmt"

	"budgetbook/internal/core"
)

// MonthlyData assembles the full picture of one (month, year): raw income
// and expense lists, category and subcategory totals, and the summary
// block. Transfers are excluded from total income and reported separately
// as transfer-in.
func (r *SQLiteRepository) MonthlyData(ctx context.Context, month string, year int) (core.MonthlyData, error) {
	data := core.MonthlyData{
		Month:             month,
		Year:              year,
		CategoryTotals:    make(map[string]core.Money),
		SubcategoryTotals: make(map[string]map[string]core.Money),
	}

	income, err := r.IncomeForMonth(ctx, month, year)
	if err != nil {
		return data, err
	}
	data.Income = income

	expenses, err := r.ExpensesForMonth(ctx, month, year)
	if err != nil {
		return data, err
	}
	data.Expenses = expenses

	rows, err := r.db.QueryContext(ctx, `
		SELECT category, subcategory, SUM(amount_cents)
		FROM expenses
		WHERE month = ? AND year = ?
		GROUP BY category, subcategory`, month, year)
	if err != nil {
		return data, fmt.Errorf("query category totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, subcategory string
		var cents int64
		if err := rows.Scan(&category, &subcategory, &cents); err != nil {
			return data, fmt.Errorf("scan category total: %w", err)
		}
		total := core.Money{Cents: cents}
		data.CategoryTotals[category] = data.CategoryTotals[category].Add(total)
		if data.SubcategoryTotals[category] == nil {
			data.SubcategoryTotals[category] = make(map[string]core.Money)
		}
		data.SubcategoryTotals[category][subcategory] = total
	}
	if err := rows.Err(); err != nil {
		return data, err
	}

	for _, in := range income {
		if in.IsTransfer {
			data.Summary.TransferIn = data.Summary.TransferIn.Add(in.Amount)
		} else {
			data.Summary.TotalIncome = data.Summary.TotalIncome.Add(in.Amount)
		}
	}
	for _, e := range expenses {
		data.Summary.TotalExpenses = data.Summary.TotalExpenses.Add(e.Amount)
		if e.Cleared {
			data.Summary.ClearedExpenses = data.Summary.ClearedExpenses.Add(e.Amount)
		} else {
			data.Summary.PendingExpenses = data.Summary.PendingExpenses.Add(e.Amount)
		}
	}
	data.Summary.NetBalance = data.Summary.TotalIncome.Sub(data.Summary.TotalExpenses)

	return data, nil
}

// BudgetVsActual left-merges the period's plans with its summed actual
// spend per (category, subcategory). Variance is planned - actual.
// Percentage is actual/planned*100 when a positive plan exists, else 0.
// Pairs present only in actuals get planned 0 and variance -actual.
func (r *SQLiteRepository) BudgetVsActual(ctx context.Context, month string, year int) (core.BudgetReport, error) {
	report := make(core.BudgetReport)

	plans, err := r.BudgetPlans(ctx, month, year)
	if err != nil {
		return nil, err
	}
	for category, subs := range plans {
		report[category] = make(map[string]core.BudgetComparison)
		for subcategory, planned := range subs {
			report[category][subcategory] = core.BudgetComparison{Planned: planned}
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT category, subcategory, SUM(amount_cents)
		FROM expenses
		WHERE month = ? AND year = ?
		GROUP BY category, subcategory`, month, year)
	if err != nil {
		return nil, fmt.Errorf("query actual spend: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, subcategory string
		var cents int64
		if err := rows.Scan(&category, &subcategory, &cents); err != nil {
			return nil, fmt.Errorf("scan actual spend: %w", err)
		}
		actual := core.Money{Cents: cents}

		if report[category] == nil {
			report[category] = make(map[string]core.BudgetComparison)
		}
		cmp, planned := report[category][subcategory]
		cmp.Actual = actual
		cmp.Variance = cmp.Planned.Sub(actual)
		if planned {
			cmp.Percentage = actual.PercentOf(cmp.Planned)
		}
		report[category][subcategory] = cmp
	}
	return report, rows.Err()
}

// NetWorthSummary rolls every investment balance up by liquidity tier,
// account type and person, adds total real asset value, and reports the
// month-over-month change as the sum of (current - previous) deltas.
func (r *SQLiteRepository) NetWorthSummary(ctx context.Context) (core.NetWorthSummary, error) {
	summary := core.NetWorthSummary{
		ByAccountType: make(map[string]core.Money),
		ByPerson:      make(map[string]core.Money),
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT account_type, liquidity, COALESCE(person, ''),
		       current_balance_cents, previous_balance_cents
		FROM investment_accounts`)
	if err != nil {
		return summary, fmt.Errorf("query investment balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var accountType, liquidity, person string
		var current, previous core.Money
		if err := rows.Scan(&accountType, &liquidity, &person,
			&current.Cents, &previous.Cents); err != nil {
			return summary, fmt.Errorf("scan investment balance: %w", err)
		}

		switch liquidity {
		case core.LiquidityLiquid:
			summary.LiquidAssets = summary.LiquidAssets.Add(current)
		case core.LiquiditySemiLiquid:
			summary.SemiLiquidAssets = summary.SemiLiquidAssets.Add(current)
		default:
			summary.NonLiquidAssets = summary.NonLiquidAssets.Add(current)
		}

		summary.ByAccountType[accountType] = summary.ByAccountType[accountType].Add(current)
		if person != "" {
			summary.ByPerson[person] = summary.ByPerson[person].Add(current)
		}
		summary.MonthOverMonthChange = summary.MonthOverMonthChange.Add(current.Sub(previous))
	}
	if err := rows.Err(); err != nil {
		return summary, err
	}

	var realAssets int64
	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(current_value_cents), 0) FROM real_assets`).Scan(&realAssets)
	if err != nil {
		return summary, fmt.Errorf("sum real assets: %w", err)
	}
	summary.RealAssets = core.Money{Cents: realAssets}

	summary.TotalAssets = summary.LiquidAssets.
		Add(summary.SemiLiquidAssets).
		Add(summary.NonLiquidAssets).
		Add(summary.RealAssets)

	return summary, nil
}
