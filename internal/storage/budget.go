package storage

import (
	"context"
	"fmt"
	"log/slog"

	"budgetbook/internal/core"
)

// UpsertBudgetPlan writes the planned amount for one
// (month, year, category, subcategory) tuple, replacing any existing plan
// for the same key.
func (r *SQLiteRepository) UpsertBudgetPlan(ctx context.Context, p core.BudgetPlan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budget_plans (month, year, category, subcategory, planned_amount_cents)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(month, year, category, subcategory)
		DO UPDATE SET planned_amount_cents = excluded.planned_amount_cents`,
		p.Month, p.Year, p.Category, p.Subcategory, p.Planned.Cents)
	if err != nil {
		return fmt.Errorf("upsert budget plan: %w", err)
	}
	return nil
}

// BudgetPlans returns the period's plans as a nested
// category -> subcategory -> planned map.
func (r *SQLiteRepository) BudgetPlans(ctx context.Context, month string, year int) (map[string]map[string]core.Money, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, subcategory, planned_amount_cents
		FROM budget_plans
		WHERE month = ? AND year = ?
		ORDER BY category, subcategory`, month, year)
	if err != nil {
		return nil, fmt.Errorf("query budget plans: %w", err)
	}
	defer rows.Close()

	plans := make(map[string]map[string]core.Money)
	for rows.Next() {
		var category, subcategory string
		var cents int64
		if err := rows.Scan(&category, &subcategory, &cents); err != nil {
			return nil, fmt.Errorf("scan budget plan: %w", err)
		}
		if plans[category] == nil {
			plans[category] = make(map[string]core.Money)
		}
		plans[category][subcategory] = core.Money{Cents: cents}
	}
	return plans, rows.Err()
}

// CopyBudgetFromPreviousMonth re-upserts every plan of the period
// preceding (month, year) into (month, year), wrapping January back to
// December of the prior year. It returns the number of plans copied.
func (r *SQLiteRepository) CopyBudgetFromPreviousMonth(ctx context.Context, month string, year int) (int, error) {
	prevMonth, prevYear := core.PreviousMonth(month, year)

	rows, err := r.db.QueryContext(ctx, `
		SELECT category, subcategory, planned_amount_cents
		FROM budget_plans
		WHERE month = ? AND year = ?`, prevMonth, prevYear)
	if err != nil {
		return 0, fmt.Errorf("query previous month plans: %w", err)
	}

	var plans []core.BudgetPlan
	for rows.Next() {
		p := core.BudgetPlan{Month: month, Year: year}
		if err := rows.Scan(&p.Category, &p.Subcategory, &p.Planned.Cents); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan previous month plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, p := range plans {
		if err := r.UpsertBudgetPlan(ctx, p); err != nil {
			return 0, err
		}
	}

	slog.InfoContext(ctx, "Budget copied from previous month",
		"from_month", prevMonth,
		"from_year", prevYear,
		"to_month", month,
		"to_year", year,
		"plans", len(plans))

	return len(plans), nil
}
