package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetbook/internal/core"
)

// AddSavingsGoal inserts a new goal and returns its id. An empty target
// date defaults to one year from today.
func (r *SQLiteRepository) AddSavingsGoal(ctx context.Context, g core.SavingsGoal) (int64, error) {
	targetDate := g.TargetDate
	if targetDate == "" {
		targetDate = time.Now().AddDate(1, 0, 0).Format(core.DateFormat)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO savings_goals
		(name, target_amount_cents, current_amount_cents, monthly_contribution_cents,
		 target_date, priority, is_active, category, notes)
		VALUES (?, ?, 0, ?, ?, ?, 1, ?, ?)`,
		g.Name, g.TargetAmount.Cents, g.MonthlyContribution.Cents,
		targetDate, g.Priority, g.Category, g.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert savings goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("savings goal insert id: %w", err)
	}

	slog.InfoContext(ctx, "Savings goal created",
		"id", id,
		"name", g.Name,
		"target", g.TargetAmount.String())

	return id, nil
}

// SavingsGoals returns the active goals ordered by priority then target
// date. Deactivated goals are kept in the table but never listed.
func (r *SQLiteRepository) SavingsGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, target_amount_cents, current_amount_cents,
		       monthly_contribution_cents, COALESCE(target_date, ''), priority,
		       is_active, COALESCE(category, ''), COALESCE(notes, '')
		FROM savings_goals
		WHERE is_active = 1
		ORDER BY priority, target_date`)
	if err != nil {
		return nil, fmt.Errorf("query savings goals: %w", err)
	}
	defer rows.Close()

	var goals []core.SavingsGoal
	for rows.Next() {
		var g core.SavingsGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount.Cents,
			&g.CurrentAmount.Cents, &g.MonthlyContribution.Cents, &g.TargetDate,
			&g.Priority, &g.Active, &g.Category, &g.Notes); err != nil {
			return nil, fmt.Errorf("scan savings goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// ContributeToGoal adds amount to the goal's accumulated total
// (current += amount). This is the usual progress path; SetGoalAmount is
// the absolute-set alternative.
func (r *SQLiteRepository) ContributeToGoal(ctx context.Context, id int64, amount core.Money) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE savings_goals
		SET current_amount_cents = current_amount_cents + ?
		WHERE id = ?`, amount.Cents, id)
	if err != nil {
		return fmt.Errorf("contribute to goal: %w", err)
	}
	return nil
}

// SetGoalAmount overwrites the goal's accumulated total outright.
func (r *SQLiteRepository) SetGoalAmount(ctx context.Context, id int64, amount core.Money) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE savings_goals
		SET current_amount_cents = ?
		WHERE id = ?`, amount.Cents, id)
	if err != nil {
		return fmt.Errorf("set goal amount: %w", err)
	}
	return nil
}

// DeactivateGoal soft-deletes a goal. The row survives so historical goal
// records are preserved.
func (r *SQLiteRepository) DeactivateGoal(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE savings_goals
		SET is_active = 0
		WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate goal: %w", err)
	}
	return nil
}
