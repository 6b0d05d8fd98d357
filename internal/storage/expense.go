package storage

import (
	"context"
	"fmt"
	"log/slog"

	"budgetbook/internal/core"
)

// AddExpense inserts an expense entry and returns its id. Month and year
// are derived from the date before anything is written.
func (r *SQLiteRepository) AddExpense(ctx context.Context, e core.Expense) (int64, error) {
	month, year, err := core.SplitDate(e.Date)
	if err != nil {
		return 0, fmt.Errorf("add expense: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses
		(date, category, subcategory, amount_cents, person, description, account,
		 cleared, month, year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Date, e.Category, e.Subcategory, e.Amount.Cents, e.Person,
		e.Description, e.Account, e.Cleared, month, year)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"category", e.Category,
		"subcategory", e.Subcategory,
		"amount", e.Amount.String(),
		"month", month,
		"year", year)

	return id, nil
}

// UpdateExpense replaces the full record for e.ID, re-deriving month and
// year from the (possibly changed) date.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, e core.Expense) error {
	month, year, err := core.SplitDate(e.Date)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE expenses SET date = ?, category = ?, subcategory = ?,
		amount_cents = ?, person = ?, description = ?, account = ?, cleared = ?,
		month = ?, year = ?
		WHERE id = ?`,
		e.Date, e.Category, e.Subcategory, e.Amount.Cents, e.Person,
		e.Description, e.Account, e.Cleared, month, year, e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense entry by id. Deleting a nonexistent id
// is a silent no-op.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

const expenseColumns = `id, date, category, subcategory, amount_cents, person,
	COALESCE(description, ''), account, cleared, month, year`

// ExpensesForMonth returns the month's expense entries, newest date first.
func (r *SQLiteRepository) ExpensesForMonth(ctx context.Context, month string, year int) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE month = ? AND year = ?
		ORDER BY date DESC, id DESC`, month, year)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var entries []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Subcategory,
			&e.Amount.Cents, &e.Person, &e.Description, &e.Account,
			&e.Cleared, &e.Month, &e.Year); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
