package storage

import (
	"context"
	"fmt"
	"log/slog"

	"budgetbook/internal/core"
)

// AddIncome inserts an income entry and returns its id. Month and year
// are derived from the date before anything is written.
func (r *SQLiteRepository) AddIncome(ctx context.Context, in core.Income) (int64, error) {
	month, year, err := core.SplitDate(in.Date)
	if err != nil {
		return 0, fmt.Errorf("add income: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO income
		(date, source, amount_cents, person, account, description, is_transfer,
		 from_account, month, year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Date, in.Source, in.Amount.Cents, in.Person, in.Account,
		in.Description, in.IsTransfer, in.FromAccount, month, year)
	if err != nil {
		return 0, fmt.Errorf("insert income: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("income insert id: %w", err)
	}

	slog.InfoContext(ctx, "Income saved",
		"id", id,
		"source", in.Source,
		"amount", in.Amount.String(),
		"month", month,
		"year", year,
		"is_transfer", in.IsTransfer)

	return id, nil
}

// UpdateIncome replaces the full record for in.ID, re-deriving month and
// year from the (possibly changed) date.
func (r *SQLiteRepository) UpdateIncome(ctx context.Context, in core.Income) error {
	month, year, err := core.SplitDate(in.Date)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE income SET date = ?, source = ?, amount_cents = ?, person = ?,
		account = ?, description = ?, is_transfer = ?, from_account = ?,
		month = ?, year = ?
		WHERE id = ?`,
		in.Date, in.Source, in.Amount.Cents, in.Person, in.Account,
		in.Description, in.IsTransfer, in.FromAccount, month, year, in.ID)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}
	return nil
}

// DeleteIncome removes an income entry by id. Deleting a nonexistent id
// is a silent no-op.
func (r *SQLiteRepository) DeleteIncome(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return nil
}

const incomeColumns = `id, date, source, amount_cents, person, account,
	COALESCE(description, ''), is_transfer, COALESCE(from_account, ''), month, year`

// IncomeForMonth returns the month's income entries, newest date first.
func (r *SQLiteRepository) IncomeForMonth(ctx context.Context, month string, year int) ([]core.Income, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+incomeColumns+` FROM income
		WHERE month = ? AND year = ?
		ORDER BY date DESC, id DESC`, month, year)
	if err != nil {
		return nil, fmt.Errorf("query income: %w", err)
	}
	defer rows.Close()

	var entries []core.Income
	for rows.Next() {
		var in core.Income
		if err := rows.Scan(&in.ID, &in.Date, &in.Source, &in.Amount.Cents,
			&in.Person, &in.Account, &in.Description, &in.IsTransfer,
			&in.FromAccount, &in.Month, &in.Year); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		entries = append(entries, in)
	}
	return entries, rows.Err()
}
