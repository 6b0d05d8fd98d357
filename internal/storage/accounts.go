package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"budgetbook/internal/core"
)

// InvestmentAccounts returns every investment account ordered by type then
// name.
func (r *SQLiteRepository) InvestmentAccounts(ctx context.Context) ([]core.InvestmentAccount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_name, account_type, liquidity, current_balance_cents,
		       previous_balance_cents, last_updated, COALESCE(person, ''),
		       COALESCE(institution, ''), COALESCE(notes, '')
		FROM investment_accounts
		ORDER BY account_type, account_name`)
	if err != nil {
		return nil, fmt.Errorf("query investment accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.InvestmentAccount
	for rows.Next() {
		var a core.InvestmentAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Liquidity,
			&a.CurrentBalance.Cents, &a.PreviousBalance.Cents, &a.LastUpdated,
			&a.Person, &a.Institution, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan investment account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateAccountBalance sets a new current balance on the named account,
// rolling the prior current balance into previous_balance so the
// month-over-month delta stays computable. A missing account leaves the
// table untouched.
func (r *SQLiteRepository) UpdateAccountBalance(ctx context.Context, name string, balance core.Money) error {
	var prior int64
	err := r.db.QueryRowContext(ctx,
		`SELECT current_balance_cents FROM investment_accounts WHERE account_name = ?`,
		name).Scan(&prior)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("investment account %q not found", name)
	}
	if err != nil {
		return fmt.Errorf("read current balance: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE investment_accounts
		SET previous_balance_cents = ?, current_balance_cents = ?, last_updated = ?
		WHERE account_name = ?`,
		prior, balance.Cents, core.Today(), name)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}

	slog.InfoContext(ctx, "Account balance updated",
		"account", name,
		"balance", balance.String(),
		"previous", core.Money{Cents: prior}.String())

	return nil
}

// RealAssets returns every real asset ordered by type then name.
func (r *SQLiteRepository) RealAssets(ctx context.Context) ([]core.RealAsset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, asset_name, asset_type, current_value_cents,
		       purchase_price_cents, COALESCE(purchase_date, ''), last_updated,
		       COALESCE(notes, '')
		FROM real_assets
		ORDER BY asset_type, asset_name`)
	if err != nil {
		return nil, fmt.Errorf("query real assets: %w", err)
	}
	defer rows.Close()

	var assets []core.RealAsset
	for rows.Next() {
		var a core.RealAsset
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.CurrentValue.Cents,
			&a.PurchasePrice.Cents, &a.PurchaseDate, &a.LastUpdated,
			&a.Notes); err != nil {
			return nil, fmt.Errorf("scan real asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// UpdateAssetValue sets a new current value on the named asset and stamps
// last_updated.
func (r *SQLiteRepository) UpdateAssetValue(ctx context.Context, name string, value core.Money) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE real_assets
		SET current_value_cents = ?, last_updated = ?
		WHERE asset_name = ?`,
		value.Cents, core.Today(), name)
	if err != nil {
		return fmt.Errorf("update asset value: %w", err)
	}
	return nil
}
