package storage

import (
	"context"
	"log/slog"
	"time"

	"budgetbook/internal/core"
)

type seedAccount struct {
	name        string
	accountType string
	liquidity   string
	person      string
	institution string
}

var defaultAccounts = []seedAccount{
	{"Jeff's Roth Accounts", "Retirement", core.LiquidityNonLiquid, "Jeff", "Vanguard"},
	{"Jeff's 401k Accounts", "Retirement", core.LiquidityNonLiquid, "Jeff", "Employer"},
	{"Vanessa's Roth 401k Accounts", "Retirement", core.LiquidityNonLiquid, "Vanessa", "Employer"},
	{"Vanessa's Roth Accounts", "Retirement", core.LiquidityNonLiquid, "Vanessa", "Vanguard"},
	{"Emergency Fund", "Savings", core.LiquidityLiquid, "Joint", "Bank of America"},
	{"House Fund", "Savings", core.LiquiditySemiLiquid, "Joint", "Bank of America"},
	{"Vacation Fund", "Savings", core.LiquidityLiquid, "Joint", "Bank of America"},
	{"Baby Fund", "Savings", core.LiquidityLiquid, "Joint", "Bank of America"},
	{"HSA", "Health Savings", core.LiquiditySemiLiquid, "Jeff", "Health Equity"},
	{"Betterment", "Investment", core.LiquiditySemiLiquid, "Joint", "Betterment"},
	{"Checking", "Cash", core.LiquidityLiquid, "Joint", "Bank of America"},
}

type seedAsset struct {
	name       string
	assetType  string
	valueCents int64
}

var defaultAssets = []seedAsset{
	{"Primary Residence", "Real Estate", 54858400},
	{"Lima Apartment", "Real Estate", 5200000},
	{"Tiguan", "Vehicle", 3837900},
}

type seedGoal struct {
	name        string
	targetCents int64
	priority    int
	notes       string
}

var defaultGoals = []seedGoal{
	{"Vacation", 300000, 1, "Travel fund"},
	{"Emergency Fund", 2400000, 1, "6 months expenses"},
	{"Baby Fund", 800000, 2, "Child expenses"},
	{"House Down Payment", 8000000, 3, "Future home"},
}

// seedDefaults inserts the default reference data. Every statement is
// INSERT OR IGNORE on the natural unique key, so re-running after first
// open is a no-op. Failures are logged and swallowed: seeding is
// best-effort and never blocks opening the database.
func (r *SQLiteRepository) seedDefaults(ctx context.Context) {
	today := core.Today()

	for _, a := range defaultAccounts {
		_, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO investment_accounts
			(account_name, account_type, liquidity, person, institution,
			 current_balance_cents, previous_balance_cents, last_updated)
			VALUES (?, ?, ?, ?, ?, 0, 0, ?)`,
			a.name, a.accountType, a.liquidity, a.person, a.institution, today)
		if err != nil {
			slog.WarnContext(ctx, "Seed investment account failed", "name", a.name, "error", err)
		}
	}

	for _, a := range defaultAssets {
		_, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO real_assets
			(asset_name, asset_type, current_value_cents, last_updated)
			VALUES (?, ?, ?, ?)`,
			a.name, a.assetType, a.valueCents, today)
		if err != nil {
			slog.WarnContext(ctx, "Seed real asset failed", "name", a.name, "error", err)
		}
	}

	// savings_goals has no unique name constraint; guard with a NOT EXISTS
	// so reopening does not duplicate goals.
	targetDate := time.Now().AddDate(1, 0, 0).Format(core.DateFormat)
	for _, g := range defaultGoals {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO savings_goals (name, target_amount_cents, priority, notes, target_date)
			SELECT ?, ?, ?, ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM savings_goals WHERE name = ?)`,
			g.name, g.targetCents, g.priority, g.notes, targetDate, g.name)
		if err != nil {
			slog.WarnContext(ctx, "Seed savings goal failed", "name", g.name, "error", err)
		}
	}
}
