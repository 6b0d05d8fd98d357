package core

import "errors"

// Liquidity tiers used to bucket net worth.
const (
	LiquidityLiquid     = "Liquid"
	LiquiditySemiLiquid = "Semi-Liquid"
	LiquidityNonLiquid  = "Non-Liquid"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

type (
	// Income is a single income or inter-account transfer entry. Month
	// and Year are denormalized from Date on every write; transfers are
	// excluded from total-income aggregates.
	Income struct {
		ID          int64
		Date        string
		Source      string
		Amount      Money
		Person      string
		Account     string
		Description string
		IsTransfer  bool
		FromAccount string
		Month       string
		Year        int
	}

	// Expense is a single spending entry classified under the fixed
	// category taxonomy. Cleared marks whether it has settled against
	// the account.
	Expense struct {
		ID          int64
		Date        string
		Category    string
		Subcategory string
		Amount      Money
		Person      string
		Description string
		Account     string
		Cleared     bool
		Month       string
		Year        int
	}

	// InvestmentAccount tracks a balance by liquidity tier and owner.
	// PreviousBalance always holds the balance before the most recent
	// update, which is what month-over-month change is computed from.
	InvestmentAccount struct {
		ID              int64
		Name            string
		Type            string
		Liquidity       string
		CurrentBalance  Money
		PreviousBalance Money
		LastUpdated     string
		Person          string
		Institution     string
		Notes           string
	}

	// RealAsset is a non-account asset (property, vehicle) valued at
	// CurrentValue.
	RealAsset struct {
		ID            int64
		Name          string
		Type          string
		CurrentValue  Money
		PurchasePrice Money
		PurchaseDate  string
		LastUpdated   string
		Notes         string
	}

	// SavingsGoal accumulates contributions toward a target. Goals are
	// deactivated, never deleted, so historical records survive.
	SavingsGoal struct {
		ID                  int64
		Name                string
		TargetAmount        Money
		CurrentAmount       Money
		MonthlyContribution Money
		TargetDate          string
		Priority            int
		Active              bool
		Category            string
		Notes               string
	}

	// BudgetPlan is a planned spending ceiling for one
	// (month, year, category, subcategory) tuple.
	BudgetPlan struct {
		Month       string
		Year        int
		Category    string
		Subcategory string
		Planned     Money
	}

	// MonthlySummary is a cached snapshot of one month's aggregate
	// totals, keyed uniquely on (month, year).
	MonthlySummary struct {
		Month          string
		Year           int
		TotalIncome    Money
		TotalExpenses  Money
		TotalSaved     Money
		NetWorth       Money
		BudgetVariance Money
		SavingsRate    float64
		Notes          string
	}
)
