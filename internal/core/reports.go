package core

// MonthTotals is the summary block of a month's activity. TotalIncome
// excludes transfers; TransferIn is the transfer total on its own.
type MonthTotals struct {
	TotalIncome     Money
	TotalExpenses   Money
	NetBalance      Money
	TransferIn      Money
	ClearedExpenses Money
	PendingExpenses Money
}

// MonthlyData is the full picture of one (month, year): raw transaction
// lists plus category rollups and the summary block.
type MonthlyData struct {
	Month             string
	Year              int
	Income            []Income
	Expenses          []Expense
	CategoryTotals    map[string]Money
	SubcategoryTotals map[string]map[string]Money
	Summary           MonthTotals
}

// BudgetComparison is one (category, subcategory) cell of a
// budget-vs-actual report. Variance is planned - actual; Percentage is
// actual/planned*100 when a plan exists, else 0.
type BudgetComparison struct {
	Planned    Money
	Actual     Money
	Variance   Money
	Percentage float64
}

// BudgetReport maps category -> subcategory -> comparison.
type BudgetReport map[string]map[string]BudgetComparison

// NetWorthSummary rolls investment balances up by liquidity tier, account
// type and person, and adds real asset value on top.
type NetWorthSummary struct {
	LiquidAssets         Money
	SemiLiquidAssets     Money
	NonLiquidAssets      Money
	RealAssets           Money
	TotalAssets          Money
	ByAccountType        map[string]Money
	ByPerson             map[string]Money
	MonthOverMonthChange Money
}

// YearToDate aggregates the saved monthly summaries of one year.
type YearToDate struct {
	Income         Money
	Expenses       Money
	Saved          Money
	AvgSavingsRate float64
}
