package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/core"
)

func TestAddExpenseDerivesMonthYear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddExpense(ctx, core.Expense{
		Date:        "2024-03-15",
		Category:    "Vehicles",
		Subcategory: "Gas",
		Amount:      core.Money{Cents: 5550},
		Person:      "Jeff",
		Account:     "Checking",
		Cleared:     true,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	expenses, err := repo.ExpensesForMonth(ctx, "03", 2024)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "03", expenses[0].Month)
	assert.Equal(t, 2024, expenses[0].Year)
}

func TestAddExpenseRejectsMalformedDate(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddExpense(context.Background(), core.Expense{
		Date:        "15/03/2024",
		Category:    "Other",
		Subcategory: "Other",
		Amount:      core.Money{Cents: 100},
	})
	assert.ErrorIs(t, err, core.ErrInvalidDate)
}

func TestUpdateExpenseRederivesMonthYear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddExpense(ctx, core.Expense{
		Date:        "2024-03-15",
		Category:    "Food",
		Subcategory: "Food (Take Out)",
		Amount:      core.Money{Cents: 2500},
		Person:      "Joint",
		Account:     "Checking",
		Cleared:     true,
	})
	require.NoError(t, err)

	err = repo.UpdateExpense(ctx, core.Expense{
		ID:          id,
		Date:        "2024-04-02",
		Category:    "Food",
		Subcategory: "Food (Take Out)",
		Amount:      core.Money{Cents: 2600},
		Person:      "Joint",
		Account:     "Checking",
		Cleared:     false,
	})
	require.NoError(t, err)

	// The row moved months: the denormalized columns follow the date.
	march, err := repo.ExpensesForMonth(ctx, "03", 2024)
	require.NoError(t, err)
	assert.Empty(t, march)

	april, err := repo.ExpensesForMonth(ctx, "04", 2024)
	require.NoError(t, err)
	require.Len(t, april, 1)
	assert.Equal(t, "04", april[0].Month)
	assert.Equal(t, 2024, april[0].Year)
	assert.Equal(t, int64(2600), april[0].Amount.Cents)
	assert.False(t, april[0].Cleared)
}

func TestDeleteExpenseMissingIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.DeleteExpense(context.Background(), 99999))
}

func TestIncomeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddIncome(ctx, core.Income{
		Date:        "2024-03-01",
		Source:      "Salary",
		Amount:      core.Money{Cents: 500000},
		Person:      "Vanessa",
		Account:     "Checking",
		Description: "March paycheck",
	})
	require.NoError(t, err)

	_, err = repo.AddIncome(ctx, core.Income{
		Date:        "2024-03-05",
		Source:      "Transfer",
		Amount:      core.Money{Cents: 100000},
		Person:      "Joint",
		Account:     "Vacation Fund",
		IsTransfer:  true,
		FromAccount: "Checking",
	})
	require.NoError(t, err)

	entries, err := repo.IncomeForMonth(ctx, "03", 2024)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest date first.
	assert.True(t, entries[0].IsTransfer)
	assert.Equal(t, "Checking", entries[0].FromAccount)
	assert.Equal(t, "Salary", entries[1].Source)
	assert.Equal(t, "03", entries[1].Month)
	assert.Equal(t, 2024, entries[1].Year)

	require.NoError(t, repo.DeleteIncome(ctx, id))
	entries, err = repo.IncomeForMonth(ctx, "03", 2024)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateIncomeRederivesMonthYear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddIncome(ctx, core.Income{
		Date:    "2024-12-31",
		Source:  "Bonus",
		Amount:  core.Money{Cents: 250000},
		Person:  "Jeff",
		Account: "Checking",
	})
	require.NoError(t, err)

	err = repo.UpdateIncome(ctx, core.Income{
		ID:      id,
		Date:    "2025-01-02",
		Source:  "Bonus",
		Amount:  core.Money{Cents: 250000},
		Person:  "Jeff",
		Account: "Checking",
	})
	require.NoError(t, err)

	january, err := repo.IncomeForMonth(ctx, "01", 2025)
	require.NoError(t, err)
	require.Len(t, january, 1)
	assert.Equal(t, "01", january[0].Month)
	assert.Equal(t, 2025, january[0].Year)
}
