package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/core"
)

func TestUpsertBudgetPlanReplacesOnNaturalKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	plan := core.BudgetPlan{
		Month: "03", Year: 2024,
		Category: "Food", Subcategory: "Food (Groceries)",
		Planned: core.Money{Cents: 50000},
	}
	require.NoError(t, repo.UpsertBudgetPlan(ctx, plan))

	plan.Planned = core.Money{Cents: 60000}
	require.NoError(t, repo.UpsertBudgetPlan(ctx, plan))

	plans, err := repo.BudgetPlans(ctx, "03", 2024)
	require.NoError(t, err)
	require.Len(t, plans["Food"], 1)
	assert.Equal(t, int64(60000), plans["Food"]["Food (Groceries)"].Cents)
}

func TestCopyBudgetFromPreviousMonth(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBudgetPlan(ctx, core.BudgetPlan{
		Month: "02", Year: 2024,
		Category: "Housing", Subcategory: "Mortgage",
		Planned: core.Money{Cents: 250000},
	}))
	require.NoError(t, repo.UpsertBudgetPlan(ctx, core.BudgetPlan{
		Month: "02", Year: 2024,
		Category: "Food", Subcategory: "Food (Groceries)",
		Planned: core.Money{Cents: 80000},
	}))

	copied, err := repo.CopyBudgetFromPreviousMonth(ctx, "03", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	plans, err := repo.BudgetPlans(ctx, "03", 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), plans["Housing"]["Mortgage"].Cents)
	assert.Equal(t, int64(80000), plans["Food"]["Food (Groceries)"].Cents)
}

func TestCopyBudgetAcrossYearBoundary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// January 2025 copies from December 2024.
	require.NoError(t, repo.UpsertBudgetPlan(ctx, core.BudgetPlan{
		Month: "12", Year: 2024,
		Category: "Other", Subcategory: "Gifts",
		Planned: core.Money{Cents: 30000},
	}))

	copied, err := repo.CopyBudgetFromPreviousMonth(ctx, "01", 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, copied)

	plans, err := repo.BudgetPlans(ctx, "01", 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), plans["Other"]["Gifts"].Cents)
}

func TestCopyBudgetWithNoSourcePlans(t *testing.T) {
	repo := newTestRepo(t)

	copied, err := repo.CopyBudgetFromPreviousMonth(context.Background(), "06", 2024)
	require.NoError(t, err)
	assert.Zero(t, copied)
}
