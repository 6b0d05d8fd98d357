package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/core"
)

func TestSaveMonthlySummaryUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := core.MonthlySummary{
		Month: "03", Year: 2024,
		TotalIncome:   core.Money{Cents: 600000},
		TotalExpenses: core.Money{Cents: 450000},
		TotalSaved:    core.Money{Cents: 150000},
		SavingsRate:   25.0,
	}
	require.NoError(t, repo.SaveMonthlySummary(ctx, s))

	// Saving the same period again replaces the snapshot.
	s.TotalExpenses = core.Money{Cents: 470000}
	s.TotalSaved = core.Money{Cents: 130000}
	require.NoError(t, repo.SaveMonthlySummary(ctx, s))

	ytd, err := repo.YearToDate(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(600000), ytd.Income.Cents)
	assert.Equal(t, int64(470000), ytd.Expenses.Cents)
	assert.Equal(t, int64(130000), ytd.Saved.Cents)
}

func TestYearToDateAggregates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, rate := range []float64{20, 30} {
		require.NoError(t, repo.SaveMonthlySummary(ctx, core.MonthlySummary{
			Month:         fmt.Sprintf("%02d", i+1),
			Year:          2024,
			TotalIncome:   core.Money{Cents: 500000},
			TotalExpenses: core.Money{Cents: 400000},
			TotalSaved:    core.Money{Cents: 100000},
			SavingsRate:   rate,
		}))
	}
	// A different year stays out of the aggregate.
	require.NoError(t, repo.SaveMonthlySummary(ctx, core.MonthlySummary{
		Month: "12", Year: 2023,
		TotalIncome: core.Money{Cents: 999900},
	}))

	ytd, err := repo.YearToDate(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), ytd.Income.Cents)
	assert.Equal(t, int64(800000), ytd.Expenses.Cents)
	assert.Equal(t, int64(200000), ytd.Saved.Cents)
	assert.InDelta(t, 25.0, ytd.AvgSavingsRate, 1e-9)
}

func TestYearToDateEmptyYear(t *testing.T) {
	repo := newTestRepo(t)

	ytd, err := repo.YearToDate(context.Background(), 1990)
	require.NoError(t, err)
	assert.True(t, ytd.Income.IsZero())
	assert.Zero(t, ytd.AvgSavingsRate)
}

func TestHistoricalTrendsWindowAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	recent := core.MonthlySummary{
		Month:       fmt.Sprintf("%02d", int(now.Month())),
		Year:        now.Year(),
		TotalIncome: core.Money{Cents: 100000},
	}
	require.NoError(t, repo.SaveMonthlySummary(ctx, recent))

	// Far outside any reasonable trailing window.
	require.NoError(t, repo.SaveMonthlySummary(ctx, core.MonthlySummary{
		Month: "01", Year: 2000,
		TotalIncome: core.Money{Cents: 5},
	}))

	trends, err := repo.HistoricalTrends(ctx, 12)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, recent.Month, trends[0].Month)
	assert.Equal(t, recent.Year, trends[0].Year)
}

func TestHistoricalTrendsChronological(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Day-based offset: AddDate(0, -1, 0) from a month-end date can
	// normalize back into the current month.
	now := time.Now()
	prev := now.AddDate(0, 0, -31)

	require.NoError(t, repo.SaveMonthlySummary(ctx, core.MonthlySummary{
		Month: fmt.Sprintf("%02d", int(now.Month())), Year: now.Year(),
	}))
	require.NoError(t, repo.SaveMonthlySummary(ctx, core.MonthlySummary{
		Month: fmt.Sprintf("%02d", int(prev.Month())), Year: prev.Year(),
	}))

	trends, err := repo.HistoricalTrends(ctx, 6)
	require.NoError(t, err)
	require.Len(t, trends, 2)

	first := trends[0].Year*100 + monthInt(trends[0].Month)
	second := trends[1].Year*100 + monthInt(trends[1].Month)
	assert.Less(t, first, second)
}

func monthInt(m string) int {
	var n int
	fmt.Sscanf(m, "%d", &n)
	return n
}
