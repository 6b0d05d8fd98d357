package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/core"
)

func TestExportMonthTwoSections(t *testing.T) {
	data := core.MonthlyData{
		Month: "03",
		Year:  2024,
		Income: []core.Income{
			{
				Date: "2024-03-01", Source: "Salary",
				Amount: core.Money{Cents: 500000},
				Person: "Jeff", Account: "Checking",
				Description: "March paycheck",
			},
			{
				Date: "2024-03-05", Source: "Transfer",
				Amount: core.Money{Cents: 50000},
				Person: "Joint", Account: "House Fund",
				IsTransfer: true,
			},
		},
		Expenses: []core.Expense{
			{
				Date: "2024-03-02", Category: "Food", Subcategory: "Food (Groceries)",
				Amount: core.Money{Cents: 4550},
				Person: "Joint", Account: "Checking", Cleared: true,
			},
		},
	}

	var sb strings.Builder
	require.NoError(t, ExportMonth(&sb, data))

	want := strings.Join([]string{
		"INCOME",
		"Date,Source,Amount,Person,Account,Description,Is Transfer",
		"2024-03-01,Salary,5000.00,Jeff,Checking,March paycheck,No",
		"2024-03-05,Transfer,500.00,Joint,House Fund,,Yes",
		"",
		"EXPENSES",
		"Date,Category,Subcategory,Amount,Person,Description,Account,Cleared",
		"2024-03-02,Food,Food (Groceries),45.50,Joint,,Checking,Yes",
	}, "\n") + "\n"

	assert.Equal(t, want, sb.String())
}

func TestExportMonthEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ExportMonth(&sb, core.MonthlyData{Month: "07", Year: 2024}))

	out := sb.String()
	assert.Contains(t, out, "INCOME\n")
	assert.Contains(t, out, "EXPENSES\n")
	assert.Contains(t, out, "Date,Source,Amount")
	assert.Contains(t, out, "Date,Category,Subcategory")
}
