package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetbook/internal/services"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	cmd.AddCommand(
		newReportMonthCommand(a),
		newReportNetWorthCommand(a),
		newReportYTDCommand(a),
		newReportTrendsCommand(a),
	)
	return cmd
}

func newReportMonthCommand(a *app) *cobra.Command {
	var (
		month string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Monthly summary with budget comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}

			svc := services.NewReportService(a.repo)
			report, err := svc.MonthReport(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := report.Data.Summary
			fmt.Fprintf(out, "Summary for %s/%d\n", month, year)
			fmt.Fprintf(out, "  Income:       %s\n", s.TotalIncome.String())
			fmt.Fprintf(out, "  Expenses:     %s\n", s.TotalExpenses.String())
			fmt.Fprintf(out, "  Net balance:  %s\n", s.NetBalance.String())
			fmt.Fprintf(out, "  Transfers in: %s\n", s.TransferIn.String())
			fmt.Fprintf(out, "  Cleared:      %s\n", s.ClearedExpenses.String())
			fmt.Fprintf(out, "  Pending:      %s\n", s.PendingExpenses.String())
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "CATEGORY\tSUBCATEGORY\tPLANNED\tACTUAL\tVARIANCE\t%%\n")
			for _, category := range sortedKeys(report.Budget) {
				for _, subcategory := range sortedKeys(report.Budget[category]) {
					c := report.Budget[category][subcategory]
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f\n",
						category, subcategory,
						c.Planned.String(), c.Actual.String(), c.Variance.String(),
						c.Percentage)
				}
			}
			return w.Flush()
		},
	}

	addPeriodFlags(cmd, &month, &year)
	return cmd
}

func newReportNetWorthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "networth",
		Short: "Net worth rolled up by liquidity, type and person",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.repo.NetWorthSummary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Liquid:       %s\n", summary.LiquidAssets.String())
			fmt.Fprintf(out, "Semi-liquid:  %s\n", summary.SemiLiquidAssets.String())
			fmt.Fprintf(out, "Non-liquid:   %s\n", summary.NonLiquidAssets.String())
			fmt.Fprintf(out, "Real assets:  %s\n", summary.RealAssets.String())
			fmt.Fprintf(out, "Total:        %s\n", summary.TotalAssets.String())
			fmt.Fprintf(out, "MoM change:   %s\n", summary.MonthOverMonthChange.String())

			fmt.Fprintln(out, "\nBy account type:")
			for _, k := range sortedKeys(summary.ByAccountType) {
				fmt.Fprintf(out, "  %-16s %s\n", k, summary.ByAccountType[k].String())
			}
			fmt.Fprintln(out, "\nBy person:")
			for _, k := range sortedKeys(summary.ByPerson) {
				fmt.Fprintf(out, "  %-16s %s\n", k, summary.ByPerson[k].String())
			}
			return nil
		},
	}
}

func newReportYTDCommand(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "ytd",
		Short: "Year-to-date totals from closed months",
		RunE: func(cmd *cobra.Command, args []string) error {
			ytd, err := a.repo.YearToDate(cmd.Context(), year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Year-to-date %d\n", year)
			fmt.Fprintf(out, "  Income:            %s\n", ytd.Income.String())
			fmt.Fprintf(out, "  Expenses:          %s\n", ytd.Expenses.String())
			fmt.Fprintf(out, "  Saved:             %s\n", ytd.Saved.String())
			fmt.Fprintf(out, "  Avg savings rate:  %.1f%%\n", ytd.AvgSavingsRate)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "four-digit year (required)")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newReportTrendsCommand(a *app) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Closed-month history for the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if months == 0 {
				months = a.cfg.TrendMonths
			}

			trends, err := a.repo.HistoricalTrends(cmd.Context(), months)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "PERIOD\tINCOME\tEXPENSES\tSAVED\tNET WORTH\tRATE\n")
			for _, s := range trends {
				fmt.Fprintf(w, "%s/%d\t%s\t%s\t%s\t%s\t%.1f%%\n",
					s.Month, s.Year,
					s.TotalIncome.String(), s.TotalExpenses.String(),
					s.TotalSaved.String(), s.NetWorth.String(), s.SavingsRate)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&months, "months", 0, "trailing months (defaults to configured window)")
	return cmd
}

func newCloseMonthCommand(a *app) *cobra.Command {
	var (
		month string
		year  int
		notes string
	)

	cmd := &cobra.Command{
		Use:   "close-month",
		Short: "Compute and save the month's summary snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}

			svc := services.NewReportService(a.repo)
			summary, err := svc.CloseMonth(cmd.Context(), month, year, notes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Closed %s/%d: income %s, expenses %s, saved %s (rate %.1f%%)\n",
				month, year, summary.TotalIncome.String(), summary.TotalExpenses.String(),
				summary.TotalSaved.String(), summary.SavingsRate)
			return nil
		},
	}

	addPeriodFlags(cmd, &month, &year)
	cmd.Flags().StringVar(&notes, "notes", "", "notes to store with the snapshot")
	return cmd
}
