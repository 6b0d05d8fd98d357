package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetbook/internal/csvio"
)

func newImportCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := csvio.ImportFile(cmd.Context(), args[0], csvio.Kind(kind), a.repo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d rows (batch %s)\n", result.Imported, result.BatchID)
			for _, rowErr := range result.Errors {
				fmt.Fprintf(out, "  row %d: %s\n", rowErr.Row, rowErr.Message)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d rows failed to import", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(csvio.KindExpenses), `"expenses" or "income"`)
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var (
		month string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a month's transactions to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}

			data, err := a.repo.MonthlyData(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			if err := csvio.ExportMonthToFile(args[0], data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d income and %d expense rows to %s\n",
				len(data.Income), len(data.Expenses), args[0])
			return nil
		},
	}

	addPeriodFlags(cmd, &month, &year)
	return cmd
}
