package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetbook/internal/core"
)

func newBudgetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budget plans",
	}
	cmd.AddCommand(newBudgetSetCommand(a), newBudgetCopyCommand(a), newBudgetShowCommand(a))
	return cmd
}

func newBudgetSetCommand(a *app) *cobra.Command {
	var (
		month       string
		year        int
		category    string
		subcategory string
		amountStr   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the planned amount for a category/subcategory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}
			planned, err := parseAmountFlag(amountStr)
			if err != nil {
				return err
			}

			err = a.repo.UpsertBudgetPlan(cmd.Context(), core.BudgetPlan{
				Month:       month,
				Year:        year,
				Category:    category,
				Subcategory: subcategory,
				Planned:     planned,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s / %s set to %s (%s/%d)\n",
				category, subcategory, planned.String(), month, year)
			return nil
		},
	}

	addPeriodFlags(cmd, &month, &year)
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "planned amount (required)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("subcategory")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBudgetCopyCommand(a *app) *cobra.Command {
	var (
		month string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy all plans from the previous month into the given month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}

			copied, err := a.repo.CopyBudgetFromPreviousMonth(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d plans into %s/%d\n", copied, month, year)
			return nil
		},
	}

	addPeriodFlags(cmd, &month, &year)
	return cmd
}

func newBudgetShowCommand(a *app) *cobra.Command {
	var (
		month string
		year  int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the month's budget plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(month, year); err != nil {
				return err
			}

			plans, err := a.repo.BudgetPlans(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "CATEGORY\tSUBCATEGORY\tPLANNED\n")
			for _, category := range sortedKeys(plans) {
				for _, subcategory := range sortedKeys(plans[category]) {
					fmt.Fprintf(w, "%s\t%s\t%s\n",
						category, subcategory, plans[category][subcategory].String())
				}
			}
			return w.Flush()
		},
	}

	addPeriodFlags(cmd, &month, &year)
	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
