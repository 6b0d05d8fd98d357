package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"budgetbook/internal/core"
)

func newIncomeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record and remove income entries",
	}
	cmd.AddCommand(newIncomeAddCommand(a), newIncomeDeleteCommand(a))
	return cmd
}

func newIncomeAddCommand(a *app) *cobra.Command {
	var (
		date        string
		source      string
		amountStr   string
		person      string
		account     string
		description string
		isTransfer  bool
		fromAccount string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmountFlag(amountStr)
			if err != nil {
				return err
			}

			id, err := a.repo.AddIncome(cmd.Context(), core.Income{
				Date:        date,
				Source:      source,
				Amount:      amount,
				Person:      person,
				Account:     account,
				Description: description,
				IsTransfer:  isTransfer,
				FromAccount: fromAccount,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Income %d recorded: %s %s from %s\n",
				id, amount.String(), date, source)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", core.Today(), "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&source, "source", "", "income source (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 1250.00 (required)")
	cmd.Flags().StringVar(&person, "person", "Joint", "person")
	cmd.Flags().StringVar(&account, "account", "Checking", "destination account")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().BoolVar(&isTransfer, "transfer", false, "mark as inter-account transfer")
	cmd.Flags().StringVar(&fromAccount, "from-account", "", "source account for transfers")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newIncomeDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return a.repo.DeleteIncome(cmd.Context(), id)
		},
	}
}

func newExpenseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and remove expense entries",
	}
	cmd.AddCommand(newExpenseAddCommand(a), newExpenseDeleteCommand(a))
	return cmd
}

func newExpenseAddCommand(a *app) *cobra.Command {
	var (
		date        string
		category    string
		subcategory string
		amountStr   string
		person      string
		account     string
		description string
		pending     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmountFlag(amountStr)
			if err != nil {
				return err
			}
			if !core.ValidPair(category, subcategory) {
				return fmt.Errorf("unknown category/subcategory pair %q / %q", category, subcategory)
			}

			id, err := a.repo.AddExpense(cmd.Context(), core.Expense{
				Date:        date,
				Category:    category,
				Subcategory: subcategory,
				Amount:      amount,
				Person:      person,
				Description: description,
				Account:     account,
				Cleared:     !pending,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Expense %d recorded: %s %s under %s / %s\n",
				id, amount.String(), date, category, subcategory)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", core.Today(), "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 45.50 (required)")
	cmd.Flags().StringVar(&person, "person", "Joint", "person")
	cmd.Flags().StringVar(&account, "account", "Checking", "account")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().BoolVar(&pending, "pending", false, "mark as not yet cleared")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("subcategory")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpenseDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return a.repo.DeleteExpense(cmd.Context(), id)
		},
	}
}
