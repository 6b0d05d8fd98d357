package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetbook/internal/core"
)

func newGoalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track savings goals",
	}
	cmd.AddCommand(
		newGoalAddCommand(a),
		newGoalListCommand(a),
		newGoalContributeCommand(a),
		newGoalSetCommand(a),
		newGoalDeactivateCommand(a),
	)
	return cmd
}

func newGoalAddCommand(a *app) *cobra.Command {
	var (
		name       string
		targetStr  string
		monthlyStr string
		targetDate string
		priority   int
		category   string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmountFlag(targetStr)
			if err != nil {
				return err
			}
			monthly := core.Money{}
			if monthlyStr != "" {
				if monthly, err = parseAmountFlag(monthlyStr); err != nil {
					return err
				}
			}

			id, err := a.repo.AddSavingsGoal(cmd.Context(), core.SavingsGoal{
				Name:                name,
				TargetAmount:        target,
				MonthlyContribution: monthly,
				TargetDate:          targetDate,
				Priority:            priority,
				Category:            category,
				Notes:               notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Goal %d created: %s targeting %s\n",
				id, name, target.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	cmd.Flags().StringVar(&targetStr, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&monthlyStr, "monthly", "", "planned monthly contribution")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "target date (YYYY-MM-DD, defaults to one year out)")
	cmd.Flags().IntVar(&priority, "priority", 1, "priority (1 = highest)")
	cmd.Flags().StringVar(&category, "goal-category", "", "goal category")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active savings goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := a.repo.SavingsGoals(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tNAME\tCURRENT\tTARGET\tPROGRESS\tTARGET DATE\n")
			for _, g := range goals {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f%%\t%s\n",
					g.ID, g.Name, g.CurrentAmount.String(), g.TargetAmount.String(),
					g.CurrentAmount.PercentOf(g.TargetAmount), g.TargetDate)
			}
			return w.Flush()
		},
	}
}

func goalIDArg(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid goal id %q", args[0])
	}
	return id, nil
}

func newGoalContributeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <id> <amount>",
		Short: "Add a contribution to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := goalIDArg(args)
			if err != nil {
				return err
			}
			amount, err := parseAmountFlag(args[1])
			if err != nil {
				return err
			}
			return a.repo.ContributeToGoal(cmd.Context(), id, amount)
		},
	}
}

func newGoalSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <amount>",
		Short: "Set a goal's accumulated amount outright",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := goalIDArg(args)
			if err != nil {
				return err
			}
			amount, err := parseAmountFlag(args[1])
			if err != nil {
				return err
			}
			return a.repo.SetGoalAmount(cmd.Context(), id, amount)
		},
	}
}

func newGoalDeactivateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a goal, keeping its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := goalIDArg(args)
			if err != nil {
				return err
			}
			return a.repo.DeactivateGoal(cmd.Context(), id)
		},
	}
}
