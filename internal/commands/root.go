// Package commands wires the cobra CLI. Commands parse flags, call the
// data layer and print; no business logic lives here.
package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"budgetbook/internal/cli"
	"budgetbook/internal/config"
	"budgetbook/internal/core"
	"budgetbook/internal/storage"
)

// app carries the shared state every subcommand needs; the root command
// opens it once before any subcommand runs and closes it afterwards.
type app struct {
	cfg  *config.Config
	repo *storage.SQLiteRepository
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "budgetbook",
		Short: "Personal finance tracking on a local SQLite database",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.LoadEnvFile()

			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			cli.SetupLogger(cfg)

			repo, err := cli.OpenStorage(cfg)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.repo = repo
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.repo != nil {
				return a.repo.Close()
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newIncomeCommand(a),
		newExpenseCommand(a),
		newBudgetCommand(a),
		newGoalCommand(a),
		newAccountCommand(a),
		newAssetCommand(a),
		newReportCommand(a),
		newCloseMonthCommand(a),
		newImportCommand(a),
		newExportCommand(a),
	)

	return rootCmd
}

// addPeriodFlags registers the --month/--year pair used by every
// period-scoped command.
func addPeriodFlags(cmd *cobra.Command, month *string, year *int) {
	cmd.Flags().StringVar(month, "month", "", `month as two digits, e.g. "03" (required)`)
	cmd.Flags().IntVar(year, "year", 0, "four-digit year (required)")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")
}

func validatePeriod(month string, year int) error {
	if len(month) != 2 {
		return fmt.Errorf("month must be two digits, got %q", month)
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("month must be between 01 and 12, got %q", month)
	}
	if year < 1900 || year > 9999 {
		return fmt.Errorf("year must be four digits, got %d", year)
	}
	return nil
}

func parseAmountFlag(s string) (core.Money, error) {
	amount, err := core.ParseMoney(s)
	if err != nil {
		return core.Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}
