package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "View and update investment account balances",
	}
	cmd.AddCommand(newAccountListCommand(a), newAccountUpdateCommand(a))
	return cmd
}

func newAccountListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List investment accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := a.repo.InvestmentAccounts(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "NAME\tTYPE\tLIQUIDITY\tBALANCE\tPREVIOUS\tPERSON\tUPDATED\n")
			for _, acc := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					acc.Name, acc.Type, acc.Liquidity,
					acc.CurrentBalance.String(), acc.PreviousBalance.String(),
					acc.Person, acc.LastUpdated)
			}
			return w.Flush()
		},
	}
}

func newAccountUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <name> <balance>",
		Short: "Set an account's balance, rolling the old one into previous",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseAmountFlag(args[1])
			if err != nil {
				return err
			}
			if err := a.repo.UpdateAccountBalance(cmd.Context(), args[0], balance); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Balance for %s set to %s\n", args[0], balance.String())
			return nil
		},
	}
}

func newAssetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "View and update real asset valuations",
	}
	cmd.AddCommand(newAssetListCommand(a), newAssetUpdateCommand(a))
	return cmd
}

func newAssetListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List real assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := a.repo.RealAssets(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "NAME\tTYPE\tVALUE\tUPDATED\n")
			for _, asset := range assets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					asset.Name, asset.Type, asset.CurrentValue.String(), asset.LastUpdated)
			}
			return w.Flush()
		},
	}
}

func newAssetUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <name> <value>",
		Short: "Set a real asset's current value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmountFlag(args[1])
			if err != nil {
				return err
			}
			if err := a.repo.UpdateAssetValue(cmd.Context(), args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Value for %s set to %s\n", args[0], value.String())
			return nil
		},
	}
}
