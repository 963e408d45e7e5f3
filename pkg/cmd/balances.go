package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/exchange/retry"
)

func init() {
	balancesCmd.Flags().Bool("all", false, "include the currencies without funds")
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/cexio balances
var balancesCmd = &cobra.Command{
	Use:          "balances [--all]",
	Short:        "Show user account balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		snapshot, err := retry.QueryAccountBalancesUntilSuccessfulLite(ctx, ex)
		if err != nil {
			return err
		}

		balances := snapshot.Balances
		if !all {
			balances = balances.NotZero()
		}

		renderBalances(os.Stdout, balances)
		return nil
	},
}
