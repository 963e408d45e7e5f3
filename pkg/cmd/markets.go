package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(marketsCmd)
	RootCmd.AddCommand(feesCmd)
}

// go run ./cmd/cexio markets
var marketsCmd = &cobra.Command{
	Use:          "markets",
	Short:        "List the markets with their precision and limits",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		markets, err := ex.LoadMarkets(ctx)
		if err != nil {
			return err
		}

		renderMarkets(os.Stdout, markets)
		return nil
	},
}

// go run ./cmd/cexio fees
var feesCmd = &cobra.Command{
	Use:          "fees",
	Short:        "Show the maker and taker fee rates of the account",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		fees, err := ex.QueryTradingFees(ctx)
		if err != nil {
			return err
		}

		renderTradingFees(os.Stdout, fees)
		return nil
	},
}
