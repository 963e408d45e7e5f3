package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/exchange/retry"
	"github.com/c9s/cexio/pkg/types"
)

func init() {
	tradesCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	tradesCmd.Flags().Duration("since", 0, "only show trades within this lookback, like 1h")
	tradesCmd.Flags().Int("limit", 0, "maximum number of trades")
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/cexio trades --symbol=BTC/USD --since=1h
var tradesCmd = &cobra.Command{
	Use:          "trades --symbol=[pair_name]",
	Short:        "Show the recent public trades of a market",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := requireSymbol(cmd)
		if err != nil {
			return err
		}

		since, err := sinceFlag(cmd, time.Now())
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		trades, err := retry.QueryTradesUntilSuccessful(ctx, ex, symbol, &types.TradeQueryOptions{
			Since: since,
			Limit: limit,
		})
		if err != nil {
			return err
		}

		renderTrades(os.Stdout, trades)
		return nil
	},
}
