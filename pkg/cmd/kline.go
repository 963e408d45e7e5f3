package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/types"
)

func init() {
	klineCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	klineCmd.Flags().String("interval", string(types.Interval1m), "kline interval, the exchange only serves 1m")
	klineCmd.Flags().Duration("since", 0, "lookback of the first bar, defaults to 24h")
	klineCmd.Flags().Int("limit", 0, "maximum number of bars")
	RootCmd.AddCommand(klineCmd)
}

// go run ./cmd/cexio klines --symbol=BTC/USD --since=2h --limit=30
var klineCmd = &cobra.Command{
	Use:          "klines --symbol=[pair_name]",
	Aliases:      []string{"kline", "ohlcv"},
	Short:        "Show the historical ohlcv bars of a market",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := requireSymbol(cmd)
		if err != nil {
			return err
		}

		interval, err := cmd.Flags().GetString("interval")
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

		klines, err := ex.QueryKLines(ctx, symbol, types.Interval(interval), types.KLineQueryOptions{
			Since: since,
			Limit: limit,
		})
		if err != nil {
			return err
		}

		renderKLines(os.Stdout, klines)
		return nil
	},
}
