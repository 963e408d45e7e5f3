package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/types"
)

func init() {
	tickerCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	tickerCmd.Flags().Bool("last", false, "only show the last trade price")
	RootCmd.AddCommand(tickerCmd)
	RootCmd.AddCommand(tickersCmd)
}

// go run ./cmd/cexio ticker --symbol=BTC/USD
var tickerCmd = &cobra.Command{
	Use:          "ticker --symbol=[pair_name]",
	Short:        "Show the ticker of a market",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := requireSymbol(cmd)
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		lastOnly, err := cmd.Flags().GetBool("last")
		if err != nil {
			return err
		}

		if lastOnly {
			price, err := ex.QueryLastPrice(ctx, symbol)
			if err != nil {
				return err
			}

			color.Cyan("%s last price: %s", symbol, price.String())
			return nil
		}

		ticker, err := ex.QueryTicker(ctx, symbol)
		if err != nil {
			return err
		}

		renderTickers(os.Stdout, map[string]types.Ticker{symbol: *ticker})
		return nil
	},
}

// go run ./cmd/cexio tickers BTC/USD ETH/USD
var tickersCmd = &cobra.Command{
	Use:          "tickers [symbol...]",
	Short:        "Show the tickers of several markets, every market when no symbol is given",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		tickers, err := ex.QueryTickers(ctx, args...)
		if err != nil {
			return err
		}

		renderTickers(os.Stdout, tickers)
		return nil
	},
}
