package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/service"
)

func init() {
	orderbookCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	orderbookCmd.Flags().Int("depth", 10, "number of levels to print on each side")
	orderbookCmd.Flags().Bool("save", false, "save a snapshot of the order book to the database")
	RootCmd.AddCommand(orderbookCmd)
}

// go run ./cmd/cexio orderbook --symbol=BTC/USD --save
var orderbookCmd = &cobra.Command{
	Use:          "orderbook --symbol=[pair_name]",
	Short:        "Show the order book of a market",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := requireSymbol(cmd)
		if err != nil {
			return err
		}

		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		book, err := ex.QueryOrderBook(ctx, symbol)
		if err != nil {
			return err
		}

		renderOrderBook(os.Stdout, book, depth)

		if spread, ok := book.Spread(); ok {
			log.Infof("%s spread: %s", symbol, spread.String())
		}

		if !save {
			return nil
		}

		db, err := newDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		snapshot, err := service.NewOrderBookSnapshotService(db.DB).Insert(ctx, ex.Name(), *book)
		if err != nil {
			return err
		}

		color.Green("saved order book snapshot %s, volume %s", snapshot.UUID, snapshot.Volume.String())
		return nil
	},
}
