package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/exchange/retry"
	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

func init() {
	openOrdersCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD, empty for every market")

	closedOrdersCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	closedOrdersCmd.Flags().Duration("since", 24*time.Hour, "lookback of the archive query")
	closedOrdersCmd.Flags().Int("limit", 0, "maximum number of orders")

	placeOrderCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")
	placeOrderCmd.Flags().String("side", "", "buy or sell")
	placeOrderCmd.Flags().String("type", string(types.OrderTypeLimit), "limit or market")
	placeOrderCmd.Flags().String("amount", "", "order amount in base currency")
	placeOrderCmd.Flags().String("price", "", "limit price, market buys use it to compute the quote amount")
	placeOrderCmd.Flags().Bool("wait", false, "wait until the order is closed")

	cancelAllOrdersCmd.Flags().String("symbol", "", "the trading pair, like BTC/USD")

	ordersCmd.AddCommand(openOrdersCmd, closedOrdersCmd, getOrderCmd, placeOrderCmd, cancelOrderCmd, cancelAllOrdersCmd)
	RootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:          "orders",
	Short:        "Query and manage orders",
	SilenceUsage: true,
}

// go run ./cmd/cexio orders open --symbol=BTC/USD
var openOrdersCmd = &cobra.Command{
	Use:          "open [--symbol=pair_name]",
	Short:        "List the open orders",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return fmt.Errorf("can't get the symbol from flags: %w", err)
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		orders, err := retry.QueryOpenOrdersUntilSuccessful(ctx, ex, symbol)
		if err != nil {
			return err
		}

		renderOrders(os.Stdout, "Open Orders", orders)
		return nil
	},
}

// go run ./cmd/cexio orders closed --symbol=BTC/USD --since=72h
var closedOrdersCmd = &cobra.Command{
	Use:          "closed --symbol=[pair_name]",
	Short:        "List the archived orders",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := requireSymbol(cmd)
		if err != nil {
			return err
		}

		now := time.Now()
		since, err := sinceFlag(cmd, now)
		if err != nil {
			return err
		}
		if since == nil {
			return fmt.Errorf("--since must be positive")
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		orders, err := ex.QueryClosedOrders(ctx, symbol, *since, now, limit)
		if err != nil {
			return err
		}

		renderOrders(os.Stdout, "Closed Orders", orders)
		return nil
	},
}

// go run ./cmd/cexio orders get 12345
var getOrderCmd = &cobra.Command{
	Use:          "get [order_id]",
	Short:        "Show one order",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		order, err := ex.QueryOrder(ctx, args[0])
		if err != nil {
			return err
		}

		renderOrders(os.Stdout, "Order", []types.Order{*order})
		return nil
	},
}

// go run ./cmd/cexio orders place --symbol=BTC/USD --side=buy --type=limit --amount=0.01 --price=16000
var placeOrderCmd = &cobra.Command{
	Use:          "place --symbol=[pair_name] --side=[buy|sell] --amount=[amount]",
	Short:        "Submit an order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		order, err := submitOrderFromFlags(cmd)
		if err != nil {
			return err
		}

		wait, err := cmd.Flags().GetBool("wait")
		if err != nil {
			return err
		}

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		created, err := ex.SubmitOrder(ctx, *order)
		if err != nil {
			return err
		}

		color.Green("order %s submitted", created.ID)

		if wait {
			created, err = retry.QueryOrderUntilClosed(ctx, ex, created.ID)
			if err != nil {
				return err
			}
		}

		renderOrders(os.Stdout, "Order", []types.Order{*created})
		return nil
	},
}

// go run ./cmd/cexio orders cancel 12345 12346
var cancelOrderCmd = &cobra.Command{
	Use:          "cancel [order_id...]",
	Short:        "Cancel orders by id",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange(ctx)
		if err != nil {
			return err
		}

		orders := make([]types.Order, 0, len(args))
		for _, id := range args {
			orders = append(orders, types.Order{ID: id})
		}

		if err := retry.CancelOrdersUntilSuccessful(ctx, ex, orders...); err != nil {
			return err
		}

		color.Yellow("canceled %d orders", len(orders))
		return nil
	},
}

// go run ./cmd/cexio orders cancel-all --symbol=BTC/USD
var cancelAllOrdersCmd = &cobra.Command{
	Use:          "cancel-all --symbol=[pair_name]",
	Short:        "Cancel every open order of a market",
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

		ids, err := ex.CancelAllOrders(ctx, symbol)
		if err != nil {
			return err
		}

		color.Yellow("canceled %d orders of %s: %v", len(ids), symbol, ids)
		return nil
	},
}

func submitOrderFromFlags(cmd *cobra.Command) (*types.SubmitOrder, error) {
	symbol, err := requireSymbol(cmd)
	if err != nil {
		return nil, err
	}

	side, err := cmd.Flags().GetString("side")
	if err != nil {
		return nil, err
	}

	orderType, err := cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	amountStr, err := cmd.Flags().GetString("amount")
	if err != nil {
		return nil, err
	}

	priceStr, err := cmd.Flags().GetString("price")
	if err != nil {
		return nil, err
	}

	order := &types.SubmitOrder{
		Symbol: symbol,
		Side:   types.SideType(side),
		Type:   types.OrderType(orderType),
	}

	switch order.Side {
	case types.SideTypeBuy, types.SideTypeSell:
	default:
		return nil, fmt.Errorf("invalid side %q, expecting buy or sell", side)
	}

	switch order.Type {
	case types.OrderTypeLimit, types.OrderTypeMarket:
	default:
		return nil, fmt.Errorf("invalid order type %q, expecting limit or market", orderType)
	}

	order.Amount, err = fixedpoint.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	if priceStr != "" {
		price, err := fixedpoint.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", priceStr, err)
		}
		order.Price = &price
	}

	return order, nil
}
