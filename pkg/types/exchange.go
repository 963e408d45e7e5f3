package types

import (
	"context"
	"time"
)

type ExchangeName string

func (n ExchangeName) String() string {
	return string(n)
}

const ExchangeCEX = ExchangeName("cex")

type ExchangePublic interface {
	Name() ExchangeName

	QueryMarkets(ctx context.Context) (MarketMap, error)
}

type ExchangeMarketDataService interface {
	ExchangePublic

	QueryTicker(ctx context.Context, symbol string) (*Ticker, error)

	// QueryTickers returns tickers keyed by symbol. No symbols means all markets.
	QueryTickers(ctx context.Context, symbols ...string) (map[string]Ticker, error)

	QueryOrderBook(ctx context.Context, symbol string) (*OrderBook, error)

	QueryKLines(ctx context.Context, symbol string, interval Interval, options KLineQueryOptions) ([]KLine, error)

	QueryTrades(ctx context.Context, symbol string, options *TradeQueryOptions) ([]Trade, error)
}

type ExchangeAccountService interface {
	QueryAccountBalances(ctx context.Context) (*BalanceSnapshot, error)
}

type ExchangeTradeService interface {
	SubmitOrder(ctx context.Context, order SubmitOrder) (*Order, error)

	// CancelOrder cancels by order id. The symbol is accepted for interface symmetry only.
	CancelOrder(ctx context.Context, orderID, symbol string) error

	QueryOrder(ctx context.Context, orderID string) (*Order, error)

	// QueryOpenOrders lists open orders of one market, or of every market when symbol is empty.
	QueryOpenOrders(ctx context.Context, symbol string, options *OrderQueryOptions) ([]Order, error)
}

//go:generate mockgen -destination=mocks/mock_exchange.go -package=mocks . Exchange
type Exchange interface {
	ExchangeMarketDataService
	ExchangeAccountService
	ExchangeTradeService
}

type KLineQueryOptions struct {
	// Since defaults to 24 hours before now. Only bars at or after it are returned.
	Since *time.Time

	// Limit caps the number of bars, zero means no cap.
	Limit int
}

type TradeQueryOptions struct {
	Since *time.Time
	Limit int
}

type OrderQueryOptions struct {
	Since *time.Time
	Limit int
}
