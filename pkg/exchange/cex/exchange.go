package cex

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"github.com/c9s/cexio/pkg/exchange/cex/cexapi"
	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

const ID = "cex"

// PlatformToken is the currency the venue quotes its fiat markets in.
const PlatformToken = "USD"

// DefaultRateLimit is one request per 1.5 seconds.
var DefaultRateLimit = rate.Every(1500 * time.Millisecond)

var (
	DefaultMakerFeeRate = fixedpoint.Zero
	DefaultTakerFeeRate = fixedpoint.MustNewFromString("0.002")
)

// ErrMarketNotFound is returned for symbols missing from the loaded markets.
var ErrMarketNotFound = errors.New("market not found")

var log = logrus.WithField("exchange", ID)

type Exchange struct {
	key, secret, uid string

	client *cexapi.RestClient

	limiter *rate.Limiter

	marketsMu sync.Mutex
	markets   types.MarketMap
}

func New(key, secret, uid string) *Exchange {
	client := cexapi.NewClient()
	if key != "" && secret != "" && uid != "" {
		client.Auth(key, secret, uid)
	}

	return &Exchange{
		key:     key,
		secret:  secret,
		uid:     uid,
		client:  client,
		limiter: rate.NewLimiter(DefaultRateLimit, 1),
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeCEX
}

func (e *Exchange) PlatformFeeCurrency() string {
	return PlatformToken
}

func (e *Exchange) Client() *cexapi.RestClient {
	return e.client
}

// SetRateLimiter replaces the limiter shared by all requests of this exchange.
func (e *Exchange) SetRateLimiter(limiter *rate.Limiter) {
	e.limiter = limiter
}

func (e *Exchange) wait(ctx context.Context) error {
	if e.limiter == nil {
		return nil
	}
	return e.limiter.Wait(ctx)
}

// QueryMarkets fetches the pair limits listing. It always hits the venue, see LoadMarkets for the memoized set.
func (e *Exchange) QueryMarkets(ctx context.Context) (types.MarketMap, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	limits, err := e.client.NewGetCurrencyLimitsRequest().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query markets: %w", err)
	}

	markets := make(types.MarketMap)
	for _, limit := range limits {
		market, err := toGlobalMarket(limit)
		if err != nil {
			log.WithError(err).Warnf("invalid pair limit %s", limit.Raw)
			return nil, err
		}

		markets.Add(market)
	}

	return markets, nil
}

// LoadMarkets returns the cached market set, fetching it on first use.
// Concurrent callers wait for the first load.
func (e *Exchange) LoadMarkets(ctx context.Context) (types.MarketMap, error) {
	e.marketsMu.Lock()
	defer e.marketsMu.Unlock()

	if e.markets != nil {
		return e.markets, nil
	}

	markets, err := e.QueryMarkets(ctx)
	if err != nil {
		return nil, err
	}

	e.markets = markets
	return markets, nil
}

// ReloadMarkets replaces the cached market set with a fresh one.
func (e *Exchange) ReloadMarkets(ctx context.Context) (types.MarketMap, error) {
	markets, err := e.QueryMarkets(ctx)
	if err != nil {
		return nil, err
	}

	e.SetMarkets(markets)
	return markets, nil
}

// SetMarkets primes the cache, e.g. from a market cache file.
func (e *Exchange) SetMarkets(markets types.MarketMap) {
	e.marketsMu.Lock()
	e.markets = markets
	e.marketsMu.Unlock()
}

func (e *Exchange) market(ctx context.Context, symbol string) (types.Market, error) {
	markets, err := e.LoadMarkets(ctx)
	if err != nil {
		return types.Market{}, err
	}

	market, ok := markets[symbol]
	if !ok {
		return types.Market{}, fmt.Errorf("%w: %s", ErrMarketNotFound, symbol)
	}

	return market, nil
}

func (e *Exchange) QueryAccountBalances(ctx context.Context) (*types.BalanceSnapshot, error) {
	if _, err := e.LoadMarkets(ctx); err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	balances, err := e.client.NewGetBalanceRequest().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}

	return toGlobalBalances(balances)
}

func (e *Exchange) QueryOrderBook(ctx context.Context, symbol string) (*types.OrderBook, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	book, err := e.client.NewGetOrderBookRequest().Pair(market.ID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order book of %s: %w", symbol, err)
	}

	return toGlobalOrderBook(book, market.Symbol)
}

// QueryKLines returns one-minute bars of the UTC day that contains options.Since, from Since on.
// Without Since it starts 24 hours ago.
func (e *Exchange) QueryKLines(ctx context.Context, symbol string, interval types.Interval, options types.KLineQueryOptions) ([]types.KLine, error) {
	if interval != types.Interval1m {
		return nil, fmt.Errorf("unsupported interval %s, only %s is available", interval, types.Interval1m)
	}

	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-24 * time.Hour)
	if options.Since != nil {
		since = *options.Since
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := e.client.NewGetOHLCVRequest().Pair(market.ID).Date(since).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query klines of %s: %w", symbol, err)
	}

	candles, err := resp.Candles(interval.String())
	if err != nil {
		return nil, err
	}

	klines := make([]types.KLine, 0, len(candles))
	for _, c := range candles {
		k, err := toGlobalKLine(c, market.Symbol, interval)
		if err != nil {
			return nil, err
		}
		klines = append(klines, k)
	}

	return filterSinceLimit(klines, func(k types.KLine) time.Time {
		return k.StartTime.Time()
	}, &since, options.Limit), nil
}

func (e *Exchange) QueryTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	ticker, err := e.client.NewGetTickerRequest().Pair(market.ID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticker of %s: %w", symbol, err)
	}

	return toGlobalTicker(*ticker, market.Symbol)
}

// QueryTickers queries the tickers of every listed currency and keeps the requested symbols.
func (e *Exchange) QueryTickers(ctx context.Context, symbols ...string) (map[string]types.Ticker, error) {
	markets, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	tickers, err := e.client.NewGetTickersRequest().Currencies(markets.Currencies()...).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickers: %w", err)
	}

	wanted := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		wanted[s] = struct{}{}
	}

	result := make(map[string]types.Ticker)
	for _, t := range tickers {
		symbol := t.Symbol()
		if len(wanted) > 0 {
			if _, ok := wanted[symbol]; !ok {
				continue
			}
		}

		ticker, err := toGlobalTicker(t, symbol)
		if err != nil {
			return nil, err
		}

		result[symbol] = *ticker
	}

	return result, nil
}

func (e *Exchange) QueryTrades(ctx context.Context, symbol string, options *types.TradeQueryOptions) ([]types.Trade, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := e.client.NewGetTradeHistoryRequest().Pair(market.ID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades of %s: %w", symbol, err)
	}

	trades := make([]types.Trade, 0, len(resp))
	for _, t := range resp {
		trade, err := toGlobalTrade(t, market.Symbol)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}

	if options == nil {
		options = &types.TradeQueryOptions{}
	}

	return filterSinceLimit(trades, func(t types.Trade) time.Time {
		return t.Timestamp.Time()
	}, options.Since, options.Limit), nil
}

// QueryLastPrice returns the price of the latest trade.
func (e *Exchange) QueryLastPrice(ctx context.Context, symbol string) (fixedpoint.Value, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return fixedpoint.Zero, err
	}

	if err := e.wait(ctx); err != nil {
		return fixedpoint.Zero, err
	}

	resp, err := e.client.NewGetLastPriceRequest().Pair(market.ID).Do(ctx)
	if err != nil {
		return fixedpoint.Zero, fmt.Errorf("failed to query last price of %s: %w", symbol, err)
	}

	return requiredNumber("lprice", resp.LastPrice)
}

type TradingFeeRates struct {
	MakerFeeRate fixedpoint.Value
	TakerFeeRate fixedpoint.Value
}

// QueryTradingFees returns the account fee rates per symbol as 0-1 coefficients.
// Markets the venue does not report use the default maker and taker rates.
func (e *Exchange) QueryTradingFees(ctx context.Context) (map[string]TradingFeeRates, error) {
	markets, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	fees, err := e.client.NewGetMyFeeRequest().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trading fees: %w", err)
	}

	hundred := fixedpoint.NewFromInt(100)
	result := make(map[string]TradingFeeRates, len(markets))
	for symbol, market := range markets {
		rates := TradingFeeRates{
			MakerFeeRate: DefaultMakerFeeRate,
			TakerFeeRate: DefaultTakerFeeRate,
		}

		if fee, ok := fees[market.Base+":"+market.Quote]; ok {
			maker, err := fee.BuyMaker.Number()
			if err != nil {
				return nil, err
			}
			if maker != nil {
				rates.MakerFeeRate = maker.Div(hundred)
			}

			taker, err := fee.Buy.Number()
			if err != nil {
				return nil, err
			}
			if taker != nil {
				rates.TakerFeeRate = taker.Div(hundred)
			}
		}

		result[symbol] = rates
	}

	return result, nil
}

// orderMarket resolves the market of an order from its symbol1 and symbol2 fields.
func (e *Exchange) orderMarket(order cexapi.Order) *types.Market {
	if order.Symbol1 == "" || order.Symbol2 == "" {
		return nil
	}

	e.marketsMu.Lock()
	defer e.marketsMu.Unlock()

	if market, ok := e.markets[toGlobalSymbol(order.Symbol1, order.Symbol2)]; ok {
		return &market
	}

	return nil
}

// SubmitOrder places a limit or market order.
// Market buys are sent as a quote currency notional, amount * price, so they require a price.
func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.Order, error) {
	amount := order.Amount

	req := e.client.NewPlaceOrderRequest().Side(order.Side.String())

	switch order.Type {
	case types.OrderTypeLimit:
		if order.Price == nil {
			return nil, types.NewInvalidOrderError("limit order on %s requires a price", order.Symbol)
		}
		req.Price(order.Price.String())

	case types.OrderTypeMarket:
		if order.Side == types.SideTypeBuy {
			if order.Price == nil {
				return nil, types.NewInvalidOrderError(
					"market buy on %s requires a price to compute the quote currency amount to spend", order.Symbol)
			}
			notional, err := amount.MulChecked(*order.Price)
			if err != nil {
				return nil, types.NewInvalidOrderError("market buy notional on %s: %v", order.Symbol, err)
			}
			amount = notional
		}
		req.OrderType(string(order.Type))

	default:
		return nil, types.NewInvalidOrderError("unsupported order type %q", order.Type)
	}

	market, err := e.market(ctx, order.Symbol)
	if err != nil {
		return nil, err
	}

	req.Pair(market.ID).Amount(amount.String())

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := req.Do(ctx)
	if err != nil {
		log.WithError(err).Errorf("failed to submit %s %s order on %s", order.Type, order.Side, order.Symbol)
		return nil, err
	}

	created, err := toGlobalOrder(*resp, &market)
	if err != nil {
		return nil, err
	}

	created.Symbol = market.Symbol
	created.Type = order.Type
	created.Side = order.Side
	created.Status = types.OrderStatusOpen
	if resp.Complete != nil && *resp.Complete {
		created.Status = types.OrderStatusClosed
	}

	log.Infof("order %s created: %s %s %s @ %v", created.ID, order.Side, order.Amount, order.Symbol, order.Price)
	return created, nil
}

// CancelOrder cancels by id. The symbol is not sent to the venue.
func (e *Exchange) CancelOrder(ctx context.Context, orderID, symbol string) error {
	if err := e.wait(ctx); err != nil {
		return err
	}

	if err := e.client.NewCancelOrderRequest().ID(orderID).Do(ctx); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}

	return nil
}

// CancelOrders cancels each order in turn and returns every failure combined.
func (e *Exchange) CancelOrders(ctx context.Context, orders ...types.Order) (errs error) {
	for _, o := range orders {
		if err := e.CancelOrder(ctx, o.ID, o.Symbol); err != nil {
			log.WithError(err).Errorf("failed to cancel order %s", o.ID)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// CancelAllOrders cancels every open order of the symbol and returns the canceled ids.
func (e *Exchange) CancelAllOrders(ctx context.Context, symbol string) ([]string, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	ids, err := e.client.NewCancelOrdersRequest().Pair(market.ID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel orders of %s: %w", symbol, err)
	}

	return ids, nil
}

func (e *Exchange) QueryOrder(ctx context.Context, orderID string) (*types.Order, error) {
	if _, err := e.LoadMarkets(ctx); err != nil {
		return nil, err
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := e.client.NewGetOrderRequest().ID(orderID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", orderID, err)
	}

	return toGlobalOrder(*resp, e.orderMarket(*resp))
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, symbol string, options *types.OrderQueryOptions) ([]types.Order, error) {
	if _, err := e.LoadMarkets(ctx); err != nil {
		return nil, err
	}

	req := e.client.NewGetOpenOrdersRequest()

	var market *types.Market
	if symbol != "" {
		m, err := e.market(ctx, symbol)
		if err != nil {
			return nil, err
		}
		market = &m
		req.Pair(m.ID)
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query open orders: %w", err)
	}

	orders, err := e.toGlobalOrders(resp, market, "open")
	if err != nil {
		return nil, err
	}

	if options == nil {
		options = &types.OrderQueryOptions{}
	}

	return filterSinceLimit(orders, orderTime, options.Since, options.Limit), nil
}

// QueryClosedOrders lists archived orders of the symbol created between since and until.
func (e *Exchange) QueryClosedOrders(ctx context.Context, symbol string, since, until time.Time, limit int) ([]types.Order, error) {
	market, err := e.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	req := e.client.NewGetArchivedOrdersRequest().Pair(market.ID).DateFrom(since).DateTo(until)
	if limit > 0 {
		req.Limit(limit)
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query closed orders of %s: %w", symbol, err)
	}

	orders, err := e.toGlobalOrders(resp, &market, "")
	if err != nil {
		return nil, err
	}

	return filterSinceLimit(orders, orderTime, nil, limit), nil
}

// toGlobalOrders normalizes a listing. A non-empty status overrides the venue status of every record.
func (e *Exchange) toGlobalOrders(resp []cexapi.Order, market *types.Market, status string) ([]types.Order, error) {
	orders := make([]types.Order, 0, len(resp))
	for _, o := range resp {
		if status != "" {
			o.Status = status
		}

		m := market
		if m == nil {
			m = e.orderMarket(o)
		}

		order, err := toGlobalOrder(o, m)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func orderTime(o types.Order) time.Time {
	if o.Timestamp == nil {
		return time.Time{}
	}
	return o.Timestamp.Time()
}
