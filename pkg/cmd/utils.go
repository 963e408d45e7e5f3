package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/c9s/cexio/pkg/exchange/cex"
	"github.com/c9s/cexio/pkg/style"
	"github.com/c9s/cexio/pkg/types"
)

func requireSymbol(cmd *cobra.Command) (string, error) {
	symbol, err := cmd.Flags().GetString("symbol")
	if err != nil {
		return "", fmt.Errorf("can not get the symbol from flags: %w", err)
	}

	if symbol == "" {
		return "", fmt.Errorf("--symbol option is required")
	}

	return symbol, nil
}

// sinceFlag converts the --since lookback duration into a start time, nil when unset.
func sinceFlag(cmd *cobra.Command, now time.Time) (*time.Time, error) {
	lookback, err := cmd.Flags().GetDuration("since")
	if err != nil {
		return nil, err
	}

	if lookback <= 0 {
		return nil, nil
	}

	since := now.Add(-lookback)
	return &since, nil
}

func renderMarkets(w io.Writer, markets types.MarketMap) {
	t := style.NewTable(w, "Markets", "Symbol", "ID", "Price Precision", "Amount Precision", "Min Amount", "Max Amount", "Min Price", "Max Price", "Min Cost")
	for _, symbol := range markets.Symbols() {
		m := markets[symbol]
		t.AppendRow([]interface{}{
			m.Symbol, m.ID, m.Precision.Price, m.Precision.Amount,
			style.OptionalValue(m.Limits.Amount.Min), style.OptionalValue(m.Limits.Amount.Max),
			style.OptionalValue(m.Limits.Price.Min), style.OptionalValue(m.Limits.Price.Max),
			style.OptionalValue(m.Limits.Cost.Min),
		})
	}
	t.Render()
}

func renderTradingFees(w io.Writer, fees map[string]cex.TradingFeeRates) {
	symbols := make([]string, 0, len(fees))
	for s := range fees {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	t := style.NewTable(w, "Trading Fees", "Symbol", "Maker", "Taker")
	for _, s := range symbols {
		t.AppendRow([]interface{}{s, fees[s].MakerFeeRate.String(), fees[s].TakerFeeRate.String()})
	}
	t.Render()
}

func renderTickers(w io.Writer, tickers map[string]types.Ticker) {
	symbols := make([]string, 0, len(tickers))
	for s := range tickers {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	t := style.NewTable(w, "Tickers", "Symbol", "Bid", "Ask", "Last", "High", "Low", "Volume", "Change")
	for _, s := range symbols {
		ticker := tickers[s]
		t.AppendRow([]interface{}{
			s, style.OptionalValue(ticker.Bid), style.OptionalValue(ticker.Ask), style.OptionalValue(ticker.Last),
			style.OptionalValue(ticker.High), style.OptionalValue(ticker.Low), style.OptionalValue(ticker.BaseVolume),
			style.OptionalValue(ticker.Change),
		})
	}
	t.Render()
}

func renderOrderBook(w io.Writer, book *types.OrderBook, depth int) {
	t := style.NewTable(w, book.Symbol+" "+book.Timestamp.String(), "Bid Volume", "Bid Price", "Ask Price", "Ask Volume")
	bids := book.Bids.Head(depth)
	asks := book.Asks.Head(depth)

	rows := len(bids)
	if len(asks) > rows {
		rows = len(asks)
	}

	for i := 0; i < rows; i++ {
		row := []interface{}{"", "", "", ""}
		if i < len(bids) {
			row[0], row[1] = bids[i].Volume.String(), bids[i].Price.String()
		}
		if i < len(asks) {
			row[2], row[3] = asks[i].Price.String(), asks[i].Volume.String()
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderTrades(w io.Writer, trades []types.Trade) {
	t := style.NewTable(w, "Trades", "ID", "Time", "Side", "Price", "Amount")
	for _, trade := range trades {
		t.AppendRow([]interface{}{trade.ID, trade.Timestamp.String(), style.SideString(trade.Side), trade.Price.String(), trade.Amount.String()})
	}
	t.Render()
}

func renderKLines(w io.Writer, klines []types.KLine) {
	t := style.NewTable(w, "KLines", "Start Time", "Open", "High", "Low", "Close", "Volume")
	for _, k := range klines {
		t.AppendRow([]interface{}{k.StartTime.String(), k.Open.String(), k.High.String(), k.Low.String(), k.Close.String(), k.Volume.String()})
	}
	t.Render()
}

func renderBalances(w io.Writer, balances types.BalanceMap) {
	t := style.NewTable(w, "Balances", "Currency", "Free", "Used", "Total")
	for _, c := range balances.Currencies() {
		b := balances[c]
		t.AppendRow([]interface{}{c, b.Free.String(), b.Used.String(), b.Total.String()})
	}
	t.Render()
}

func renderOrders(w io.Writer, title string, orders []types.Order) {
	t := style.NewTable(w, title, "ID", "Time", "Symbol", "Type", "Side", "Price", "Amount", "Filled", "Status")
	for _, o := range orders {
		ts := "-"
		if o.Timestamp != nil {
			ts = o.Timestamp.String()
		}

		t.AppendRow([]interface{}{
			o.ID, ts, o.Symbol, string(o.Type), style.SideString(o.Side),
			style.OptionalValue(o.Price), style.OptionalValue(o.Amount), style.OptionalValue(o.Filled),
			string(o.Status),
		})
	}
	t.Render()
}
