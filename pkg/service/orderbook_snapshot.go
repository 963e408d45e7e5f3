package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

const orderBookSnapshotTable = "prices"

// DefaultSnapshotDepth is the number of levels kept per side.
const DefaultSnapshotDepth = 5

var orderBookSnapshotColumns = []string{
	"uuid",
	"timestamp",
	"exchange",
	"pair_base",
	"pair_quote",
	"exchange_timestamp",
	"bids",
	"asks",
	"volume",
}

// OrderBookSnapshot is one captured row of the prices table.
// Bids and Asks hold the top levels as "amount@price" pairs joined by ";".
type OrderBookSnapshot struct {
	UUID              string           `json:"uuid" db:"uuid"`
	Timestamp         time.Time        `json:"timestamp" db:"timestamp"`
	Exchange          string           `json:"exchange" db:"exchange"`
	PairBase          string           `json:"pairBase" db:"pair_base"`
	PairQuote         string           `json:"pairQuote" db:"pair_quote"`
	ExchangeTimestamp time.Time        `json:"exchangeTimestamp" db:"exchange_timestamp"`
	Bids              string           `json:"bids" db:"bids"`
	Asks              string           `json:"asks" db:"asks"`
	Volume            fixedpoint.Value `json:"volume" db:"volume"`
}

func (s OrderBookSnapshot) Symbol() string {
	return s.PairBase + "/" + s.PairQuote
}

func (s OrderBookSnapshot) BidLevels() (types.PriceVolumeSlice, error) {
	return ParseSnapshotLevels(s.Bids)
}

func (s OrderBookSnapshot) AskLevels() (types.PriceVolumeSlice, error) {
	return ParseSnapshotLevels(s.Asks)
}

// FormatSnapshotLevels renders at most depth levels as "amount@price;amount@price".
func FormatSnapshotLevels(levels types.PriceVolumeSlice, depth int) string {
	parts := make([]string, 0, depth)
	for _, pv := range levels.Head(depth) {
		parts = append(parts, pv.Volume.String()+"@"+pv.Price.String())
	}
	return strings.Join(parts, ";")
}

func ParseSnapshotLevels(s string) (types.PriceVolumeSlice, error) {
	if s == "" {
		return nil, nil
	}

	var levels types.PriceVolumeSlice
	for _, part := range strings.Split(s, ";") {
		amountStr, priceStr, ok := strings.Cut(part, "@")
		if !ok {
			return nil, errors.Errorf("invalid snapshot level %q", part)
		}

		amount, err := fixedpoint.NewFromString(amountStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid snapshot level %q", part)
		}

		price, err := fixedpoint.NewFromString(priceStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid snapshot level %q", part)
		}

		levels = append(levels, types.PriceVolume{Price: price, Volume: amount})
	}

	return levels, nil
}

type OrderBookSnapshotService struct {
	DB    *sqlx.DB
	Depth int

	dialect DatabaseDialect
	now     func() time.Time
}

func NewOrderBookSnapshotService(db *sqlx.DB) *OrderBookSnapshotService {
	return &OrderBookSnapshotService{
		DB:      db,
		Depth:   DefaultSnapshotDepth,
		dialect: GetDialect(db.DriverName()),
		now:     time.Now,
	}
}

// NewSnapshot captures the top levels of the book. The volume is the total amount of the captured levels.
func (s *OrderBookSnapshotService) NewSnapshot(exchange types.ExchangeName, book types.OrderBook) (*OrderBookSnapshot, error) {
	base, quote, ok := strings.Cut(book.Symbol, "/")
	if !ok || base == "" || quote == "" {
		return nil, errors.Errorf("order book symbol %q is not in BASE/QUOTE form", book.Symbol)
	}

	depth := s.Depth
	if depth <= 0 {
		depth = DefaultSnapshotDepth
	}

	now := s.now().UTC()
	exchangeTime := now
	if t := book.Timestamp.Time(); !t.IsZero() {
		exchangeTime = t.UTC()
	}

	var volumes []fixedpoint.Value
	for _, side := range []types.PriceVolumeSlice{book.Bids.Head(depth), book.Asks.Head(depth)} {
		for _, pv := range side {
			volumes = append(volumes, pv.Volume)
		}
	}

	return &OrderBookSnapshot{
		UUID:              uuid.New().String(),
		Timestamp:         now,
		Exchange:          exchange.String(),
		PairBase:          base,
		PairQuote:         quote,
		ExchangeTimestamp: exchangeTime,
		Bids:              FormatSnapshotLevels(book.Bids, depth),
		Asks:              FormatSnapshotLevels(book.Asks, depth),
		Volume:            fixedpoint.Sum(volumes),
	}, nil
}

func (s *OrderBookSnapshotService) Insert(ctx context.Context, exchange types.ExchangeName, book types.OrderBook) (*OrderBookSnapshot, error) {
	snapshot, err := s.NewSnapshot(exchange, book)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Insert(orderBookSnapshotTable).
		Columns(orderBookSnapshotColumns...).
		Values(
			snapshot.UUID,
			snapshot.Timestamp,
			snapshot.Exchange,
			snapshot.PairBase,
			snapshot.PairQuote,
			snapshot.ExchangeTimestamp,
			snapshot.Bids,
			snapshot.Asks,
			snapshot.Volume,
		).
		PlaceholderFormat(s.dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrapf(err, "insert order book snapshot of %s", book.Symbol)
	}

	return snapshot, nil
}

// QueryLatest returns the newest snapshot of the symbol, or nil when none was recorded.
func (s *OrderBookSnapshotService) QueryLatest(ctx context.Context, exchange types.ExchangeName, symbol string) (*OrderBookSnapshot, error) {
	base, quote, ok := strings.Cut(symbol, "/")
	if !ok {
		return nil, errors.Errorf("symbol %q is not in BASE/QUOTE form", symbol)
	}

	query, args, err := sq.Select(orderBookSnapshotColumns...).
		From(orderBookSnapshotTable).
		Where(sq.Eq{
			"exchange":   exchange.String(),
			"pair_base":  base,
			"pair_quote": quote,
		}).
		OrderBy("timestamp DESC").
		Limit(1).
		PlaceholderFormat(s.dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var snapshot OrderBookSnapshot
	if err := s.DB.QueryRowxContext(ctx, query, args...).StructScan(&snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "query latest order book snapshot of %s", symbol)
	}

	return &snapshot, nil
}
