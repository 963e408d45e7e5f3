package types

import (
	"encoding/json"
	"sort"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

type PriceVolume struct {
	Price  fixedpoint.Value `json:"price"`
	Volume fixedpoint.Value `json:"volume"`
}

type PriceVolumeSlice []PriceVolume

func (slice PriceVolumeSlice) Len() int      { return len(slice) }
func (slice PriceVolumeSlice) Swap(i, j int) { slice[i], slice[j] = slice[j], slice[i] }

// SortBids orders the levels by price, highest first.
func (slice PriceVolumeSlice) SortBids() PriceVolumeSlice {
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Price > slice[j].Price
	})
	return slice
}

// SortAsks orders the levels by price, lowest first.
func (slice PriceVolumeSlice) SortAsks() PriceVolumeSlice {
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Price < slice[j].Price
	})
	return slice
}

func (slice PriceVolumeSlice) First() (PriceVolume, bool) {
	if len(slice) > 0 {
		return slice[0], true
	}
	return PriceVolume{}, false
}

// Head returns at most n levels from the top of the slice.
func (slice PriceVolumeSlice) Head(n int) PriceVolumeSlice {
	if n < len(slice) {
		return slice[:n]
	}
	return slice
}

type OrderBook struct {
	Symbol    string               `json:"symbol"`
	Timestamp MillisecondTimestamp `json:"timestamp"`
	Bids      PriceVolumeSlice     `json:"bids"`
	Asks      PriceVolumeSlice     `json:"asks"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (b *OrderBook) BestBid() (PriceVolume, bool) {
	return b.Bids.First()
}

func (b *OrderBook) BestAsk() (PriceVolume, bool) {
	return b.Asks.First()
}

func (b *OrderBook) Spread() (fixedpoint.Value, bool) {
	bid, ok := b.BestBid()
	if !ok {
		return fixedpoint.Zero, false
	}

	ask, ok := b.BestAsk()
	if !ok {
		return fixedpoint.Zero, false
	}

	return ask.Price.Sub(bid.Price), true
}
