package testhelper

import (
	"fmt"
	"strings"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

// PriceVolumeSliceFromText parses one "price, volume" level per line.
func PriceVolumeSliceFromText(str string) (slice types.PriceVolumeSlice) {
	for _, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		cols := strings.SplitN(line, ",", 2)
		if len(cols) < 2 {
			panic(fmt.Errorf("column length should be 2, got %d", len(cols)))
		}

		slice = append(slice, types.PriceVolume{
			Price:  fixedpoint.MustNewFromString(strings.TrimSpace(cols[0])),
			Volume: fixedpoint.MustNewFromString(strings.TrimSpace(cols[1])),
		})
	}

	return slice
}

// OrderBook builds a book from two level listings, sorted like the exchange returns them.
func OrderBook(symbol, bids, asks string) *types.OrderBook {
	return &types.OrderBook{
		Symbol: symbol,
		Bids:   PriceVolumeSliceFromText(bids).SortBids(),
		Asks:   PriceVolumeSliceFromText(asks).SortAsks(),
	}
}
