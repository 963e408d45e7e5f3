package testhelper

import (
	"fmt"
	"strings"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

// BalancesFromText parses one "currency, free[, used]" balance per line.
func BalancesFromText(str string) types.BalanceMap {
	balances := make(types.BalanceMap)
	for _, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		cols := strings.Split(line, ",")
		if len(cols) < 2 || len(cols) > 3 {
			panic(fmt.Errorf("column length should be 2 or 3, got %d", len(cols)))
		}

		currency := strings.TrimSpace(cols[0])
		free := fixedpoint.MustNewFromString(strings.TrimSpace(cols[1]))
		used := fixedpoint.Zero
		if len(cols) == 3 {
			used = fixedpoint.MustNewFromString(strings.TrimSpace(cols[2]))
		}

		balances[currency] = types.NewBalance(currency, free, used)
	}

	return balances
}
