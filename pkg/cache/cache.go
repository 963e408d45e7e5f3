package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/cexio/pkg/envvar"
	"github.com/c9s/cexio/pkg/service"
	"github.com/c9s/cexio/pkg/types"
	"github.com/c9s/cexio/pkg/util/backoff"
)

const memCacheExpiry = 5 * time.Minute
const fileCacheExpiry = 24 * time.Hour

var globalMarketMemCache = newMarketMemCache()

type marketMemCache struct {
	sync.Mutex
	markets map[string]marketMapWithTime
}

type marketMapWithTime struct {
	updatedAt time.Time
	markets   types.MarketMap
}

func newMarketMemCache() *marketMemCache {
	cache := &marketMemCache{
		markets: make(map[string]marketMapWithTime),
	}
	return cache
}

func (c *marketMemCache) IsOutdated(exName string) bool {
	c.Lock()
	defer c.Unlock()

	data, ok := c.markets[exName]
	return !ok || time.Since(data.updatedAt) > memCacheExpiry
}

func (c *marketMemCache) Set(exName string, markets types.MarketMap) {
	c.Lock()
	defer c.Unlock()

	c.markets[exName] = marketMapWithTime{
		updatedAt: time.Now(),
		markets:   markets,
	}
}

func (c *marketMemCache) Get(exName string) (types.MarketMap, bool) {
	c.Lock()
	defer c.Unlock()

	markets, ok := c.markets[exName]
	if !ok {
		return nil, false
	}

	copied := types.MarketMap{}
	for key, val := range markets.markets {
		copied[key] = val
	}
	return copied, true
}

// CacheDir returns CEX_MARKETS_CACHE_DIR, or the cexio directory under the user cache directory.
func CacheDir() string {
	if dir, ok := envvar.String("CEX_MARKETS_CACHE_DIR"); ok && dir != "" {
		return dir
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "cexio")
}

// LoadExchangeMarketsWithCache loads the markets from the in-process cache when
// USE_MARKETS_CACHE_IN_MEMORY is set, otherwise from the JSON file cache.
func LoadExchangeMarketsWithCache(ctx context.Context, ex types.ExchangePublic) (markets types.MarketMap, err error) {
	inMem, ok := envvar.Bool("USE_MARKETS_CACHE_IN_MEMORY")
	if ok && inMem {
		return loadMarketsFromMem(ctx, ex)
	}

	// fallback to use files as cache
	return loadMarketsFromFile(ctx, ex)
}

// loadMarketsFromMem is useful for one process to run multiple exchange sessions in different go routines.
func loadMarketsFromMem(ctx context.Context, ex types.ExchangePublic) (markets types.MarketMap, _ error) {
	exName := ex.Name().String()
	if globalMarketMemCache.IsOutdated(exName) {
		op := func() error {
			rst, err2 := ex.QueryMarkets(ctx)
			if err2 != nil {
				return err2
			}

			markets = rst
			globalMarketMemCache.Set(exName, rst)
			return nil
		}

		if err := backoff.RetryGeneral(ctx, op); err != nil {
			return nil, err
		}

		return markets, nil
	}

	rst, _ := globalMarketMemCache.Get(exName)
	return rst, nil
}

// loadMarketsFromFile keeps one <exchange>-markets.json snapshot under CacheDir.
func loadMarketsFromFile(ctx context.Context, ex types.ExchangePublic) (types.MarketMap, error) {
	files := &service.JsonPersistenceService{Directory: CacheDir()}
	return LoadExchangeMarketsWithStore(ctx, ex, files.NewStore(fmt.Sprintf("%s-markets", ex.Name())))
}

// marketsSnapshot is the persisted form of a market set.
type marketsSnapshot struct {
	UpdatedAt time.Time       `json:"updatedAt"`
	Markets   types.MarketMap `json:"markets"`
}

func (s *marketsSnapshot) Expiration() time.Duration {
	return fileCacheExpiry
}

// LoadExchangeMarketsWithStore keeps the market set in a persistence store, e.g. redis shared by several processes.
// Snapshots older than a day are refreshed.
func LoadExchangeMarketsWithStore(ctx context.Context, ex types.ExchangePublic, store service.Store) (types.MarketMap, error) {
	var snapshot marketsSnapshot
	err := store.Load(&snapshot)
	switch {
	case err == nil && time.Since(snapshot.UpdatedAt) <= fileCacheExpiry && len(snapshot.Markets) > 0:
		return snapshot.Markets, nil

	case err != nil && err != service.ErrPersistenceNotExists:
		log.WithError(err).Warnf("can not load %s markets from the store, querying the exchange", ex.Name())
	}

	var markets types.MarketMap
	if err := backoff.RetryGeneral(ctx, func() (err2 error) {
		markets, err2 = ex.QueryMarkets(ctx)
		return err2
	}); err != nil {
		return nil, err
	}

	if err := store.Save(&marketsSnapshot{UpdatedAt: time.Now(), Markets: markets}); err != nil {
		log.WithError(err).Warnf("can not save %s markets to the store", ex.Name())
	}

	return markets, nil
}
