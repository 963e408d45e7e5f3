package cmdutil

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c9s/cexio/pkg/cache"
	"github.com/c9s/cexio/pkg/exchange"
	"github.com/c9s/cexio/pkg/exchange/cex"
	"github.com/c9s/cexio/pkg/service"
	"github.com/c9s/cexio/pkg/types"
)

// ExchangeOptions collects the exchange options from flags, env vars and the config file.
func ExchangeOptions(v *viper.Viper) exchange.ExchangeOptions {
	options := exchange.ExchangeOptions{}
	for key, name := range map[string]string{
		exchange.ExchangeOptionsKeyAPIKey:    "cex-api-key",
		exchange.ExchangeOptionsKeyAPISecret: "cex-api-secret",
		exchange.ExchangeOptionsKeyAPIUID:    "cex-api-uid",
		exchange.ExchangeOptionsKeyBaseURL:   "cex-base-url",
		exchange.ExchangeOptionsKeyRateLimit: "cex-rate-limit",
	} {
		if value := v.GetString(name); value != "" {
			options[key] = value
		}
	}
	return options
}

// NewExchange creates the exchange and primes its market set from the cache.
func NewExchange(ctx context.Context, v *viper.Viper, persistence *service.PersistenceServiceFacade) (*cex.Exchange, error) {
	ex, err := exchange.New(types.ExchangeCEX, ExchangeOptions(v))
	if err != nil {
		return nil, err
	}

	cexExchange, ok := ex.(*cex.Exchange)
	if !ok {
		return nil, fmt.Errorf("unexpected exchange type %T", ex)
	}

	if v.GetBool("no-markets-cache") {
		return cexExchange, nil
	}

	var markets types.MarketMap
	if persistence != nil && (persistence.Redis != nil || persistence.Json != nil) {
		store := persistence.Get().NewStore("markets", cexExchange.Name().String())
		markets, err = cache.LoadExchangeMarketsWithStore(ctx, cexExchange, store)
	} else {
		markets, err = cache.LoadExchangeMarketsWithCache(ctx, cexExchange)
	}

	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %d markets", len(markets))
	cexExchange.SetMarkets(markets)
	return cexExchange, nil
}

// NewPersistenceFacade wires the configured persistence backends. REDIS_* env vars fill in a missing redis section.
func NewPersistenceFacade(config *PersistenceConfig) (*service.PersistenceServiceFacade, error) {
	facade := &service.PersistenceServiceFacade{
		Memory: service.NewMemoryService(),
	}

	var redisConfig *service.RedisPersistenceConfig
	if config != nil {
		redisConfig = config.Redis
		if config.Json != nil {
			facade.Json = &service.JsonPersistenceService{Directory: config.Json.Directory}
		}
	}

	if redisConfig == nil {
		var err error
		redisConfig, err = service.NewRedisPersistenceConfigFromEnv()
		if err != nil {
			return nil, err
		}
	}

	if redisConfig != nil {
		facade.Redis = service.NewRedisPersistenceService(redisConfig)
	}

	return facade, nil
}
