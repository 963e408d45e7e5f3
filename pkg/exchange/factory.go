package exchange

import (
	"fmt"
	"strings"

	"github.com/c9s/cexio/pkg/envvar"
	"github.com/c9s/cexio/pkg/exchange/cex"
	"github.com/c9s/cexio/pkg/types"
	"github.com/c9s/cexio/pkg/util"
)

const (
	ExchangeOptionsKeyAPIKey    = "API_KEY"
	ExchangeOptionsKeyAPISecret = "API_SECRET"
	ExchangeOptionsKeyAPIUID    = "API_UID"
	ExchangeOptionsKeyBaseURL   = "BASE_URL"
	ExchangeOptionsKeyRateLimit = "RATE_LIMIT"
)

// ExchangeOptions is a map of exchange options used to initialize an exchange
type ExchangeOptions map[string]string

// ExchangeEnvLoader loads exchange options from the environment variables named varPrefix + "_" + option key.
type ExchangeEnvLoader func(varPrefix string) (ExchangeOptions, error)

// ExchangeConstructor is a function type to create an exchange instance with the given options
type ExchangeConstructor func(ExchangeOptions) (types.Exchange, error)

type ExchangeFactory struct {
	EnvLoader   ExchangeEnvLoader
	Constructor ExchangeConstructor
}

var exchangeFactories = map[types.ExchangeName]ExchangeFactory{
	types.ExchangeCEX: {
		EnvLoader:   DefaultEnvVarLoader,
		Constructor: newCEX,
	},
}

func newCEX(options ExchangeOptions) (types.Exchange, error) {
	ex := cex.New(options[ExchangeOptionsKeyAPIKey], options[ExchangeOptionsKeyAPISecret], options[ExchangeOptionsKeyAPIUID])

	if baseURL := options[ExchangeOptionsKeyBaseURL]; baseURL != "" {
		if err := ex.Client().SetBaseURL(baseURL); err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
		}
	}

	if desc := options[ExchangeOptionsKeyRateLimit]; desc != "" {
		limiter, err := util.ParseRateLimitSyntax(desc)
		if err != nil {
			return nil, err
		}
		ex.SetRateLimiter(limiter)
	}

	return ex, nil
}

func RegisterExchange(name types.ExchangeName, factory ExchangeFactory) {
	exchangeFactories[name] = factory
}

// NewPublic creates an exchange without credentials, private calls fail with an authentication error.
func NewPublic(exchangeName types.ExchangeName) (types.Exchange, error) {
	return New(exchangeName, nil)
}

func New(n types.ExchangeName, options ExchangeOptions) (types.Exchange, error) {
	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.Constructor == nil {
		return nil, fmt.Errorf("exchange factory %v does not support constructor", n)
	}

	return factory.Constructor(options)
}

// NewWithEnvVarPrefix allocate and initialize the exchange instance with the given environment variable prefix
// When the varPrefix is a empty string, the default exchange name will be used as the prefix
func NewWithEnvVarPrefix(n types.ExchangeName, varPrefix string) (types.Exchange, error) {
	if len(varPrefix) == 0 {
		varPrefix = n.String()
	}

	varPrefix = strings.ToUpper(varPrefix)

	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.EnvLoader == nil {
		return nil, fmt.Errorf("exchange factory %v does not support environment variable loader", n)
	}

	options, err := factory.EnvLoader(varPrefix)
	if err != nil {
		return nil, err
	}

	return New(n, options)
}

// DefaultEnvVarLoader reads the credentials and client settings. The credentials are all or nothing.
func DefaultEnvVarLoader(varPrefix string) (ExchangeOptions, error) {
	options := ExchangeOptions{}
	for _, key := range []string{
		ExchangeOptionsKeyAPIKey,
		ExchangeOptionsKeyAPISecret,
		ExchangeOptionsKeyAPIUID,
		ExchangeOptionsKeyBaseURL,
		ExchangeOptionsKeyRateLimit,
	} {
		if v := envvar.Prefixed(varPrefix, key); v != "" {
			options[key] = v
		}
	}

	present := 0
	for _, key := range []string{ExchangeOptionsKeyAPIKey, ExchangeOptionsKeyAPISecret, ExchangeOptionsKeyAPIUID} {
		if options[key] != "" {
			present++
		}
	}

	if present != 0 && present != 3 {
		return nil, fmt.Errorf("can not initialize exchange due to incomplete credentials, %s_API_KEY, %s_API_SECRET and %s_API_UID are all required",
			varPrefix, varPrefix, varPrefix)
	}

	return options, nil
}
