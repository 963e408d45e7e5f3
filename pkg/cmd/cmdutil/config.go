package cmdutil

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/c9s/cexio/pkg/service"
)

type ExchangeConfig struct {
	APIKey    string `yaml:"apiKey,omitempty"`
	APISecret string `yaml:"apiSecret,omitempty"`
	UID       string `yaml:"uid,omitempty"`
	BaseURL   string `yaml:"baseURL,omitempty"`
	RateLimit string `yaml:"rateLimit,omitempty"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver,omitempty"`
	DSN    string `yaml:"dsn,omitempty"`
}

type PersistenceConfig struct {
	Redis *service.RedisPersistenceConfig `yaml:"redis,omitempty"`
	Json  *service.JsonPersistenceConfig  `yaml:"json,omitempty"`
}

type Config struct {
	Exchange    ExchangeConfig     `yaml:"exchange"`
	Database    DatabaseConfig     `yaml:"database"`
	Persistence *PersistenceConfig `yaml:"persistence,omitempty"`
}

// LoadConfig reads a yaml config file. A missing file yields an empty config.
func LoadConfig(configFile string) (*Config, error) {
	var config Config

	content, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return nil, errors.Wrapf(err, "can not read config file %s", configFile)
	}

	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	return &config, nil
}

// SetViperDefaults registers the config values as viper defaults so flags and env vars still win.
func (c *Config) SetViperDefaults(v *viper.Viper) {
	defaults := map[string]string{
		"cex-api-key":    c.Exchange.APIKey,
		"cex-api-secret": c.Exchange.APISecret,
		"cex-api-uid":    c.Exchange.UID,
		"cex-base-url":   c.Exchange.BaseURL,
		"cex-rate-limit": c.Exchange.RateLimit,
		"db-driver":      c.Database.Driver,
		"db-dsn":         c.Database.DSN,
	}

	for key, value := range defaults {
		if value != "" {
			v.SetDefault(key, value)
		}
	}
}
