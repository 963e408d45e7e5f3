package service

import (
	"errors"
	"time"

	"github.com/codingconcepts/env"
)

var ErrPersistenceNotExists = errors.New("persistent data does not exist")

type PersistenceService interface {
	NewStore(id string, subIDs ...string) Store
}

type Store interface {
	Load(val interface{}) error
	Save(val interface{}) error
	Reset() error
}

// Expirable values are saved with a time to live where the backend supports it.
type Expirable interface {
	Expiration() time.Duration
}

type RedisPersistenceConfig struct {
	Host      string `yaml:"host" json:"host" env:"REDIS_HOST"`
	Port      string `yaml:"port" json:"port" env:"REDIS_PORT"`
	Password  string `yaml:"password,omitempty" json:"password,omitempty" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" json:"db" env:"REDIS_DB"`
	Namespace string `yaml:"namespace" json:"namespace" env:"REDIS_NAMESPACE"`
}

// NewRedisPersistenceConfigFromEnv fills the config from the REDIS_* variables.
// It returns nil when REDIS_HOST is not set.
func NewRedisPersistenceConfigFromEnv() (*RedisPersistenceConfig, error) {
	config := &RedisPersistenceConfig{
		Port:      "6379",
		Namespace: "cexio",
	}

	if err := env.Set(config); err != nil {
		return nil, err
	}

	if config.Host == "" {
		return nil, nil
	}

	return config, nil
}

type JsonPersistenceConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}
