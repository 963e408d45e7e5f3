package service

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/cexio/pkg/fixedpoint"
)

func TestRedisPersistentService(t *testing.T) {
	if b, _ := strconv.ParseBool(os.Getenv("TEST_REDIS")); !b {
		t.Skip("redis test is not enabled, set TEST_REDIS=1 to run it")
	}

	redisService := NewRedisPersistenceService(&RedisPersistenceConfig{
		Host:      "127.0.0.1",
		Port:      "6379",
		DB:        0,
		Namespace: "cexio-test",
	})
	require.NotNil(t, redisService)
	defer redisService.Close()

	store := redisService.NewStore("cex", "test")
	assert.NotNil(t, store)

	err := store.Reset()
	assert.NoError(t, err)

	var fp fixedpoint.Value
	err = store.Load(&fp)
	assert.Equal(t, ErrPersistenceNotExists, err)

	fp = fixedpoint.NewFromFloat(3.1415)
	err = store.Save(&fp)
	assert.NoError(t, err, "should store value without error")

	var fp2 fixedpoint.Value
	err = store.Load(&fp2)
	assert.NoError(t, err, "should load value without error")
	assert.Equal(t, fp, fp2)

	err = store.Reset()
	assert.NoError(t, err)
}

func TestRedisPersistenceService_NewStoreKey(t *testing.T) {
	redisService := NewRedisPersistenceService(&RedisPersistenceConfig{
		Host:      "127.0.0.1",
		Port:      "6379",
		Namespace: "cexio",
	})
	defer redisService.Close()

	store := redisService.NewStore("markets", "cex")
	assert.Equal(t, "cexio:markets:cex", store.(*RedisStore).ID)
}

func TestNewRedisPersistenceConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	config, err := NewRedisPersistenceConfigFromEnv()
	assert.NoError(t, err)
	assert.Nil(t, config)

	t.Setenv("REDIS_HOST", "redis.local")
	t.Setenv("REDIS_DB", "2")

	config, err = NewRedisPersistenceConfigFromEnv()
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "redis.local", config.Host)
	assert.Equal(t, "6379", config.Port)
	assert.Equal(t, 2, config.DB)
	assert.Equal(t, "cexio", config.Namespace)
}
