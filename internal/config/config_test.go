package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "sem.plan.created", cfg.Kafka.PlanCreatedTopic)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("PLANNER_RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, uint64(42), cfg.Planner.RandomSeed)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
}
