package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "KAFKA_BROKERS", "THERMORA_TZ", "RATE_LIMIT_RPS", "FEEDER_INTERVAL", "RANDOM_SEED", "INFLUXDB_URL", "INFLUXDB_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.KafkaEnabled())
	assert.False(t, cfg.InfluxEnabled())
	assert.Equal(t, 30*time.Second, cfg.FeederInterval)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("FEEDER_INTERVAL", "5s")
	t.Setenv("RANDOM_SEED", "42")

	cfg := FromEnv()
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, 5*time.Second, cfg.FeederInterval)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestValidate(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	assert.Error(t, FromEnv().Validate())

	t.Setenv("STORE_DRIVER", "mongo")
	assert.Error(t, FromEnv().Validate())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{TimeZone: "Nowhere/Atlantis"}
	assert.Equal(t, time.UTC, cfg.Location())
}
