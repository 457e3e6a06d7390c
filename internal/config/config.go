// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every setting of the server and the feeder
type Config struct {
	Port        string
	Env         string
	StoreDriver string
	DatabaseURL string
	SQLitePath  string

	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	KafkaBrokers []string
	KafkaTopic   string

	TimeZone       string
	RateLimitRPS   float64
	RateLimitBurst int
	FeederInterval time.Duration
	RandomSeed     int64
}

// Load reads .env when present, then the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GO_ENV", "development"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", "thermora.db"),
		InfluxURL:      getEnv("INFLUXDB_URL", ""),
		InfluxToken:    getEnv("INFLUXDB_TOKEN", ""),
		InfluxOrg:      getEnv("INFLUXDB_ORG", "thermora"),
		InfluxBucket:   getEnv("INFLUXDB_BUCKET", "thermal"),
		KafkaBrokers:   getEnvList("KAFKA_BROKERS"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "thermal-readings"),
		TimeZone:       getEnv("THERMORA_TZ", "America/Sao_Paulo"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		FeederInterval: getEnvDuration("FEEDER_INTERVAL", 30*time.Second),
		RandomSeed:     int64(getEnvInt("RANDOM_SEED", 0)),
	}
}

// Location resolves TimeZone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("Warning: unknown time zone %q, using UTC: %v", c.TimeZone, err)
		return time.UTC
	}
	return loc
}

// Validate reports settings that cannot work together
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit must be positive")
	}
	if c.FeederInterval <= 0 {
		return fmt.Errorf("config: FEEDER_INTERVAL must be positive")
	}
	return nil
}

// InfluxEnabled tells whether readings go to InfluxDB
func (c *Config) InfluxEnabled() bool {
	return c.InfluxURL != "" && c.InfluxToken != ""
}

// KafkaEnabled tells whether the feeder publishes to Kafka
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
