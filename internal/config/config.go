package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// KOSIS upstream
	KOSISAPIKey  string
	KOSISBaseURL string
	StartYear    string
	FetchTimeout time.Duration

	// Snapshot store
	SQLiteDBPath string

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// View cache
	CacheTTL  time.Duration
	CacheSize int

	// Worker
	RefreshInterval    time.Duration
	RefreshConcurrency int

	// Backend selection
	DataBackend string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		KOSISAPIKey:  getEnv("KOSIS_API_KEY", ""),
		KOSISBaseURL: getEnv("KOSIS_BASE_URL", ""),
		StartYear:    getEnv("KOSIS_START_YEAR", "1990"),
		FetchTimeout: getEnvDuration("KOSIS_FETCH_TIMEOUT", 10*time.Second),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/mulga.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "mulga"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "refresh_series"),

		CacheTTL:  getEnvDuration("CACHE_TTL", 6*time.Hour),
		CacheSize: getEnvInt("CACHE_SIZE", 300),

		RefreshInterval:    getEnvDuration("REFRESH_INTERVAL", 24*time.Hour),
		RefreshConcurrency: getEnvInt("REFRESH_CONCURRENCY", 4),

		DataBackend: getEnv("DATA_BACKEND", "memory"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if year, err := strconv.Atoi(c.StartYear); err != nil || len(c.StartYear) != 4 {
		errors = append(errors, fmt.Sprintf("invalid start year '%s': must be a 4-digit year", c.StartYear))
	} else if year < 1965 {
		errors = append(errors, fmt.Sprintf("invalid start year %d: KOSIS has no data before 1965", year))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.FetchTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid fetch timeout %v: must be at least 1 second", c.FetchTimeout))
	}

	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	}
	if c.CacheTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at least 1 minute", c.CacheTTL))
	}

	if c.RefreshConcurrency < 1 {
		errors = append(errors, fmt.Sprintf("invalid refresh concurrency %d: must be at least 1", c.RefreshConcurrency))
	} else if c.RefreshConcurrency > 32 {
		errors = append(errors, fmt.Sprintf("invalid refresh concurrency %d: must be at most 32", c.RefreshConcurrency))
	}
	if c.RefreshInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid refresh interval %v: must be at least 1 minute", c.RefreshInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
