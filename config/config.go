package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr    string
	PostgresURL string
	RedisAddr   string
	GatewayAddr string

	JaegerEndpoint string
	TracingEnabled bool

	LogLevel        logrus.Level
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		GatewayAddr:     os.Getenv("GATEWAY_ADDR"),
		TracingEnabled:  getEnvAsBool("TRACING_ENABLED", true),
		LogLevel:        level,
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "5s"),
	}
	cfg.JaegerEndpoint = getEnv("JAEGER_ENDPOINT", cfg.GatewayAddr+"/jaeger-api/api/traces")

	var missing []string
	for _, required := range []struct{ key, value string }{
		{"POSTGRES_URL", cfg.PostgresURL},
		{"REDIS_ADDR", cfg.RedisAddr},
		{"GATEWAY_ADDR", cfg.GatewayAddr},
	} {
		if required.value == "" {
			missing = append(missing, required.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	value, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		value, _ = time.ParseDuration(defaultValue)
	}
	return value
}
