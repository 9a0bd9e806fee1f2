package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"mirepoix/internal/units"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Display DisplayConfig `json:"display"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type DisplayConfig struct {
	// DefaultSystem is used when a request or CLI call doesn't pick one.
	DefaultSystem units.System `json:"default_system"`
}

func Load() (*Config, error) {
	// .env is a local-dev convenience; absence is fine
	_ = godotenv.Load()

	system, ok := units.ParseSystem(getEnvOrDefault("UNIT_SYSTEM", string(units.Metric)))
	if !ok {
		return nil, fmt.Errorf("UNIT_SYSTEM must be metric or imperial, got %q", os.Getenv("UNIT_SYSTEM"))
	}

	config := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("ADDR", ":8080"),
		},
		Display: DisplayConfig{
			DefaultSystem: system,
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
