package config

import (
	"context"
	"log"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	DBDSN    string `env:"DB_DSN,    default=shopfront.db"`
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel)
	return cfg, nil
}
