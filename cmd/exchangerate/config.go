package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"service-exchangerate/internal/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AccessKey string `env:"EXCHANGERATE_ACCESS_KEY"`
	TLS       bool   `env:"EXCHANGERATE_TLS" env-default:"false"`

	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"PORT" env-default:"8080"`

	ArchiveSource   string   `env:"ARCHIVE_SOURCE" env-default:"GBP"`
	ArchiveSymbols  []string `env:"ARCHIVE_SYMBOLS" env-default:"EUR,USD,JPY" env-separator:","`
	ArchiveCron     string   `env:"ARCHIVE_CRON" env-default:"0 12 * * *"`
	ArchiveLocation string   `env:"ARCHIVE_LOCATION" env-default:"UTC"`

	EncodingKey string `env:"ENCODING_KEY"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogJSON  bool   `env:"LOG_JSON" env-default:"false"`
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warn().Err(err).Msg("error loading .env file")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.AccessKey = strings.TrimSpace(cfg.AccessKey)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.EncodingKey = strings.TrimSpace(cfg.EncodingKey)
	cfg.HTTPPort = strings.TrimSpace(cfg.HTTPPort)

	symbols := cfg.ArchiveSymbols[:0]
	for _, s := range cfg.ArchiveSymbols {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	cfg.ArchiveSymbols = symbols

	return cfg, nil
}

// requireDatabase is used by the commands that need Postgres.
func (c Config) requireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}
	return nil
}
