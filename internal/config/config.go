package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Port        string
	HTTPTimeout time.Duration
	LogLevel    slog.Level
}

// fileConfig espelha o arquivo TOML opcional apontado por CONFIG_FILE.
type fileConfig struct {
	Port               string `toml:"port"`
	HTTPTimeoutSeconds int    `toml:"http_timeout_seconds"`
	LogLevel           string `toml:"log_level"`
}

// FromEnv monta a configuração a partir das variáveis de ambiente, com um
// overlay TOML opcional (CONFIG_FILE). Variável de ambiente vence o arquivo.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        "8080",
		HTTPTimeout: 15 * time.Second,
		LogLevel:    slog.LevelInfo,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = parseLevel(v)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ler config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(fc.HTTPTimeoutSeconds) * time.Second
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = parseLevel(fc.LogLevel)
	}
	return nil
}

// LOG_LEVEL=debug liga, entre outros, a narração linha a linha do parser de
// parceria.
func parseLevel(v string) slog.Level {
	switch v {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
