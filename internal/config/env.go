package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the process-level configuration read from the environment.
type AppConfig struct {
	DataDir     string `env:"NEUROBOOST_DATA_DIR"`
	DBPath      string `env:"NEUROBOOST_DB"`
	ConfigDir   string `env:"NEUROBOOST_CONFIG_DIR"`
	PlayerName  string `env:"NEUROBOOST_PLAYER_NAME" envDefault:"Player"`
	Seed        uint64 `env:"NEUROBOOST_SEED" envDefault:"0"`
	LogLevel    string `env:"NEUROBOOST_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"NEUROBOOST_LOG_FORMAT" envDefault:"text"`
	WatchConfig bool   `env:"NEUROBOOST_WATCH_CONFIG" envDefault:"false"`
}

// LoadEnv parses AppConfig and fills path defaults.
func LoadEnv() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	if cfg.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			cfg.DataDir = filepath.Join(home, ".neuroboost")
		} else {
			cfg.DataDir = ".neuroboost"
		}
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "profile.db")
	}
	cfg.PlayerName = strings.TrimSpace(cfg.PlayerName)
	if cfg.PlayerName == "" {
		cfg.PlayerName = "Player"
	}
	return cfg, nil
}

// Level maps LogLevel to slog. Unknown values fall back to info.
func (c AppConfig) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
