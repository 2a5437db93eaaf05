package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NEUROBOOST_DATA_DIR", dir)
	t.Setenv("NEUROBOOST_DB", "")
	t.Setenv("NEUROBOOST_PLAYER_NAME", "  ")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != filepath.Join(dir, "profile.db") {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.PlayerName != "Player" {
		t.Fatalf("player name = %q", cfg.PlayerName)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("level = %v", cfg.Level())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NEUROBOOST_DATA_DIR", t.TempDir())
	t.Setenv("NEUROBOOST_SEED", "42")
	t.Setenv("NEUROBOOST_LOG_LEVEL", "debug")
	t.Setenv("NEUROBOOST_WATCH_CONFIG", "true")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || !cfg.WatchConfig || cfg.Level() != slog.LevelDebug {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("NEUROBOOST_SEED", "not-a-number")
	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
