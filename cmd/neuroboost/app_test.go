package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/neuroboost/internal/config"
)

func testConfig(t *testing.T) config.AppConfig {
	dir := t.TempDir()
	return config.AppConfig{
		DataDir:    dir,
		DBPath:     filepath.Join(dir, "profile.db"),
		PlayerName: "tester",
		Seed:       42,
		LogLevel:   "error",
		LogFormat:  "text",
	}
}

func TestOpenAppPersistsAcrossRuns(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := openApp(ctx, cfg, false)
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	if _, err := a.ctrl.RollGacha(ctx, 1); err != nil {
		t.Fatalf("roll: %v", err)
	}
	want := a.ctrl.Profile().NeuralCrystals
	a.Close()

	b, err := openApp(ctx, cfg, true)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()
	if got := b.ctrl.Profile().NeuralCrystals; got != want {
		t.Fatalf("crystals = %d, want %d", got, want)
	}
	if b.ctrl.Collection().Total != 1 {
		t.Fatalf("collection = %+v", b.ctrl.Collection())
	}
}

func TestOpenAppRejectsBadBalanceFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfigDir = t.TempDir()
	writeFile(t, filepath.Join(cfg.ConfigDir, "games", "default.yaml"), "gacha:\n  cost_single: -5\n")
	if _, err := openApp(context.Background(), cfg, false); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.AppConfig{LogLevel: "info", LogFormat: "json"}).Info("hello", "k", 1)
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("json handler output = %q", buf.String())
	}
	buf.Reset()
	newLogger(&buf, config.AppConfig{LogLevel: "warn"}).Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
