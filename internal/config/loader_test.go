package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveWithoutFilesUsesDefaults(t *testing.T) {
	got, err := NewLoader("").Resolve("color-match")
	if err != nil {
		t.Fatal(err)
	}
	if got != Defaults() {
		t.Fatalf("expected built-in defaults, got %+v", got)
	}

	got, err = NewLoader(t.TempDir()).Resolve("color-match")
	if err != nil {
		t.Fatal(err)
	}
	if got.CostSingle != 100 || got.CostTen != 900 || got.SessionDuration != 30*time.Second {
		t.Fatalf("missing files should fall back to defaults, got %+v", got)
	}
}

func TestResolveMergesGameOverDefault(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), `
version: "v2"
session:
  duration_seconds: 45
gacha:
  cost_single: 120
  rates:
    legendary: 2
`)
	writeFile(t, l.Paths().GamePath("reaction-time"), `
session:
  duration_seconds: 20
games:
  reaction_base_points: 600
gacha:
  rates:
    epic: 6
`)

	def, err := l.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if def.SessionDuration != 45*time.Second || def.Version != "v2" {
		t.Fatalf("default layer not applied: %+v", def)
	}

	got, err := l.Resolve("reaction-time")
	if err != nil {
		t.Fatal(err)
	}
	if got.SessionDuration != 20*time.Second {
		t.Fatalf("game layer should override duration, got %s", got.SessionDuration)
	}
	if got.CostSingle != 120 {
		t.Fatalf("default layer should survive, got cost %d", got.CostSingle)
	}
	if got.LegendaryRate != 2 || got.EpicRate != 6 || got.RareRate != 20 {
		t.Fatalf("rates merge wrong: %v %v %v", got.LegendaryRate, got.EpicRate, got.RareRate)
	}
	if got.ReactionBasePoints != 600 {
		t.Fatalf("games layer not applied")
	}
}

func TestLoaderCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), "gacha:\n  cost_single: 150\n")
	first, err := l.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, l.Paths().DefaultPath(), "gacha:\n  cost_single: 175\n")
	cached, _ := l.Resolve("")
	if cached.CostSingle != first.CostSingle {
		t.Fatalf("expected cached value before invalidate")
	}
	l.Invalidate()
	fresh, _ := l.Resolve("")
	if fresh.CostSingle != 175 {
		t.Fatalf("expected reload after invalidate, got %d", fresh.CostSingle)
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), `
session:
  duration_seconds: 0
rewards:
  surprise_chance: 1.5
`)
	_, err := l.Resolve("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duration_seconds", "surprise_chance"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err, want)
		}
	}
}

func TestResolveRejectsRatesOverflowAcrossLayers(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), "gacha:\n  rates:\n    legendary: 90\n")
	if _, err := l.Resolve(""); err == nil {
		t.Fatal("90+5+20 should exceed 100")
	}
}

func TestResolveMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	writeFile(t, l.Paths().DefaultPath(), "session: [not, a, map")
	if _, err := l.Resolve(""); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWatchPaths(t *testing.T) {
	if got := NewLoader("").WatchPaths("a"); got != nil {
		t.Fatalf("no base dir should watch nothing, got %v", got)
	}
	got := NewLoader("/cfg").WatchPaths("color-match")
	if len(got) != 2 || !strings.HasSuffix(got[1], filepath.Join("games", "color-match.yaml")) {
		t.Fatalf("paths = %v", got)
	}
}
