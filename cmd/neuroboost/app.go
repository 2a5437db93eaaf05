package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xtding233/neuroboost/internal/clock"
	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/progression"
	"github.com/xtding233/neuroboost/internal/rng"
	"github.com/xtding233/neuroboost/internal/store"
)

// app wires the store, balance config and controller for one command.
type app struct {
	cfg     config.AppConfig
	log     *slog.Logger
	logFile *os.File
	kv      *store.SQLite
	loader  *config.Loader
	clock   *clock.Scheduler
	queue   *notify.Queue
	ctrl    *progression.Controller
}

// openApp builds the app. When logToFile is set, logs go to
// <data>/neuroboost.log so they do not fight the TUI for the terminal.
func openApp(ctx context.Context, cfg config.AppConfig, logToFile bool) (*app, error) {
	a := &app{cfg: cfg}

	var w io.Writer = os.Stderr
	if logToFile {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(cfg.DataDir, "neuroboost.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	}
	a.log = newLogger(w, cfg)

	a.loader = config.NewLoader(cfg.ConfigDir)
	tuning, err := a.loader.Resolve("")
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load balance config: %w", err)
	}

	kv, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.kv = kv

	var source rng.RandomSource = rng.Default()
	if cfg.Seed != 0 {
		source = rng.NewSeeded(cfg.Seed)
	}

	a.clock = clock.New(time.Now())
	a.queue = notify.NewQueue()
	opts := progression.Options{
		Store:      kv,
		Tuning:     tuning,
		RNG:        source,
		Clock:      a.clock,
		Sink:       a.queue,
		Log:        a.log,
		PlayerName: cfg.PlayerName,
	}
	if cfg.ConfigDir != "" {
		opts.Resolver = a.loader
	}
	a.ctrl, err = progression.New(ctx, opts)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.log.Debug("app ready", "db", cfg.DBPath, "config", cfg.ConfigDir, "tuning", tuning.Version)
	return a, nil
}

func newLogger(w io.Writer, cfg config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// flush prints queued notifications for non-interactive commands.
func (a *app) flush() {
	for _, n := range a.queue.Drain() {
		if n.Kind == notify.KindCombo {
			continue
		}
		line := strings.TrimSpace(n.Icon + " " + n.Title)
		if n.Description != "" {
			line += ": " + n.Description
		}
		switch n.Kind {
		case notify.KindInsufficientCurrency:
			printWarn(line)
		case notify.KindLegendaryFound, notify.KindMultiRare, notify.KindLevelUp, notify.KindNewRecord:
			printSuccess(line)
		default:
			printInfo(line)
		}
	}
}

func (a *app) Close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil && a.log != nil {
			a.log.Error("close store", "err", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
