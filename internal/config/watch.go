package config

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// FileWatcher polls balance file mtimes and reports edits to onChange.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string)
	log       *slog.Logger
	lastMTime map[string]time.Time
}

// NewFileWatcher defaults interval to 2s and log to slog.Default.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string), log *slog.Logger) *FileWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		log:       log,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is cancelled. Call in a goroutine.
func (w *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	// prime cache
	w.Scan(true)
	for {
		select {
		case <-ticker.C:
			w.Scan(false)
		case <-ctx.Done():
			return
		}
	}
}

// Scan records current mtimes. Unless prime is set, paths that are new or
// newer than the last scan are passed to onChange.
func (w *FileWatcher) Scan(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime {
			continue
		}
		if !ok || mt.After(last) {
			w.log.Info("balance config changed", "path", p)
			if w.onChange != nil {
				w.onChange(p)
			}
		}
	}
}
