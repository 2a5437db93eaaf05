package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/progression"
)

// Run blocks until the player quits or ctx is cancelled. Tunings received
// on updates are applied between frames.
func Run(ctx context.Context, ctrl *progression.Controller, queue *notify.Queue, updates <-chan config.Tuning, log *slog.Logger) error {
	p := tea.NewProgram(New(ctx, ctrl, queue, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if updates != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-updates:
					if !ok {
						return
					}
					p.Send(TuningMsg{Tuning: t})
				}
			}
		}()
	}
	_, err := p.Run()
	return err
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
