// Package tui is the terminal front end: it renders controller snapshots,
// forwards key presses, and advances the controller's clock in real time.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/gacha"
	"github.com/xtding233/neuroboost/internal/minigame"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/progression"
	"github.com/xtding233/neuroboost/internal/ranking"
)

// TickInterval is how often the clock is advanced while idle.
const TickInterval = 100 * time.Millisecond

type Tab string

const (
	TabGames      Tab = "games"
	TabCollection Tab = "collection"
	TabMission    Tab = "mission"
	TabRanking    Tab = "ranking"
)

var tabs = []Tab{TabGames, TabCollection, TabMission, TabRanking}

type tickMsg time.Time

// TuningMsg delivers a reloaded balance sheet.
type TuningMsg struct{ Tuning config.Tuning }

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	ctrl   *progression.Controller
	queue  *notify.Queue
	log    *slog.Logger
	now    func() time.Time
	keys   keyMap
	help   help.Model
	bar    progress.Model
	tab    Tab
	period ranking.Period
	popups []notify.Notification
	status string
	combo  string
}

func New(ctx context.Context, ctrl *progression.Controller, queue *notify.Queue, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		queue:  queue,
		log:    log,
		now:    time.Now,
		keys:   defaultKeys(),
		help:   help.New(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		tab:    TabGames,
		period: ranking.Daily,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// SetTab switches tabs. Unknown names are ignored.
func (m *Model) SetTab(name string) {
	for _, t := range tabs {
		if string(t) == name {
			m.tab = t
			return
		}
	}
}

func (m Model) Tab() Tab { return m.tab }

// Popups returns notifications waiting to be dismissed.
func (m Model) Popups() []notify.Notification { return m.popups }

func (m *Model) syncClock() {
	m.ctrl.Clock().AdvanceTo(m.now())
	for _, n := range m.queue.Drain() {
		if n.Kind == notify.KindCombo {
			m.combo = n.Title
			continue
		}
		m.popups = append(m.popups, n)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.syncClock()
		return m, tick()
	case TuningMsg:
		if err := m.ctrl.ApplyTuning(msg.Tuning); err != nil {
			m.status = err.Error()
		} else {
			m.status = "balance reloaded (" + msg.Tuning.Version + ")"
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// catch up first so reaction clicks are timed at the key press
		m.syncClock()
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.ctrl.Abandon(m.ctx); err != nil {
			m.log.Error("save on quit", "err", err)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		if len(m.popups) > 0 {
			m.popups = m.popups[1:]
		}
	case key.Matches(msg, m.keys.Tab):
		m.tab = tabs[(indexOfTab(m.tab)+1)%len(tabs)]
	case key.Matches(msg, m.keys.Period):
		m.period = ranking.Periods[(indexOfPeriod(m.period)+1)%len(ranking.Periods)]
	case key.Matches(msg, m.keys.Color):
		m.start(minigame.ColorMatch)
	case key.Matches(msg, m.keys.Sequence):
		m.start(minigame.SequenceMemory)
	case key.Matches(msg, m.keys.Reaction):
		m.start(minigame.ReactionTime)
	case key.Matches(msg, m.keys.Choose):
		m.act(minigame.Input{Choice: int(msg.String()[0] - '1')})
	case key.Matches(msg, m.keys.Click):
		m.act(minigame.Input{})
	case key.Matches(msg, m.keys.Finish):
		if _, err := m.ctrl.EndSession(m.ctx); err != nil && !errors.Is(err, progression.ErrNoActiveSession) {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Abandon):
		if err := m.ctrl.Abandon(m.ctx); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Roll):
		m.roll(1)
	case key.Matches(msg, m.keys.RollTen):
		m.roll(10)
	}
	m.syncClock()
	return m, nil
}

func (m *Model) start(id minigame.GameID) {
	if err := m.ctrl.StartSession(id); err != nil {
		m.status = err.Error()
		return
	}
	m.tab = TabGames
	m.combo = ""
	m.status = ""
}

func (m *Model) act(in minigame.Input) {
	if _, err := m.ctrl.Action(in); err != nil && !errors.Is(err, progression.ErrNoActiveSession) {
		m.status = err.Error()
	}
}

func (m *Model) roll(count int) {
	res, err := m.ctrl.RollGacha(m.ctx, count)
	switch {
	case errors.Is(err, gacha.ErrInsufficientCurrency):
		// the controller already queued a popup
	case err != nil:
		m.status = err.Error()
	default:
		m.status = fmt.Sprintf("rolled %d, net %+d crystals", len(res.Items), res.Net())
	}
	m.tab = TabCollection
}

func indexOfTab(t Tab) int {
	for i, x := range tabs {
		if x == t {
			return i
		}
	}
	return 0
}

func indexOfPeriod(p ranking.Period) int {
	for i, x := range ranking.Periods {
		if x == p {
			return i
		}
	}
	return 0
}
