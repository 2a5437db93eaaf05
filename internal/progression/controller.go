// Package progression owns the player's profile and turns finished game
// sessions into currency, levels, achievements, missions and rankings.
package progression

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/neuroboost/internal/clock"
	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/gacha"
	"github.com/xtding233/neuroboost/internal/minigame"
	"github.com/xtding233/neuroboost/internal/mission"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/ranking"
	"github.com/xtding233/neuroboost/internal/rng"
	"github.com/xtding233/neuroboost/internal/store"
)

var (
	ErrInsufficientCurrency = gacha.ErrInsufficientCurrency
	ErrUnknownGame          = minigame.ErrUnknownGame
	ErrNoActiveSession      = errors.New("no active session")
)

// Deferred notification delays.
const (
	DailyLoginDelay = 4000 * time.Millisecond
	SurpriseDelay   = 1000 * time.Millisecond
)

const dateLayout = "2006-01-02"

// Options configure a Controller. Store is required.
type Options struct {
	Store      store.KV
	Tuning     config.Tuning
	Resolver   config.Resolver // optional per-game overrides
	RNG        rng.RandomSource
	Clock      *clock.Scheduler
	Sink       notify.Sink
	Log        *slog.Logger
	PlayerName string
}

// Controller is the single owner of player state. It is not safe for
// concurrent use: drive it and its clock from one goroutine.
type Controller struct {
	ctx      context.Context
	repo     *Repository
	tuning   config.Tuning
	resolver config.Resolver
	rng      rng.RandomSource
	clock    *clock.Scheduler
	sink     notify.Sink
	log      *slog.Logger
	name     string

	profile  Profile
	daily    Daily
	reaction *minigame.ReactionStats
	missions *mission.Tracker
	board    *ranking.Board
	machine  *gacha.Machine

	session    *session
	lastResult *Result
}

// New loads the profile from the store and returns a ready controller.
// ctx is kept for persistence triggered by the clock.
func New(ctx context.Context, o Options) (*Controller, error) {
	if o.Store == nil {
		return nil, fmt.Errorf("progression: store is required")
	}
	if o.Tuning.Version == "" {
		o.Tuning = config.Defaults()
	}
	if o.RNG == nil {
		o.RNG = rng.Default()
	}
	if o.Clock == nil {
		o.Clock = clock.New(time.Now())
	}
	if o.Sink == nil {
		o.Sink = notify.Discard
	}
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.PlayerName == "" {
		o.PlayerName = "Player"
	}
	machine, err := gacha.NewMachine(gacha.ConfigFromTuning(o.Tuning), o.RNG, o.Log)
	if err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}
	c := &Controller{
		ctx:      ctx,
		repo:     NewRepository(o.Store, o.Log),
		tuning:   o.Tuning,
		resolver: o.Resolver,
		rng:      o.RNG,
		clock:    o.Clock,
		sink:     o.Sink,
		log:      o.Log,
		name:     o.PlayerName,
		machine:  machine,
	}
	c.adopt(c.repo.Load(ctx))
	return c, nil
}

func (c *Controller) adopt(st State) {
	c.profile = st.Profile
	c.daily = st.Daily
	reaction := st.Reaction
	c.reaction = &reaction
	c.missions = mission.NewTracker(st.Missions)
	c.board = ranking.NewBoard()
	for p, entries := range st.Rankings {
		c.board.Set(p, entries)
	}
}

func (c *Controller) state() State {
	st := State{
		Profile:  c.profile,
		Missions: c.missions.Missions(),
		Rankings: make(map[ranking.Period][]ranking.Entry, len(ranking.Periods)),
		Daily:    c.daily,
		Reaction: *c.reaction,
	}
	for _, p := range ranking.Periods {
		st.Rankings[p] = c.board.List(p)
	}
	return st
}

func (c *Controller) save(ctx context.Context) error {
	c.profile.LastPlayTime = c.clock.Now().UnixMilli()
	if err := c.repo.Save(ctx, c.state()); err != nil {
		c.log.Error("persist profile failed", "err", err)
		return err
	}
	return nil
}

func (c *Controller) today() string { return c.clock.Now().Format(dateLayout) }

// ApplyTuning swaps the balance sheet. A running session keeps its engine.
func (c *Controller) ApplyTuning(t config.Tuning) error {
	m, err := gacha.NewMachine(gacha.ConfigFromTuning(t), c.rng, c.log)
	if err != nil {
		return fmt.Errorf("apply tuning: %w", err)
	}
	c.tuning = t
	c.machine = m
	c.log.Info("tuning applied", "version", t.Version)
	return nil
}

func (c *Controller) Tuning() config.Tuning { return c.tuning }

// StartSession begins a session of game id. A session already running is
// abandoned first: its timers stop and it earns no rewards.
func (c *Controller) StartSession(id minigame.GameID) error {
	tuning := c.gameTuning(id)
	engine, err := minigame.New(id, minigame.Deps{
		RNG:      c.rng,
		Clock:    c.clock,
		Tuning:   tuning,
		Reaction: c.reaction,
	})
	if err != nil {
		return err
	}
	if err := c.Abandon(c.ctx); err != nil {
		c.log.Error("save before new session", "err", err)
	}

	s := newSession(id, tuning, c.clock.Now())
	s.engine = engine
	s.timer = c.clock.Every(time.Second, c.tick)
	c.session = s
	c.lastResult = nil
	engine.Start()
	c.log.Info("session started", "game", id, "session", s.id)
	return nil
}

// gameTuning applies per-game overrides when a resolver is configured.
func (c *Controller) gameTuning(id minigame.GameID) config.Tuning {
	if c.resolver == nil {
		return c.tuning
	}
	t, err := c.resolver.Resolve(string(id))
	if err != nil {
		c.log.Warn("game tuning unavailable, using shared tuning", "game", id, "err", err)
		return c.tuning
	}
	return t
}

// Abandon drops the active session without rewards and saves the profile,
// so crystals earned during the session are kept on disk. No-op when idle.
func (c *Controller) Abandon(ctx context.Context) error {
	if !c.drop() {
		return nil
	}
	if err := c.save(ctx); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	return nil
}

func (c *Controller) drop() bool {
	if c.session == nil {
		return false
	}
	c.session.stop()
	c.log.Info("session abandoned", "game", c.session.game, "session", c.session.id)
	c.session = nil
	return true
}

func (c *Controller) tick() {
	s := c.session
	if s == nil || s.ended {
		return
	}
	s.timeRemaining = max(s.timeRemaining-1, 0)
	if s.timeRemaining > 0 {
		return
	}
	if _, err := c.EndSession(c.ctx); err != nil {
		c.log.Error("end session on timeout", "err", err)
	}
}

// Session returns the active session, if any.
func (c *Controller) Session() (SessionView, bool) {
	if c.session == nil {
		return SessionView{}, false
	}
	return c.session.view(), true
}

// LastResult is the result of the most recently ended session.
func (c *Controller) LastResult() (Result, bool) {
	if c.lastResult == nil {
		return Result{}, false
	}
	return *c.lastResult, true
}

// Action forwards player input to the active engine and applies what it produced.
func (c *Controller) Action(in minigame.Input) (minigame.Outcome, error) {
	s := c.session
	if s == nil {
		return minigame.Outcome{}, ErrNoActiveSession
	}
	out := s.engine.OnPlayerAction(in)
	switch {
	case out.Awarded:
		c.AddPoints(out.Points)
	case out.Failed:
		c.ResetCombo()
	}
	if out.Reaction {
		if err := c.repo.SaveReaction(c.ctx, *c.reaction); err != nil {
			c.log.Error("persist reaction stats failed", "err", err)
		}
	}
	return out, nil
}

// AddPoints applies the combo multiplier to raw points. Crystals accrue at
// once; they reach the store with the session's final save.
func (c *Controller) AddPoints(raw int) {
	s := c.session
	if s == nil || s.ended {
		return
	}
	t := s.tuning
	raw = max(raw, 0)
	bonus := float64(raw) * s.combo
	s.score += bonus
	c.profile.AddCrystals(CrystalGain(raw, s.combo, t.CrystalRate))
	s.combo = NextCombo(s.combo, t.ComboStep, t.ComboMax)

	if bonus > float64(t.SpecialEffectThreshold) {
		c.sink.Emit(notify.Notification{
			Kind:        notify.KindSpecialEffect,
			Title:       fmt.Sprintf("+%d", int(bonus)),
			Description: "Big hit!",
			Icon:        "💥",
			Payload:     map[string]any{"bonus": bonus},
		})
	}
	c.sink.Emit(notify.Notification{
		Kind:    notify.KindCombo,
		Title:   fmt.Sprintf("x%.1f", math.Floor(s.combo*10)/10),
		Payload: map[string]any{"combo": s.combo},
	})
}

// ResetCombo drops the multiplier back to 1.
func (c *Controller) ResetCombo() {
	if c.session != nil {
		c.session.combo = 1.0
	}
}

// EndSession finishes the active session and credits its rewards. A second
// call, or a call while idle, returns ErrNoActiveSession.
func (c *Controller) EndSession(ctx context.Context) (Result, error) {
	s := c.session
	if s == nil || s.ended {
		return Result{}, ErrNoActiveSession
	}
	s.stop()
	c.session = nil

	var out notify.Buffer
	p := &c.profile
	t := s.tuning

	final := Normalize(s.score, t.NormalizeDivisor)
	gold, crystals := Rewards(final, t)
	res := Result{
		Game:          string(s.game),
		FinalScore:    final,
		GoldReward:    gold,
		CrystalReward: crystals,
		Title:         Title(final),
	}

	p.TotalScore += final
	p.Gold += gold
	p.AddCrystals(crystals)

	if final > p.BestScores[string(s.game)] {
		p.BestScores[string(s.game)] = final
		res.NewRecord = true
		out.Emit(notify.Notification{
			Kind:        notify.KindNewRecord,
			Title:       "New record!",
			Description: fmt.Sprintf("%s best is now %d", s.game, final),
			Icon:        "🏆",
			Payload:     map[string]any{"game": string(s.game), "score": final},
		})
	}

	if lvl := LevelFor(p.TotalScore, t.LevelStep); lvl > p.Level {
		p.Level = lvl
		res.LevelUp = true
		out.Emit(notify.Notification{
			Kind:        notify.KindLevelUp,
			Title:       fmt.Sprintf("Level %d", lvl),
			Description: "Your brain grew stronger",
			Icon:        "⬆️",
			Payload:     map[string]any{"level": lvl},
		})
	}

	c.checkAchievements(achievementCtx{game: s.game, finalScore: final, combo: s.combo, totalScore: p.TotalScore}, &out)
	c.updateMissions(s.game, final, &out)

	c.board.Record(ranking.Entry{
		ID:        uuid.NewString(),
		Name:      c.name,
		Score:     final,
		Timestamp: c.clock.Now().UnixMilli(),
	})

	var surprise notify.Notification
	if hit, _ := gacha.Draw(t.SurpriseChance, c.rng); hit {
		sp := rng.Pick(c.rng, SurpriseTable)
		p.TotalScore += sp.Value
		res.Surprise = &sp
		surprise = notify.Notification{
			Kind:        notify.KindReward,
			Title:       sp.Label,
			Description: fmt.Sprintf("+%d score", sp.Value),
			Icon:        sp.Icon,
			Payload:     map[string]any{"score": sp.Value},
		}
	}

	c.advanceChallenge(&out)

	err := c.save(ctx)
	c.log.Info("session ended", "game", s.game, "session", s.id, "finalScore", final,
		"gold", gold, "crystals", crystals, "newRecord", res.NewRecord)
	out.Flush(c.sink)
	if res.Surprise != nil {
		c.clock.After(SurpriseDelay, func() { c.sink.Emit(surprise) })
	}
	c.lastResult = &res
	if err != nil {
		return res, fmt.Errorf("end session: %w", err)
	}
	return res, nil
}

func (c *Controller) checkAchievements(ac achievementCtx, out notify.Sink) {
	for _, a := range Achievements {
		if c.profile.Achievements[a.ID] || !a.unlocked(ac) {
			continue
		}
		c.profile.Achievements[a.ID] = true
		out.Emit(notify.Notification{
			Kind:        notify.KindAchievement,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Payload:     map[string]any{"id": a.ID},
		})
	}
}

func (c *Controller) updateMissions(game minigame.GameID, final int, out notify.Sink) {
	done := c.missions.UpdateProgress(string(game), final, gacha.LegendaryOwned(c.profile.Collection))
	for _, m := range done {
		c.profile.Gold += m.Reward.Gold
		c.profile.AddCrystals(m.Reward.Crystals)
		c.log.Info("mission completed", "mission", m.ID)
		out.Emit(notify.Notification{
			Kind:        notify.KindMissionComplete,
			Title:       m.Title,
			Description: fmt.Sprintf("+%d gold, +%d crystals", m.Reward.Gold, m.Reward.Crystals),
			Icon:        "🎯",
			Payload:     map[string]any{"id": m.ID},
		})
	}
}

// advanceChallenge counts today's sessions; the bonus pays once on reaching the target.
func (c *Controller) advanceChallenge(out notify.Sink) {
	today := c.today()
	if c.daily.LastPlayDate != today {
		c.daily.LastPlayDate = today
		c.daily.ChallengeProgress = 0
	}
	c.daily.ChallengeProgress++
	if c.daily.ChallengeProgress != c.tuning.ChallengeTarget {
		return
	}
	c.profile.TotalScore += c.tuning.ChallengeBonus
	out.Emit(notify.Notification{
		Kind:        notify.KindReward,
		Title:       "Daily challenge complete",
		Description: fmt.Sprintf("+%d score", c.tuning.ChallengeBonus),
		Icon:        "📅",
		Payload:     map[string]any{"score": c.tuning.ChallengeBonus},
	})
}

// ChallengeProgress returns today's session count and the target.
func (c *Controller) ChallengeProgress() (done, target int) {
	if c.daily.LastPlayDate != c.today() {
		return 0, c.tuning.ChallengeTarget
	}
	return min(c.daily.ChallengeProgress, c.tuning.ChallengeTarget), c.tuning.ChallengeTarget
}

// ScheduleDailyLogin claims the login reward after the startup delay.
func (c *Controller) ScheduleDailyLogin() *clock.Task {
	return c.clock.After(DailyLoginDelay, func() {
		if _, err := c.ClaimDailyLogin(c.ctx); err != nil {
			c.log.Error("daily login reward", "err", err)
		}
	})
}

// ClaimDailyLogin grants the login bonus once per calendar day.
func (c *Controller) ClaimDailyLogin(ctx context.Context) (bool, error) {
	today := c.today()
	if c.daily.LastRewardDate == today {
		return false, nil
	}
	c.daily.LastRewardDate = today
	c.profile.TotalScore += c.tuning.DailyLoginBonus
	err := c.save(ctx)
	c.sink.Emit(notify.Notification{
		Kind:        notify.KindReward,
		Title:       "Daily login bonus",
		Description: fmt.Sprintf("+%d score", c.tuning.DailyLoginBonus),
		Icon:        "🎁",
		Payload:     map[string]any{"score": c.tuning.DailyLoginBonus},
	})
	return true, err
}

// CanRoll reports whether the player can afford a roll of count items.
func (c *Controller) CanRoll(count int) bool {
	return c.machine.CanRoll(&c.profile, count)
}

// RollGacha spends crystals on count items. Without enough crystals it
// emits an insufficient-currency notification and changes nothing.
func (c *Controller) RollGacha(ctx context.Context, count int) (gacha.Result, error) {
	res, err := c.machine.Roll(&c.profile, count)
	if errors.Is(err, gacha.ErrInsufficientCurrency) {
		cost, _ := c.machine.Config().Cost.For(count)
		c.sink.Emit(notify.Notification{
			Kind:        notify.KindInsufficientCurrency,
			Title:       "Not enough crystals",
			Description: fmt.Sprintf("Need %d, have %d", cost, c.profile.NeuralCrystals),
			Icon:        "💸",
		})
		return res, err
	}
	if err != nil {
		return res, err
	}
	saveErr := c.save(ctx)
	for _, n := range res.Notifications() {
		c.sink.Emit(n)
	}
	if saveErr != nil {
		return res, fmt.Errorf("roll gacha: %w", saveErr)
	}
	return res, nil
}

// Reset wipes the store and returns to a fresh profile.
func (c *Controller) Reset(ctx context.Context) error {
	c.drop()
	if err := c.repo.Clear(ctx); err != nil {
		return err
	}
	c.adopt(DefaultState())
	c.lastResult = nil
	c.log.Warn("profile reset")
	return c.save(ctx)
}

// Profile returns a copy of the player profile.
func (c *Controller) Profile() Profile { return c.profile.Clone() }

// Missions returns a snapshot of the mission list.
func (c *Controller) Missions() []mission.Mission { return c.missions.Missions() }

// MissionPercent is the share of completed missions.
func (c *Controller) MissionPercent() int { return c.missions.CompletionPercent() }

// Rankings returns the top n rows of one period.
func (c *Controller) Rankings(p ranking.Period, n int) []ranking.Row { return c.board.Top(p, n) }

// Reaction returns the persisted reaction-time stats.
func (c *Controller) Reaction() minigame.ReactionStats {
	r := *c.reaction
	r.Recent = append([]int(nil), r.Recent...)
	return r
}

// Collection summarizes owned items.
func (c *Controller) Collection() gacha.CollectionStats { return gacha.Summarize(c.profile.Collection) }

// Clock exposes the scheduler driving this controller.
func (c *Controller) Clock() *clock.Scheduler { return c.clock }
