package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/game balance files.
type Paths struct {
	BaseDir string // base directory, e.g., ~/.neuroboost/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "games", "default.yaml")
}
func (p Paths) GamePath(game string) string {
	return filepath.Join(p.BaseDir, "games", game+".yaml")
}

// Loader reads YAML balance files and merges default → game.
// An empty BaseDir means "built-in defaults only".
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: game id or "$default"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// Paths exposes the file layout, e.g. for the watcher.
func (l *Loader) Paths() Paths { return l.paths }

// WatchPaths lists every file that can influence Resolve for games.
func (l *Loader) WatchPaths(games ...string) []string {
	if l.paths.BaseDir == "" {
		return nil
	}
	out := []string{l.paths.DefaultPath()}
	for _, g := range games {
		out = append(out, l.paths.GamePath(g))
	}
	return out
}

// LoadMerged loads and merges default → game (game optional).
// It returns the merged RawConfig (without normalization).
func (l *Loader) LoadMerged(game string) (RawConfig, error) {
	key := game
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	if l.paths.BaseDir == "" {
		return RawConfig{}, nil
	}

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if game != "" {
		gameCfg, err := readYAML(l.paths.GamePath(game))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read %s: %w", game, err)
		}
		merged = mergeRaw(defCfg, gameCfg)
	}

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where non-nil.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	if b.Session != nil {
		s := SessionCfg{}
		if a.Session != nil {
			s = *a.Session
		}
		override(&s.DurationSeconds, b.Session.DurationSeconds)
		override(&s.ComboStep, b.Session.ComboStep)
		override(&s.ComboMax, b.Session.ComboMax)
		override(&s.CrystalRate, b.Session.CrystalRate)
		override(&s.SpecialEffectThreshold, b.Session.SpecialEffectThreshold)
		out.Session = &s
	}

	if b.Rewards != nil {
		r := RewardsCfg{}
		if a.Rewards != nil {
			r = *a.Rewards
		}
		override(&r.NormalizeDivisor, b.Rewards.NormalizeDivisor)
		override(&r.GoldPerPoint, b.Rewards.GoldPerPoint)
		override(&r.CrystalsPerPoint, b.Rewards.CrystalsPerPoint)
		override(&r.LevelStep, b.Rewards.LevelStep)
		override(&r.SurpriseChance, b.Rewards.SurpriseChance)
		override(&r.DailyLoginBonus, b.Rewards.DailyLoginBonus)
		override(&r.ChallengeTarget, b.Rewards.ChallengeTarget)
		override(&r.ChallengeBonus, b.Rewards.ChallengeBonus)
		out.Rewards = &r
	}

	if b.Gacha != nil {
		g := GachaCfg{}
		if a.Gacha != nil {
			g = *a.Gacha
		}
		override(&g.CostSingle, b.Gacha.CostSingle)
		override(&g.CostTen, b.Gacha.CostTen)
		if b.Gacha.Rates != nil {
			rates := RatesCfg{}
			if g.Rates != nil {
				rates = *g.Rates
			}
			override(&rates.Legendary, b.Gacha.Rates.Legendary)
			override(&rates.Epic, b.Gacha.Rates.Epic)
			override(&rates.Rare, b.Gacha.Rates.Rare)
			g.Rates = &rates
		}
		out.Gacha = &g
	}

	if b.Games != nil {
		g := GamesCfg{}
		if a.Games != nil {
			g = *a.Games
		}
		override(&g.ColorBasePoints, b.Games.ColorBasePoints)
		override(&g.ColorBonusRange, b.Games.ColorBonusRange)
		override(&g.SequenceButtons, b.Games.SequenceButtons)
		override(&g.SequenceStepPoints, b.Games.SequenceStepPoints)
		override(&g.ReactionMinDelayMs, b.Games.ReactionMinDelayMs)
		override(&g.ReactionMaxDelayMs, b.Games.ReactionMaxDelayMs)
		override(&g.ReactionBasePoints, b.Games.ReactionBasePoints)
		override(&g.ReactionMinPoints, b.Games.ReactionMinPoints)
		out.Games = &g
	}

	return out
}

func override[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
