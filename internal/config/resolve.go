// resolve.go
package config

import (
	"fmt"
	"time"
)

// Resolver turns layered balance files into a Tuning.
type Resolver interface {
	// Returns normalized Tuning for game ("" for the shared default).
	Resolve(game string) (Tuning, error)
}

// Resolve merges default → game onto the built-in defaults and validates the result.
func (l *Loader) Resolve(game string) (Tuning, error) {
	raw, err := l.LoadMerged(game)
	if err != nil {
		return Tuning{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return Tuning{}, err
	}
	t := Apply(Defaults(), raw)
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks constraints that span layers (e.g. rates set in different files).
func (t Tuning) Validate() error {
	if t.LegendaryRate+t.EpicRate+t.RareRate > 100 {
		return fmt.Errorf("config validation failed: gacha rates sum to %.2f, must be <= 100", t.LegendaryRate+t.EpicRate+t.RareRate)
	}
	if t.ReactionMaxDelay < t.ReactionMinDelay {
		return fmt.Errorf("config validation failed: reaction max delay %s below min delay %s", t.ReactionMaxDelay, t.ReactionMinDelay)
	}
	return nil
}

// Apply copies every set field of raw onto base.
func Apply(base Tuning, raw RawConfig) Tuning {
	t := base
	if raw.Version != "" {
		t.Version = raw.Version
	}
	if s := raw.Session; s != nil {
		if s.DurationSeconds != nil {
			t.SessionDuration = time.Duration(*s.DurationSeconds) * time.Second
		}
		set(&t.ComboStep, s.ComboStep)
		set(&t.ComboMax, s.ComboMax)
		set(&t.CrystalRate, s.CrystalRate)
		set(&t.SpecialEffectThreshold, s.SpecialEffectThreshold)
	}
	if r := raw.Rewards; r != nil {
		set(&t.NormalizeDivisor, r.NormalizeDivisor)
		set(&t.GoldPerPoint, r.GoldPerPoint)
		set(&t.CrystalsPerPoint, r.CrystalsPerPoint)
		set(&t.LevelStep, r.LevelStep)
		set(&t.SurpriseChance, r.SurpriseChance)
		set(&t.DailyLoginBonus, r.DailyLoginBonus)
		set(&t.ChallengeTarget, r.ChallengeTarget)
		set(&t.ChallengeBonus, r.ChallengeBonus)
	}
	if g := raw.Gacha; g != nil {
		set(&t.CostSingle, g.CostSingle)
		set(&t.CostTen, g.CostTen)
		if g.Rates != nil {
			set(&t.LegendaryRate, g.Rates.Legendary)
			set(&t.EpicRate, g.Rates.Epic)
			set(&t.RareRate, g.Rates.Rare)
		}
	}
	if g := raw.Games; g != nil {
		set(&t.ColorBasePoints, g.ColorBasePoints)
		set(&t.ColorBonusRange, g.ColorBonusRange)
		set(&t.SequenceButtons, g.SequenceButtons)
		set(&t.SequenceStepPoints, g.SequenceStepPoints)
		if g.ReactionMinDelayMs != nil {
			t.ReactionMinDelay = time.Duration(*g.ReactionMinDelayMs) * time.Millisecond
		}
		if g.ReactionMaxDelayMs != nil {
			t.ReactionMaxDelay = time.Duration(*g.ReactionMaxDelayMs) * time.Millisecond
		}
		set(&t.ReactionBasePoints, g.ReactionBasePoints)
		set(&t.ReactionMinPoints, g.ReactionMinPoints)
	}
	return t
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
