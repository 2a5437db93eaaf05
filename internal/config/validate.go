package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if s := cfg.Session; s != nil {
		if s.DurationSeconds != nil && *s.DurationSeconds <= 0 {
			errs = append(errs, "session.duration_seconds must be >= 1")
		}
		if s.ComboStep != nil && !(*s.ComboStep >= 0 && finite(*s.ComboStep)) {
			errs = append(errs, "session.combo_step must be >= 0")
		}
		if s.ComboMax != nil && !(*s.ComboMax >= 1 && finite(*s.ComboMax)) {
			errs = append(errs, "session.combo_max must be >= 1")
		}
		if s.CrystalRate != nil && !(*s.CrystalRate >= 0 && *s.CrystalRate <= 1) {
			errs = append(errs, "session.crystal_rate must be in [0,1]")
		}
		if s.SpecialEffectThreshold != nil && *s.SpecialEffectThreshold < 0 {
			errs = append(errs, "session.special_effect_threshold must be >= 0")
		}
	}

	if r := cfg.Rewards; r != nil {
		if r.NormalizeDivisor != nil && *r.NormalizeDivisor <= 0 {
			errs = append(errs, "rewards.normalize_divisor must be >= 1")
		}
		if r.GoldPerPoint != nil && *r.GoldPerPoint < 0 {
			errs = append(errs, "rewards.gold_per_point must be >= 0")
		}
		if r.CrystalsPerPoint != nil && *r.CrystalsPerPoint < 0 {
			errs = append(errs, "rewards.crystals_per_point must be >= 0")
		}
		if r.LevelStep != nil && *r.LevelStep <= 0 {
			errs = append(errs, "rewards.level_step must be >= 1")
		}
		if r.SurpriseChance != nil && !(*r.SurpriseChance >= 0 && *r.SurpriseChance <= 1) {
			errs = append(errs, "rewards.surprise_chance must be in [0,1]")
		}
		if r.DailyLoginBonus != nil && *r.DailyLoginBonus < 0 {
			errs = append(errs, "rewards.daily_login_bonus must be >= 0")
		}
		if r.ChallengeTarget != nil && *r.ChallengeTarget <= 0 {
			errs = append(errs, "rewards.challenge_target must be >= 1")
		}
		if r.ChallengeBonus != nil && *r.ChallengeBonus < 0 {
			errs = append(errs, "rewards.challenge_bonus must be >= 0")
		}
	}

	if g := cfg.Gacha; g != nil {
		if g.CostSingle != nil && *g.CostSingle <= 0 {
			errs = append(errs, "gacha.cost_single must be >= 1")
		}
		if g.CostTen != nil && *g.CostTen <= 0 {
			errs = append(errs, "gacha.cost_ten must be >= 1")
		}
		if g.Rates != nil {
			sum := 0.0
			rates := []struct {
				name string
				p    *float64
			}{
				{"legendary", g.Rates.Legendary},
				{"epic", g.Rates.Epic},
				{"rare", g.Rates.Rare},
			}
			for _, r := range rates {
				if r.p == nil {
					continue
				}
				if !(*r.p >= 0 && *r.p <= 100) {
					errs = append(errs, fmt.Sprintf("gacha.rates.%s must be in [0,100]", r.name))
					continue
				}
				sum += *r.p
			}
			if sum > 100 {
				errs = append(errs, "gacha.rates must sum to <= 100")
			}
		}
	}

	if g := cfg.Games; g != nil {
		if g.ColorBasePoints != nil && *g.ColorBasePoints < 0 {
			errs = append(errs, "games.color_base_points must be >= 0")
		}
		if g.ColorBonusRange != nil && *g.ColorBonusRange < 0 {
			errs = append(errs, "games.color_bonus_range must be >= 0")
		}
		if g.SequenceButtons != nil && *g.SequenceButtons < 2 {
			errs = append(errs, "games.sequence_buttons must be >= 2")
		}
		if g.SequenceStepPoints != nil && *g.SequenceStepPoints < 0 {
			errs = append(errs, "games.sequence_step_points must be >= 0")
		}
		if g.ReactionMinDelayMs != nil && *g.ReactionMinDelayMs < 0 {
			errs = append(errs, "games.reaction_min_delay_ms must be >= 0")
		}
		if g.ReactionMinDelayMs != nil && g.ReactionMaxDelayMs != nil && *g.ReactionMaxDelayMs < *g.ReactionMinDelayMs {
			errs = append(errs, "games.reaction_max_delay_ms must be >= reaction_min_delay_ms")
		}
		if g.ReactionMinPoints != nil && *g.ReactionMinPoints < 0 {
			errs = append(errs, "games.reaction_min_points must be >= 0")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
