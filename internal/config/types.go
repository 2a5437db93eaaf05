// types.go
package config

import "time"

// Raw config loaded from YAML. Every field is optional; nil means "inherit".
type RawConfig struct {
	Version string      `yaml:"version"`
	Session *SessionCfg `yaml:"session,omitempty"`
	Rewards *RewardsCfg `yaml:"rewards,omitempty"`
	Gacha   *GachaCfg   `yaml:"gacha,omitempty"`
	Games   *GamesCfg   `yaml:"games,omitempty"`
	Notes   string      `yaml:"notes,omitempty"`
}

type SessionCfg struct {
	DurationSeconds        *int     `yaml:"duration_seconds"`
	ComboStep              *float64 `yaml:"combo_step"`
	ComboMax               *float64 `yaml:"combo_max"`
	CrystalRate            *float64 `yaml:"crystal_rate"`             // share of bonus points paid as crystals
	SpecialEffectThreshold *int     `yaml:"special_effect_threshold"` // bonus points above which the flash fires
}

type RewardsCfg struct {
	NormalizeDivisor *int     `yaml:"normalize_divisor"`
	GoldPerPoint     *int     `yaml:"gold_per_point"`
	CrystalsPerPoint *int     `yaml:"crystals_per_point"`
	LevelStep        *int     `yaml:"level_step"`
	SurpriseChance   *float64 `yaml:"surprise_chance"`
	DailyLoginBonus  *int     `yaml:"daily_login_bonus"`
	ChallengeTarget  *int     `yaml:"challenge_target"`
	ChallengeBonus   *int     `yaml:"challenge_bonus"`
}

type GachaCfg struct {
	CostSingle *int      `yaml:"cost_single"`
	CostTen    *int      `yaml:"cost_ten"`
	Rates      *RatesCfg `yaml:"rates,omitempty"`
}

// RatesCfg holds rarity chances in percent. Common takes the remainder.
type RatesCfg struct {
	Legendary *float64 `yaml:"legendary"`
	Epic      *float64 `yaml:"epic"`
	Rare      *float64 `yaml:"rare"`
}

type GamesCfg struct {
	ColorBasePoints    *int `yaml:"color_base_points"`
	ColorBonusRange    *int `yaml:"color_bonus_range"`
	SequenceButtons    *int `yaml:"sequence_buttons"`
	SequenceStepPoints *int `yaml:"sequence_step_points"`
	ReactionMinDelayMs *int `yaml:"reaction_min_delay_ms"`
	ReactionMaxDelayMs *int `yaml:"reaction_max_delay_ms"`
	ReactionBasePoints *int `yaml:"reaction_base_points"`
	ReactionMinPoints  *int `yaml:"reaction_min_points"`
}

// Tuning is the normalized balance sheet consumed by the core.
type Tuning struct {
	SessionDuration        time.Duration
	ComboStep              float64
	ComboMax               float64
	CrystalRate            float64
	SpecialEffectThreshold int

	NormalizeDivisor int
	GoldPerPoint     int
	CrystalsPerPoint int
	LevelStep        int
	SurpriseChance   float64
	DailyLoginBonus  int
	ChallengeTarget  int
	ChallengeBonus   int

	CostSingle    int
	CostTen       int
	LegendaryRate float64
	EpicRate      float64
	RareRate      float64

	ColorBasePoints    int
	ColorBonusRange    int
	SequenceButtons    int
	SequenceStepPoints int
	ReactionMinDelay   time.Duration
	ReactionMaxDelay   time.Duration
	ReactionBasePoints int
	ReactionMinPoints  int

	Version string // effective config version for tracing
}

// Defaults returns the stock balance sheet.
func Defaults() Tuning {
	return Tuning{
		SessionDuration:        30 * time.Second,
		ComboStep:              0.1,
		ComboMax:               5.0,
		CrystalRate:            0.1,
		SpecialEffectThreshold: 100,

		NormalizeDivisor: 1000,
		GoldPerPoint:     10,
		CrystalsPerPoint: 2,
		LevelStep:        1000,
		SurpriseChance:   0.10,
		DailyLoginBonus:  100,
		ChallengeTarget:  3,
		ChallengeBonus:   500,

		CostSingle:    100,
		CostTen:       900,
		LegendaryRate: 1,
		EpicRate:      5,
		RareRate:      20,

		ColorBasePoints:    50,
		ColorBonusRange:    50,
		SequenceButtons:    4,
		SequenceStepPoints: 30,
		ReactionMinDelay:   2000 * time.Millisecond,
		ReactionMaxDelay:   5000 * time.Millisecond,
		ReactionBasePoints: 500,
		ReactionMinPoints:  50,

		Version: "builtin",
	}
}
