package progression

import (
	"math"

	"github.com/xtding233/neuroboost/internal/config"
)

// Normalize maps a raw session score onto 0..100.
func Normalize(score float64, divisor int) int {
	if divisor <= 0 || score <= 0 || math.IsNaN(score) {
		return 0
	}
	return int(min(math.Round(score/float64(divisor)*100), 100))
}

// CrystalGain is floor(raw*combo*rate) with combo taken in hundredths and
// rate in basis points, so whole products are not lost to float error.
func CrystalGain(raw int, combo, rate float64) int {
	if raw <= 0 {
		return 0
	}
	hundredths := int64(math.Round(combo * 100))
	bp := int64(math.Round(rate * 10000))
	return int(int64(raw) * hundredths * bp / 1_000_000)
}

// NextCombo steps combo, keeps two decimals and caps at limit.
func NextCombo(combo, step, limit float64) float64 {
	return math.Min(math.Round((combo+step)*100)/100, limit)
}

// Rewards for a normalized score.
func Rewards(finalScore int, t config.Tuning) (gold, crystals int) {
	return finalScore * t.GoldPerPoint, finalScore * t.CrystalsPerPoint
}

// LevelFor is floor(totalScore / step) + 1.
func LevelFor(totalScore, step int) int {
	if step <= 0 {
		step = 1000
	}
	return max(totalScore, 0)/step + 1
}

// Title is the result headline for a normalized score.
func Title(finalScore int) string {
	switch {
	case finalScore >= 90:
		return "Perfect!"
	case finalScore >= 80:
		return "Great!"
	case finalScore >= 70:
		return "Good!"
	case finalScore >= 60:
		return "Not bad!"
	default:
		return "Game over!"
	}
}

// Surprise is a bonus occasionally granted at the end of a session.
type Surprise struct {
	Label string
	Icon  string
	Value int
}

var SurpriseTable = []Surprise{
	{Label: "Diamond bonus", Icon: "💎", Value: 300},
	{Label: "Shooting star bonus", Icon: "⭐", Value: 200},
	{Label: "Lucky clover", Icon: "🍀", Value: 150},
}

// Result is what EndSession reports for display.
type Result struct {
	Game          string
	FinalScore    int
	GoldReward    int
	CrystalReward int
	Title         string
	NewRecord     bool
	LevelUp       bool
	Surprise      *Surprise
}
