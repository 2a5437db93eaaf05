package gacha

import "github.com/xtding233/neuroboost/internal/rng"

// RateTable holds per-tier chances in percent. Common takes the remainder.
type RateTable struct {
	Legendary float64
	Epic      float64
	Rare      float64
}

// DefaultRates: legendary [0,1), epic [1,6), rare [6,26), common [26,100).
var DefaultRates = RateTable{Legendary: 1, Epic: 5, Rare: 20}

// Sample maps one uniform draw in [0,100) onto a tier by cumulative thresholds.
func (t RateTable) Sample(r rng.RandomSource) Rarity {
	if r == nil {
		r = rng.Default()
	}
	x := r.Float64() * 100
	switch {
	case x < t.Legendary:
		return Legendary
	case x < t.Legendary+t.Epic:
		return Epic
	case x < t.Legendary+t.Epic+t.Rare:
		return Rare
	default:
		return Common
	}
}

// Common returns the remainder share in percent.
func (t RateTable) Common() float64 {
	return 100 - t.Legendary - t.Epic - t.Rare
}
