package gacha

import (
	"fmt"
	"math"
)

func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return ErrInvalidProb
	}
	if p < 0 || p > 1 {
		return ErrInvalidProb
	}
	return nil
}

// validateRates checks every tier chance and that they fit in 100%.
func validateRates(t RateTable) error {
	for _, p := range []float64{t.Legendary, t.Epic, t.Rare} {
		if err := validateProb(p / 100); err != nil {
			return err
		}
	}
	if sum := t.Legendary + t.Epic + t.Rare; sum > 100 {
		return fmt.Errorf("%w: rarity chances sum to %.2f%%", ErrInvalidProb, sum)
	}
	return nil
}
