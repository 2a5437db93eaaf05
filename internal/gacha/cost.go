package gacha

import (
	"errors"
	"fmt"
)

var ErrInvalidCount = errors.New("invalid roll count; must be 1 or 10")

// Cost is the crystal price list. Ten rolls are sold as one bundle
// price, never as ten singles.
type Cost struct {
	Currency string // e.g. "Neural Crystals"
	Single   int
	Ten      int
}

var DefaultCost = Cost{Currency: "Neural Crystals", Single: 100, Ten: 900}

// For returns the price of a roll of count items.
func (c Cost) For(count int) (int, error) {
	switch count {
	case 1:
		return c.Single, nil
	case 10:
		return c.Ten, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
}

// Discount returns how many crystals the bundle saves over ten singles.
func (c Cost) Discount() int {
	return 10*c.Single - c.Ten
}
