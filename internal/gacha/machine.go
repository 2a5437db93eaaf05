// Package gacha implements the crystal-priced item roll: a fixed catalog,
// a rarity table sampled by cumulative thresholds, and a bundle price list.
package gacha

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/rng"
)

var ErrInsufficientCurrency = errors.New("insufficient neural crystals")

// MultiRareThreshold is the number of rare-or-better items that makes a roll "multi-rare".
const MultiRareThreshold = 3

// Wallet is the slice of player state a roll touches.
type Wallet interface {
	Crystals() int
	SpendCrystals(n int) bool
	AddCrystals(n int)
	AddItem(id string)
}

// Config bundles a rate table and price list.
type Config struct {
	Rates RateTable
	Cost  Cost
}

// DefaultConfig is the stock economy.
func DefaultConfig() Config {
	return Config{Rates: DefaultRates, Cost: DefaultCost}
}

// ConfigFromTuning lifts the gacha part of a balance sheet.
func ConfigFromTuning(t config.Tuning) Config {
	return Config{
		Rates: RateTable{Legendary: t.LegendaryRate, Epic: t.EpicRate, Rare: t.RareRate},
		Cost:  Cost{Currency: DefaultCost.Currency, Single: t.CostSingle, Ten: t.CostTen},
	}
}

// Machine performs rolls against a wallet.
type Machine struct {
	cfg Config
	rng rng.RandomSource
	log *slog.Logger
}

func NewMachine(cfg Config, r rng.RandomSource, log *slog.Logger) (*Machine, error) {
	if err := validateRates(cfg.Rates); err != nil {
		return nil, err
	}
	if cfg.Cost.Single <= 0 || cfg.Cost.Ten <= 0 {
		return nil, fmt.Errorf("gacha: costs must be positive (single=%d ten=%d)", cfg.Cost.Single, cfg.Cost.Ten)
	}
	if r == nil {
		r = rng.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Machine{cfg: cfg, rng: r, log: log}, nil
}

func (m *Machine) Config() Config { return m.cfg }

// CanRoll reports whether w can afford a roll of count items.
func (m *Machine) CanRoll(w Wallet, count int) bool {
	cost, err := m.cfg.Cost.For(count)
	if err != nil {
		return false
	}
	return w.Crystals() >= cost
}

// Result is the outcome of one paid roll.
type Result struct {
	Items        []Item
	Cost         int
	Refund       int
	Legendary    bool
	RareOrBetter int
}

// MultiRare reports whether enough rare-or-better items were drawn.
func (r Result) MultiRare() bool { return r.RareOrBetter >= MultiRareThreshold }

// Net is the crystal delta of the roll (refund minus cost).
func (r Result) Net() int { return r.Refund - r.Cost }

// Roll charges the wallet and draws count items. Each drawn item is added
// to the collection and refunds its crystal value. On
// ErrInsufficientCurrency or ErrInvalidCount the wallet is untouched.
func (m *Machine) Roll(w Wallet, count int) (Result, error) {
	cost, err := m.cfg.Cost.For(count)
	if err != nil {
		return Result{}, err
	}
	if w.Crystals() < cost || !w.SpendCrystals(cost) {
		return Result{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCurrency, cost, w.Crystals())
	}

	res := Result{Items: make([]Item, 0, count), Cost: cost}
	for i := 0; i < count; i++ {
		it := m.drawOne()
		w.AddItem(it.ID)
		w.AddCrystals(it.CrystalValue)
		res.Items = append(res.Items, it)
		res.Refund += it.CrystalValue
		if it.Rarity == Legendary {
			res.Legendary = true
		}
		if it.Rarity.AtLeastRare() {
			res.RareOrBetter++
		}
	}
	m.log.Info("gacha roll", "count", count, "cost", cost, "refund", res.Refund, "legendary", res.Legendary)
	return res, nil
}

func (m *Machine) drawOne() Item {
	return rng.Pick(m.rng, Bucket(m.cfg.Rates.Sample(m.rng)))
}

// Notifications renders the popups a roll produces, in display order.
func (r Result) Notifications() []notify.Notification {
	names := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		names = append(names, it.Icon+" "+it.Name)
	}
	out := []notify.Notification{{
		Kind:        notify.KindGachaResult,
		Title:       fmt.Sprintf("Got %d item(s)", len(r.Items)),
		Description: fmt.Sprintf("+%d crystals refunded", r.Refund),
		Icon:        "🎁",
		Payload:     map[string]any{"items": names, "cost": r.Cost, "refund": r.Refund},
	}}
	if r.Legendary {
		out = append(out, notify.Notification{
			Kind:        notify.KindLegendaryFound,
			Title:       "Legendary item!",
			Description: "A legendary item joined your collection",
			Icon:        "🌟",
		})
	}
	if r.MultiRare() {
		out = append(out, notify.Notification{
			Kind:        notify.KindMultiRare,
			Title:       "Lucky streak",
			Description: fmt.Sprintf("%d rare-or-better items in one roll", r.RareOrBetter),
			Icon:        "✨",
		})
	}
	return out
}
