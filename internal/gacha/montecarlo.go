package gacha

import (
	"log/slog"
	"math"
	"sort"

	"github.com/xtding233/neuroboost/internal/rng"
)

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// SimReport is the output of Simulate.
type SimReport struct {
	Count          int
	Trials         int
	Net            Stats   // crystal delta per roll
	LegendaryShare float64 // fraction of rolls with at least one legendary
	MultiRareShare float64
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// simWallet never runs dry.
type simWallet struct{ crystals int }

func (w *simWallet) Crystals() int { return w.crystals }
func (w *simWallet) SpendCrystals(n int) bool {
	w.crystals -= n
	return true
}
func (w *simWallet) AddCrystals(n int) { w.crystals += n }
func (w *simWallet) AddItem(string)    {}

// Simulate repeats paid rolls of count items and reports the crystal
// economy per roll.
func Simulate(cfg Config, count, trials int, r rng.RandomSource) (SimReport, error) {
	rep := SimReport{Count: count, Trials: trials}
	if trials <= 0 {
		return rep, nil
	}
	m, err := NewMachine(cfg, r, slog.New(slog.DiscardHandler))
	if err != nil {
		return rep, err
	}
	if _, err := cfg.Cost.For(count); err != nil {
		return rep, err
	}
	samples := make([]int, trials)
	legendary, multi := 0, 0
	for i := 0; i < trials; i++ {
		w := &simWallet{crystals: math.MaxInt32}
		res, err := m.Roll(w, count)
		if err != nil {
			return rep, err
		}
		samples[i] = res.Net()
		if res.Legendary {
			legendary++
		}
		if res.MultiRare() {
			multi++
		}
	}
	rep.Net = calcStats(samples)
	rep.LegendaryShare = float64(legendary) / float64(trials)
	rep.MultiRareShare = float64(multi) / float64(trials)
	return rep, nil
}

// ExpectedRefund is the analytic mean refund of a single draw.
func ExpectedRefund(t RateTable) float64 {
	mean := func(r Rarity) float64 {
		items := Bucket(r)
		sum := 0
		for _, it := range items {
			sum += it.CrystalValue
		}
		return float64(sum) / float64(len(items))
	}
	return t.Legendary/100*mean(Legendary) +
		t.Epic/100*mean(Epic) +
		t.Rare/100*mean(Rare) +
		t.Common()/100*mean(Common)
}
