package minigame

import "github.com/xtding233/neuroboost/internal/rng"

// Palette is the color-match swatch set.
var Palette = []string{"#FF6B9D", "#4ECDC4", "#FFE66D", "#FF8A5B", "#8B5FBF", "#45B7D1"}

const optionCount = 6

type colorMatch struct {
	d       Deps
	target  string
	options []string
	active  bool
}

func newColorMatch(d Deps) *colorMatch { return &colorMatch{d: d} }

func (c *colorMatch) ID() GameID { return ColorMatch }

func (c *colorMatch) Start() {
	c.active = true
	c.newRound()
}

func (c *colorMatch) newRound() {
	c.target = rng.Pick(c.d.RNG, Palette)
	c.options = pickOptions(c.d.RNG, c.target, min(optionCount, len(Palette)))
}

// pickOptions builds target plus distinct draws, then Fisher-Yates shuffles.
func pickOptions(r rng.RandomSource, target string, n int) []string {
	opts := []string{target}
	for tries := 0; len(opts) < n && tries < 64; tries++ {
		c := rng.Pick(r, Palette)
		if !contains(opts, c) {
			opts = append(opts, c)
		}
	}
	// a stuck source must not stall the round
	for _, c := range Palette {
		if len(opts) >= n {
			break
		}
		if !contains(opts, c) {
			opts = append(opts, c)
		}
	}
	for i := len(opts) - 1; i > 0; i-- {
		j := rng.Intn(r, i+1)
		opts[i], opts[j] = opts[j], opts[i]
	}
	return opts
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func (c *colorMatch) OnPlayerAction(in Input) Outcome {
	if !c.active || in.Choice < 0 || in.Choice >= len(c.options) {
		return Outcome{}
	}
	if c.options[in.Choice] != c.target {
		return Outcome{Failed: true}
	}
	pts := c.d.Tuning.ColorBasePoints + rng.Intn(c.d.RNG, c.d.Tuning.ColorBonusRange)
	c.newRound()
	return Outcome{Points: pts, Awarded: true}
}

func (c *colorMatch) End() { c.active = false }

func (c *colorMatch) Snapshot() Snapshot {
	phase := "playing"
	if !c.active {
		phase = "ended"
	}
	return Snapshot{
		Game:      ColorMatch,
		Phase:     phase,
		Prompt:    "Pick the matching color",
		Options:   append([]string(nil), c.options...),
		Target:    c.target,
		Highlight: -1,
	}
}
