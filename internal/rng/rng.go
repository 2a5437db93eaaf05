// Package rng provides the uniform random draws shared by the mini-games,
// the gacha machine and the reward rolls.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Float64()
	}

	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

// Default returns the crypto-backed source used outside of tests.
func Default() RandomSource { return cryptoRNG{} }

// Replicable RNG (tests, simulations, NEUROBOOST_SEED)
type seededRNG struct{ r *rand.Rand }

func NewSeeded(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// Scripted replays a fixed list of draws, cycling when exhausted.
// Values are clamped into [0, 1).
type Scripted struct {
	values []float64
	next   int
}

func NewScripted(values ...float64) *Scripted {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Scripted{values: values}
}

func (s *Scripted) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 1 - 1e-12
	}
	return v
}

// Intn returns a uniform int in [0, n). n <= 0 yields 0.
func Intn(r RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	if r == nil {
		r = Default()
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a uniform int in [lo, hi). If hi <= lo it returns lo.
func Between(r RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + Intn(r, hi-lo)
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r RandomSource, items []T) T {
	return items[Intn(r, len(items))]
}
