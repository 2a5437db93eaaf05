// Package ranking keeps the per-period leaderboards.
package ranking

import (
	"slices"
	"strings"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// Periods in display order.
var Periods = []Period{Daily, Weekly, Monthly}

// Capacity is the maximum length of every list.
const Capacity = 100

// ParsePeriod accepts a period name, case-insensitively.
func ParsePeriod(s string) (Period, bool) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Periods {
		if p == known {
			return p, true
		}
	}
	return "", false
}

type Entry struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Timestamp int64  `json:"timestamp"` // unix ms
}

// Row is an entry with its 1-based rank.
type Row struct {
	Rank int
	Entry
}

// Board holds one sorted, capped list per period. Every period receives
// the same inserts; no period rolls over on its own.
type Board struct {
	lists map[Period][]Entry
}

func NewBoard() *Board {
	b := &Board{lists: make(map[Period][]Entry, len(Periods))}
	for _, p := range Periods {
		b.lists[p] = nil
	}
	return b
}

// Insert appends e to one period, sorts descending by score and truncates.
// Ties keep insertion order. Unknown periods are ignored.
func (b *Board) Insert(p Period, e Entry) {
	list, ok := b.lists[p]
	if !ok {
		return
	}
	b.lists[p] = normalize(append(list, e))
}

// Record inserts e into every period.
func (b *Board) Record(e Entry) {
	for _, p := range Periods {
		b.Insert(p, e)
	}
}

// Set replaces a period's list (used when loading saved state).
func (b *Board) Set(p Period, entries []Entry) {
	if _, ok := b.lists[p]; !ok {
		return
	}
	b.lists[p] = normalize(append([]Entry(nil), entries...))
}

// List returns a copy of a period's full list.
func (b *Board) List(p Period) []Entry {
	return append([]Entry(nil), b.lists[p]...)
}

// Top returns up to n ranked rows.
func (b *Board) Top(p Period, n int) []Row {
	list := b.lists[p]
	if n > len(list) || n < 0 {
		n = len(list)
	}
	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		rows[i] = Row{Rank: i + 1, Entry: list[i]}
	}
	return rows
}

func normalize(list []Entry) []Entry {
	slices.SortStableFunc(list, func(a, b Entry) int { return b.Score - a.Score })
	if len(list) > Capacity {
		list = list[:Capacity]
	}
	return list
}
