// Package mission tracks long-running player goals evaluated after each session.
package mission

import "fmt"

type Type string

const (
	TypeScore          Type = "score"
	TypeGamesPlayed    Type = "games_played"
	TypeLegendaryItems Type = "legendary_items"
)

type Reward struct {
	Gold     int `json:"gold"`
	Crystals int `json:"crystals"`
}

// Mission is one goal. Once Completed is set it is never evaluated again.
type Mission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      Type   `json:"type"`
	Target    int    `json:"target"`
	Current   int    `json:"current"`
	Reward    Reward `json:"reward"`
	Completed bool   `json:"completed"`
}

// Percent is progress toward Target, 0..100.
func (m Mission) Percent() int {
	if m.Target <= 0 || m.Completed {
		return 100
	}
	return m.Current * 100 / m.Target
}

func (m Mission) String() string {
	return fmt.Sprintf("%s (%d/%d)", m.Title, m.Current, m.Target)
}

// Defaults returns the missions every new profile starts with.
func Defaults() []Mission {
	return []Mission{
		{ID: "first_100_score", Title: "Score 100 in one game", Type: TypeScore, Target: 100, Reward: Reward{Gold: 500, Crystals: 100}},
		{ID: "total_games_10", Title: "Play 10 games", Type: TypeGamesPlayed, Target: 10, Reward: Reward{Gold: 200, Crystals: 50}},
		{ID: "collect_legendary", Title: "Collect a legendary item", Type: TypeLegendaryItems, Target: 1, Reward: Reward{Gold: 1000, Crystals: 200}},
	}
}
