package progression

import (
	"maps"
	"sort"

	"github.com/xtding233/neuroboost/internal/minigame"
)

// Profile is the durable player state. Only the Controller mutates it.
type Profile struct {
	TotalScore     int             `json:"totalScore"`
	Level          int             `json:"level"`
	Gold           int             `json:"gold"`
	NeuralCrystals int             `json:"neuralCrystals"`
	BestScores     map[string]int  `json:"bestScores"`
	Achievements   map[string]bool `json:"achievements"`
	Collection     map[string]int  `json:"collection"`
	LastPlayTime   int64           `json:"lastPlayTime"` // unix ms, 0 if never
}

// StartingCrystals is the balance of a fresh profile.
const StartingCrystals = 100

// NewProfile returns the defaults of a fresh player.
func NewProfile() Profile {
	best := make(map[string]int, len(minigame.IDs))
	for _, id := range minigame.IDs {
		best[string(id)] = 0
	}
	return Profile{
		Level:          1,
		NeuralCrystals: StartingCrystals,
		BestScores:     best,
		Achievements:   map[string]bool{},
		Collection:     map[string]int{},
	}
}

// Clone returns a deep copy safe to hand to renderers.
func (p Profile) Clone() Profile {
	p.BestScores = maps.Clone(p.BestScores)
	p.Achievements = maps.Clone(p.Achievements)
	p.Collection = maps.Clone(p.Collection)
	return p
}

// AchievementIDs returns unlocked achievements, sorted.
func (p Profile) AchievementIDs() []string {
	out := make([]string, 0, len(p.Achievements))
	for id, ok := range p.Achievements {
		if ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Wallet methods used by the gacha machine.

func (p *Profile) Crystals() int { return p.NeuralCrystals }

func (p *Profile) SpendCrystals(n int) bool {
	if n < 0 || n > p.NeuralCrystals {
		return false
	}
	p.NeuralCrystals -= n
	return true
}

func (p *Profile) AddCrystals(n int) {
	p.NeuralCrystals = max(0, p.NeuralCrystals+n)
}

func (p *Profile) AddItem(id string) {
	if p.Collection == nil {
		p.Collection = map[string]int{}
	}
	p.Collection[id]++
}
