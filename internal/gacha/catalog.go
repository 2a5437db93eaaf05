package gacha

// Rarity tiers, lowest first.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Rarities lists tiers from best to worst.
var Rarities = []Rarity{Legendary, Epic, Rare, Common}

// AtLeastRare reports whether r is rare, epic or legendary.
func (r Rarity) AtLeastRare() bool { return r != Common }

// Item is one immutable catalog entry.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Rarity       Rarity `json:"rarity"`
	CrystalValue int    `json:"crystalValue"`
}

var catalog = []Item{
	{ID: "quantum_brain", Name: "Quantum Brain", Icon: "🧠", Rarity: Legendary, CrystalValue: 500},
	{ID: "time_crystal", Name: "Time Crystal", Icon: "💎", Rarity: Legendary, CrystalValue: 400},
	{ID: "neural_crown", Name: "Neural Crown", Icon: "👑", Rarity: Legendary, CrystalValue: 600},

	{ID: "synapse_booster", Name: "Synapse Booster", Icon: "⚡", Rarity: Epic, CrystalValue: 200},
	{ID: "memory_chip", Name: "Memory Chip", Icon: "💾", Rarity: Epic, CrystalValue: 180},
	{ID: "focus_lens", Name: "Focus Lens", Icon: "🔍", Rarity: Epic, CrystalValue: 220},

	{ID: "brain_juice", Name: "Brain Juice", Icon: "🧃", Rarity: Rare, CrystalValue: 80},
	{ID: "neural_patch", Name: "Neural Patch", Icon: "🩹", Rarity: Rare, CrystalValue: 70},
	{ID: "mind_gem", Name: "Mind Gem", Icon: "💠", Rarity: Rare, CrystalValue: 90},

	{ID: "brain_food", Name: "Brain Food", Icon: "🍎", Rarity: Common, CrystalValue: 20},
	{ID: "energy_pill", Name: "Energy Pill", Icon: "💊", Rarity: Common, CrystalValue: 15},
	{ID: "focus_candy", Name: "Focus Candy", Icon: "🍬", Rarity: Common, CrystalValue: 25},
}

// Catalog returns a copy of all items in display order.
func Catalog() []Item {
	return append([]Item(nil), catalog...)
}

// Bucket returns the items of one rarity, in catalog order.
func Bucket(r Rarity) []Item {
	var out []Item
	for _, it := range catalog {
		if it.Rarity == r {
			out = append(out, it)
		}
	}
	return out
}

// Lookup finds an item by id.
func Lookup(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// LegendaryOwned counts distinct legendary ids with a positive count.
func LegendaryOwned(collection map[string]int) int {
	n := 0
	for _, it := range catalog {
		if it.Rarity == Legendary && collection[it.ID] > 0 {
			n++
		}
	}
	return n
}

// CollectionStats summarizes an owned collection.
type CollectionStats struct {
	Distinct   int
	Total      int
	BrainPower int // sum of crystal value times count
}

func Summarize(collection map[string]int) CollectionStats {
	var s CollectionStats
	for _, it := range catalog {
		n := collection[it.ID]
		if n <= 0 {
			continue
		}
		s.Distinct++
		s.Total += n
		s.BrainPower += it.CrystalValue * n
	}
	return s
}
