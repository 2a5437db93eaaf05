package mission

// Tracker owns the mission list of one profile.
type Tracker struct {
	missions []Mission
}

func NewTracker(ms []Mission) *Tracker {
	return &Tracker{missions: append([]Mission(nil), ms...)}
}

// Missions returns a snapshot.
func (t *Tracker) Missions() []Mission {
	return append([]Mission(nil), t.missions...)
}

// UpdateProgress advances every open mission with one finished session and
// returns the missions that completed during this call. legendaryOwned is
// the count of distinct legendary items currently in the collection.
func (t *Tracker) UpdateProgress(gameID string, finalScore, legendaryOwned int) []Mission {
	var done []Mission
	for i := range t.missions {
		m := &t.missions[i]
		if m.Completed {
			continue
		}
		switch m.Type {
		case TypeScore:
			if finalScore >= m.Target {
				m.Current = m.Target
			}
		case TypeGamesPlayed:
			m.Current = min(m.Current+1, m.Target)
		case TypeLegendaryItems:
			m.Current = min(legendaryOwned, m.Target)
		default:
			continue
		}
		if m.Current >= m.Target {
			m.Completed = true
			done = append(done, *m)
		}
	}
	return done
}

// CompletionPercent is floor(completed / total * 100).
func (t *Tracker) CompletionPercent() int {
	if len(t.missions) == 0 {
		return 0
	}
	n := 0
	for _, m := range t.missions {
		if m.Completed {
			n++
		}
	}
	return n * 100 / len(t.missions)
}

// Merge lays saved progress over the current definitions. Saved entries
// for unknown ids are dropped, and progress is clamped to the target.
func Merge(defs, saved []Mission) []Mission {
	byID := make(map[string]Mission, len(saved))
	for _, s := range saved {
		byID[s.ID] = s
	}
	out := make([]Mission, 0, len(defs))
	for _, d := range defs {
		if s, ok := byID[d.ID]; ok {
			d.Current = max(0, min(s.Current, d.Target))
			d.Completed = s.Completed
		}
		out = append(out, d)
	}
	return out
}
