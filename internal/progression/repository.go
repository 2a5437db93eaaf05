package progression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xtding233/neuroboost/internal/minigame"
	"github.com/xtding233/neuroboost/internal/mission"
	"github.com/xtding233/neuroboost/internal/ranking"
	"github.com/xtding233/neuroboost/internal/store"
)

// Store keys.
const (
	keyTotalScore        = "totalScore"
	keyLevel             = "level"
	keyGold              = "gold"
	keyNeuralCrystals    = "neuralCrystals"
	keyCollection        = "collection"
	keyBestScores        = "bestScores"
	keyAchievements      = "achievements"
	keyDailyRanking      = "dailyRanking"
	keyWeeklyRanking     = "weeklyRanking"
	keyMonthlyRanking    = "monthlyRanking"
	keyChallengeProgress = "dailyChallengeProgress"
	keyLastPlayDate      = "lastPlayDate"
	keyLastRewardDate    = "lastRewardDate"
	keyLastPlayTime      = "lastPlayTime"
	keyMissions          = "missions"
	keyBestReaction      = "bestReactionTime"
	keyReactionTimes     = "reactionTimes"
)

var rankingKeys = map[ranking.Period]string{
	ranking.Daily:   keyDailyRanking,
	ranking.Weekly:  keyWeeklyRanking,
	ranking.Monthly: keyMonthlyRanking,
}

// Daily holds the calendar-day counters. Dates are YYYY-MM-DD.
type Daily struct {
	ChallengeProgress int
	LastPlayDate      string
	LastRewardDate    string
}

// State is everything persisted for one profile.
type State struct {
	Profile  Profile
	Missions []mission.Mission
	Rankings map[ranking.Period][]ranking.Entry
	Daily    Daily
	Reaction minigame.ReactionStats
}

// DefaultState is a brand-new player.
func DefaultState() State {
	return State{
		Profile:  NewProfile(),
		Missions: mission.Defaults(),
		Rankings: map[ranking.Period][]ranking.Entry{},
	}
}

// Repository maps State onto flat store keys, one JSON value per key.
type Repository struct {
	kv  store.KV
	log *slog.Logger
}

func NewRepository(kv store.KV, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{kv: kv, log: log}
}

// Load reads every key. Missing keys take their default; unreadable or
// corrupt keys take their default and log a warning. Load never fails.
func (r *Repository) Load(ctx context.Context) State {
	st := DefaultState()
	p := &st.Profile

	r.read(ctx, keyTotalScore, &p.TotalScore)
	r.read(ctx, keyLevel, &p.Level)
	r.read(ctx, keyGold, &p.Gold)
	r.read(ctx, keyNeuralCrystals, &p.NeuralCrystals)
	r.read(ctx, keyLastPlayTime, &p.LastPlayTime)

	var best map[string]int
	if r.read(ctx, keyBestScores, &best) {
		for k, v := range best {
			p.BestScores[k] = max(v, 0)
		}
	}
	var coll map[string]int
	if r.read(ctx, keyCollection, &coll) {
		for k, v := range coll {
			if v > 0 {
				p.Collection[k] = v
			}
		}
	}
	var ach []string
	if r.read(ctx, keyAchievements, &ach) {
		for _, id := range ach {
			p.Achievements[id] = true
		}
	}

	// clamp anything a hand-edited store could break
	p.TotalScore = max(p.TotalScore, 0)
	p.Gold = max(p.Gold, 0)
	p.NeuralCrystals = max(p.NeuralCrystals, 0)
	p.Level = max(p.Level, 1)

	var saved []mission.Mission
	r.read(ctx, keyMissions, &saved)
	st.Missions = mission.Merge(mission.Defaults(), saved)

	for period, key := range rankingKeys {
		var entries []ranking.Entry
		if r.read(ctx, key, &entries) {
			st.Rankings[period] = entries
		}
	}

	r.read(ctx, keyChallengeProgress, &st.Daily.ChallengeProgress)
	r.read(ctx, keyLastPlayDate, &st.Daily.LastPlayDate)
	r.read(ctx, keyLastRewardDate, &st.Daily.LastRewardDate)

	var bestMs int
	if r.read(ctx, keyBestReaction, &bestMs) && bestMs > 0 {
		st.Reaction.Best, st.Reaction.HasBest = bestMs, true
	}
	r.read(ctx, keyReactionTimes, &st.Reaction.Recent)
	if n := len(st.Reaction.Recent); n > minigame.RecentWindow {
		st.Reaction.Recent = st.Reaction.Recent[n-minigame.RecentWindow:]
	}
	return st
}

// read decodes key into dst and reports whether it did.
func (r *Repository) read(ctx context.Context, key string, dst any) bool {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return false
	}
	if err != nil {
		r.log.Warn("profile key unreadable, using default", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.log.Warn("profile key corrupt, using default", "key", key, "err", err)
		return false
	}
	return true
}

// Save writes the full state in one batch.
func (r *Repository) Save(ctx context.Context, st State) error {
	p := st.Profile
	values := map[string]any{
		keyTotalScore:        p.TotalScore,
		keyLevel:             p.Level,
		keyGold:              p.Gold,
		keyNeuralCrystals:    p.NeuralCrystals,
		keyCollection:        p.Collection,
		keyBestScores:        p.BestScores,
		keyAchievements:      p.AchievementIDs(),
		keyLastPlayTime:      p.LastPlayTime,
		keyMissions:          st.Missions,
		keyChallengeProgress: st.Daily.ChallengeProgress,
		keyLastPlayDate:      st.Daily.LastPlayDate,
		keyLastRewardDate:    st.Daily.LastRewardDate,
	}
	for period, key := range rankingKeys {
		entries := st.Rankings[period]
		if entries == nil {
			entries = []ranking.Entry{}
		}
		values[key] = entries
	}
	enc, err := encode(values)
	if err != nil {
		return err
	}
	if err := r.kv.PutMany(ctx, enc); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// SaveReaction writes only the reaction-time stats.
func (r *Repository) SaveReaction(ctx context.Context, s minigame.ReactionStats) error {
	values := map[string]any{keyReactionTimes: s.Recent}
	if s.HasBest {
		values[keyBestReaction] = s.Best
	}
	if s.Recent == nil {
		values[keyReactionTimes] = []int{}
	}
	enc, err := encode(values)
	if err != nil {
		return err
	}
	if err := r.kv.PutMany(ctx, enc); err != nil {
		return fmt.Errorf("save reaction stats: %w", err)
	}
	return nil
}

// Clear wipes every stored key.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

func encode(values map[string]any) (map[string][]byte, error) {
	out := make(map[string][]byte, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out[k] = b
	}
	return out, nil
}
