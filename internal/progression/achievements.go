package progression

import "github.com/xtding233/neuroboost/internal/minigame"

// Achievement is a one-time unlock checked at the end of every session.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	unlocked    func(c achievementCtx) bool
}

type achievementCtx struct {
	game       minigame.GameID
	finalScore int
	combo      float64
	totalScore int
}

// Achievements in evaluation order. score_1000 and speed_demon compare a
// score capped at 100 and so never unlock with stock tuning.
var Achievements = []Achievement{
	{
		ID: "first_game", Title: "First Steps", Description: "Finish your first game", Icon: "🎮",
		unlocked: func(c achievementCtx) bool { return c.totalScore > 0 },
	},
	{
		ID: "score_1000", Title: "Brain Master", Description: "Reach 1000 points in one game", Icon: "🧠",
		unlocked: func(c achievementCtx) bool { return c.finalScore >= 1000 },
	},
	{
		ID: "combo_master", Title: "Combo Master", Description: "Reach a 3x combo", Icon: "🔥",
		unlocked: func(c achievementCtx) bool { return c.combo >= 3 },
	},
	{
		ID: "speed_demon", Title: "Speed Demon", Description: "Score 500 in reaction time", Icon: "⚡",
		unlocked: func(c achievementCtx) bool { return c.game == minigame.ReactionTime && c.finalScore >= 500 },
	},
}

// LookupAchievement finds a definition by id.
func LookupAchievement(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
