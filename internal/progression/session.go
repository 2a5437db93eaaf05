package progression

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/neuroboost/internal/clock"
	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/minigame"
)

// TimeLowThreshold marks the last seconds of a session.
const TimeLowThreshold = 10

// session is one play-through. It is never persisted directly.
type session struct {
	id            string
	game          minigame.GameID
	score         float64
	combo         float64
	timeRemaining int
	startedAt     time.Time
	ended         bool
	tuning        config.Tuning

	engine minigame.Engine
	timer  *clock.Task
}

func newSession(game minigame.GameID, t config.Tuning, now time.Time) *session {
	return &session{
		id:            uuid.NewString(),
		game:          game,
		combo:         1.0,
		timeRemaining: int(t.SessionDuration / time.Second),
		startedAt:     now,
		tuning:        t,
	}
}

// stop cancels the countdown and the engine's pending rounds.
func (s *session) stop() {
	s.ended = true
	s.timer.Cancel()
	if s.engine != nil {
		s.engine.End()
	}
}

// SessionView is a read-only snapshot of the active session.
type SessionView struct {
	ID            string
	Game          minigame.GameID
	Score         int
	Combo         float64
	TimeRemaining int
	TimeLow       bool
	StartedAt     time.Time
	Round         minigame.Snapshot
}

// ComboDisplay truncates the combo to one decimal for display.
func (v SessionView) ComboDisplay() float64 {
	return math.Floor(v.Combo*10) / 10
}

func (s *session) view() SessionView {
	v := SessionView{
		ID:            s.id,
		Game:          s.game,
		Score:         int(math.Floor(s.score)),
		Combo:         s.combo,
		TimeRemaining: s.timeRemaining,
		TimeLow:       s.timeRemaining <= TimeLowThreshold,
		StartedAt:     s.startedAt,
	}
	if s.engine != nil {
		v.Round = s.engine.Snapshot()
	}
	return v
}
