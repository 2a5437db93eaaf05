// Package minigame holds the three round engines. An engine turns player
// input into raw points or a failure; the caller owns score and combo.
package minigame

import (
	"errors"
	"fmt"
	"time"

	"github.com/xtding233/neuroboost/internal/clock"
	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/rng"
)

type GameID string

const (
	ColorMatch     GameID = "color-match"
	SequenceMemory GameID = "sequence-memory"
	ReactionTime   GameID = "reaction-time"
)

// IDs lists every playable game.
var IDs = []GameID{ColorMatch, SequenceMemory, ReactionTime}

var ErrUnknownGame = errors.New("unknown game")

// ParseID validates a game name.
func ParseID(s string) (GameID, error) {
	for _, id := range IDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

// Round pacing.
const (
	PreRollDelay  = 1000 * time.Millisecond
	StepInterval  = 800 * time.Millisecond
	HighlightTime = 400 * time.Millisecond
	RetryDelay    = 1500 * time.Millisecond
	NextDelay     = 1000 * time.Millisecond
)

// Input is one player action. Choice indexes the option or button; engines
// that only take clicks ignore it.
type Input struct {
	Choice int
}

// Outcome is what one action produced. The zero value means "ignored".
type Outcome struct {
	Points  int
	Awarded bool
	Failed  bool

	Reaction   bool // a reaction sample was recorded
	ReactionMs int
}

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	Game      GameID
	Phase     string
	Prompt    string
	Options   []string // color-match: hex colors
	Target    string
	Buttons   int // sequence-memory
	Highlight int // lit button, -1 when none
	Length    int // sequence length
	Progress  int // inputs matched so far
	LastMs    int // last reaction time
	BestMs    int
	AverageMs float64
}

type Engine interface {
	ID() GameID
	Start()
	OnPlayerAction(Input) Outcome
	End()
	Snapshot() Snapshot
}

// Deps are shared by all engines.
type Deps struct {
	RNG      rng.RandomSource
	Clock    *clock.Scheduler
	Tuning   config.Tuning
	Reaction *ReactionStats
}

// New builds the engine for id.
func New(id GameID, d Deps) (Engine, error) {
	if d.RNG == nil {
		d.RNG = rng.Default()
	}
	if d.Clock == nil {
		d.Clock = clock.New(time.Now())
	}
	switch id {
	case ColorMatch:
		return newColorMatch(d), nil
	case SequenceMemory:
		return newSequence(d), nil
	case ReactionTime:
		if d.Reaction == nil {
			d.Reaction = &ReactionStats{}
		}
		return newReaction(d), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
}

// timers tracks scheduled tasks so End can cancel them together.
type timers struct {
	clock *clock.Scheduler
	tasks []*clock.Task
}

func (t *timers) after(d time.Duration, fn func()) *clock.Task {
	// drop tasks that already fired
	live := t.tasks[:0]
	for _, task := range t.tasks {
		if task.Active() {
			live = append(live, task)
		}
	}
	task := t.clock.After(d, fn)
	t.tasks = append(live, task)
	return task
}

func (t *timers) cancelAll() {
	for _, task := range t.tasks {
		task.Cancel()
	}
	t.tasks = nil
}
