package minigame

import (
	"context"
	"time"

	"github.com/looplab/fsm"

	"github.com/xtding233/neuroboost/internal/clock"
)

// Reaction round states.
const (
	stateIdle    = "idle"
	stateWaiting = "waiting" // do not click
	stateReady   = "ready"   // click now
	statePenalty = "penalty" // clicked too early
	stateResult  = "result"
)

// Reaction round events.
const (
	evArm   = "arm"
	evGo    = "go"
	evEarly = "early"
	evHit   = "hit"
)

type reaction struct {
	d       Deps
	t       timers
	fsm     *fsm.FSM
	goTask  *clock.Task
	startAt time.Time
	lastMs  int
}

func newReaction(d Deps) *reaction {
	r := &reaction{d: d, t: timers{clock: d.Clock}}
	r.fsm = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: evArm, Src: []string{stateIdle, statePenalty, stateResult}, Dst: stateWaiting},
			{Name: evGo, Src: []string{stateWaiting}, Dst: stateReady},
			{Name: evEarly, Src: []string{stateWaiting}, Dst: statePenalty},
			{Name: evHit, Src: []string{stateReady}, Dst: stateResult},
		},
		fsm.Callbacks{
			"enter_" + stateWaiting: func(_ context.Context, _ *fsm.Event) { r.scheduleGo() },
			"enter_" + stateReady:   func(_ context.Context, _ *fsm.Event) { r.startAt = r.d.Clock.Now() },
		},
	)
	return r
}

func (r *reaction) ID() GameID { return ReactionTime }

func (r *reaction) fire(event string) bool {
	return r.fsm.Event(context.Background(), event) == nil
}

// delay is uniform in [min, max).
func (r *reaction) delay() time.Duration {
	lo, hi := r.d.Tuning.ReactionMinDelay, r.d.Tuning.ReactionMaxDelay
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.d.RNG.Float64()*float64(hi-lo))
}

func (r *reaction) scheduleGo() {
	r.goTask = r.t.after(r.delay(), func() { r.fire(evGo) })
}

func (r *reaction) Start() {
	r.t.cancelAll()
	r.fsm.SetState(stateIdle)
	r.fire(evArm)
}

func (r *reaction) OnPlayerAction(Input) Outcome {
	switch r.fsm.Current() {
	case stateWaiting:
		r.goTask.Cancel()
		r.fire(evEarly)
		r.t.after(RetryDelay, func() { r.fire(evArm) })
		return Outcome{Failed: true}
	case stateReady:
		ms := int(r.d.Clock.Now().Sub(r.startAt) / time.Millisecond)
		r.fire(evHit)
		r.lastMs = ms
		r.d.Reaction.Record(ms)
		r.t.after(RetryDelay, func() { r.fire(evArm) })
		pts := max(r.d.Tuning.ReactionBasePoints-ms, r.d.Tuning.ReactionMinPoints)
		return Outcome{Points: pts, Awarded: true, Reaction: true, ReactionMs: ms}
	default:
		// clicks during penalty, result or idle do nothing
		return Outcome{}
	}
}

func (r *reaction) End() {
	r.t.cancelAll()
	r.fsm.SetState(stateIdle)
}

func (r *reaction) Snapshot() Snapshot {
	var prompt string
	switch r.fsm.Current() {
	case stateWaiting:
		prompt = "Wait for green..."
	case stateReady:
		prompt = "CLICK!"
	case statePenalty:
		prompt = "Too early!"
	case stateResult:
		prompt = "Nice"
	default:
		prompt = "Ready?"
	}
	avg, _ := r.d.Reaction.Average()
	return Snapshot{
		Game:      ReactionTime,
		Phase:     r.fsm.Current(),
		Prompt:    prompt,
		Highlight: -1,
		LastMs:    r.lastMs,
		BestMs:    r.d.Reaction.Best,
		AverageMs: avg,
	}
}
