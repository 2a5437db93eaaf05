package minigame

import "github.com/xtding233/neuroboost/internal/rng"

type seqPhase string

const (
	seqIdle     seqPhase = "idle"
	seqPlayback seqPhase = "playback"
	seqInput    seqPhase = "input"
	seqWaiting  seqPhase = "waiting"
)

// sequence is the Simon-style memory game. The sequence grows by one each
// round, including the round after a mistake.
type sequence struct {
	d         Deps
	t         timers
	seq       []int
	pos       int
	phase     seqPhase
	highlight int
}

func newSequence(d Deps) *sequence {
	return &sequence{d: d, t: timers{clock: d.Clock}, phase: seqIdle, highlight: -1}
}

func (s *sequence) ID() GameID { return SequenceMemory }

func (s *sequence) buttons() int {
	if s.d.Tuning.SequenceButtons <= 0 {
		return 4
	}
	return s.d.Tuning.SequenceButtons
}

func (s *sequence) Start() {
	s.t.cancelAll()
	s.seq = s.seq[:0]
	s.startRound()
}

func (s *sequence) startRound() {
	s.seq = append(s.seq, rng.Intn(s.d.RNG, s.buttons()))
	s.pos = 0
	s.phase = seqPlayback
	s.highlight = -1
	s.t.after(PreRollDelay, func() { s.playStep(0) })
}

func (s *sequence) playStep(i int) {
	s.highlight = s.seq[i]
	s.t.after(HighlightTime, func() { s.highlight = -1 })
	if i+1 < len(s.seq) {
		s.t.after(StepInterval, func() { s.playStep(i + 1) })
		return
	}
	// input opens one full step after the last highlight
	s.t.after(StepInterval, func() { s.phase = seqInput })
}

func (s *sequence) OnPlayerAction(in Input) Outcome {
	if s.phase != seqInput || in.Choice < 0 || in.Choice >= s.buttons() {
		return Outcome{}
	}
	if s.seq[s.pos] != in.Choice {
		s.phase = seqWaiting
		s.t.after(RetryDelay, s.startRound)
		return Outcome{Failed: true}
	}
	s.pos++
	if s.pos < len(s.seq) {
		return Outcome{}
	}
	s.phase = seqWaiting
	s.t.after(NextDelay, s.startRound)
	return Outcome{Points: len(s.seq) * s.d.Tuning.SequenceStepPoints, Awarded: true}
}

func (s *sequence) End() {
	s.t.cancelAll()
	s.phase = seqIdle
	s.highlight = -1
}

func (s *sequence) Snapshot() Snapshot {
	prompt := "Watch the sequence"
	switch s.phase {
	case seqInput:
		prompt = "Repeat the sequence"
	case seqWaiting:
		prompt = "Get ready"
	}
	return Snapshot{
		Game:      SequenceMemory,
		Phase:     string(s.phase),
		Prompt:    prompt,
		Buttons:   s.buttons(),
		Highlight: s.highlight,
		Length:    len(s.seq),
		Progress:  s.pos,
	}
}
