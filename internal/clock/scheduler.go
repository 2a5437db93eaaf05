// Package clock is a cooperative scheduler stepped by an external tick.
//
// Nothing runs on its own goroutine: callers advance virtual time with
// Advance and every task that comes due fires synchronously, in due-time
// order, on the caller's goroutine. Tasks due at the same instant fire in
// the order they were scheduled.
package clock

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	s         *Scheduler
	seq       uint64
	due       time.Time
	every     time.Duration
	fn        func()
	cancelled bool
}

// Cancel stops the task from firing again. Safe on nil and repeated calls.
func (t *Task) Cancel() {
	if t == nil || t.s == nil {
		return
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.s.remove(t)
}

// Active reports whether the task is still scheduled.
func (t *Task) Active() bool {
	if t == nil || t.s == nil {
		return false
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return !t.cancelled
}

// Scheduler holds pending tasks against a virtual clock.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*Task
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After schedules fn once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.schedule(d, 0, fn)
}

// Every schedules fn repeatedly with period d. d must be positive.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, every time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &Task{s: s, seq: s.seq, due: s.now.Add(d), every: every, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Advance moves the clock forward by d, firing every task that comes due.
// Tasks scheduled by callbacks fire in the same call when they fall inside
// the window. It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	fired := 0
	for {
		s.mu.Lock()
		t := s.nextDue(target)
		if t == nil {
			s.now = target
			s.mu.Unlock()
			return fired
		}
		s.now = t.due
		if t.every > 0 {
			s.seq++
			t.seq = s.seq
			t.due = t.due.Add(t.every)
		} else {
			t.cancelled = true
			s.remove(t)
		}
		fn := t.fn
		s.mu.Unlock()

		if fn != nil {
			fn()
		}
		fired++
	}
}

// AdvanceTo moves the clock to at, if at is in the future.
func (s *Scheduler) AdvanceTo(at time.Time) int {
	return s.Advance(at.Sub(s.Now()))
}

func (s *Scheduler) nextDue(target time.Time) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.due.After(target) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) remove(t *Task) {
	for i, x := range s.tasks {
		if x == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
