// Package notify carries the events the core emits to whatever renders it.
package notify

import "sync"

type Kind string

const (
	KindReward               Kind = "reward"
	KindLevelUp              Kind = "level-up"
	KindAchievement          Kind = "achievement"
	KindMissionComplete      Kind = "mission-complete"
	KindGachaResult          Kind = "gacha-result"
	KindInsufficientCurrency Kind = "insufficient-currency"
	KindNewRecord            Kind = "new-record"
	KindSpecialEffect        Kind = "special-effect"
	KindLegendaryFound       Kind = "legendary-found"
	KindMultiRare            Kind = "multi-rare"
	KindCombo                Kind = "combo"
)

// Notification is one popup-worthy event. Payload is free-form and JSON friendly.
type Notification struct {
	Kind        Kind           `json:"kind"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// Sink receives notifications. Emit must not block on display.
type Sink interface {
	Emit(Notification)
}

// Func adapts a function to a Sink.
type Func func(Notification)

func (f Func) Emit(n Notification) { f(n) }

// Discard drops everything.
var Discard Sink = Func(func(Notification) {})

// Queue buffers notifications until the renderer drains them.
type Queue struct {
	mu    sync.Mutex
	items []Notification
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Emit(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns and clears the buffered notifications in emit order.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Buffer collects notifications and releases them to a sink in one go.
// Used to hold popups back until the state they describe is persisted.
type Buffer struct {
	items []Notification
}

func (b *Buffer) Emit(n Notification) { b.items = append(b.items, n) }

// Flush forwards everything buffered to sink and empties the buffer.
func (b *Buffer) Flush(sink Sink) {
	if sink == nil {
		sink = Discard
	}
	for _, n := range b.items {
		sink.Emit(n)
	}
	b.items = nil
}

// Kinds lists the kinds buffered so far, in order.
func (b *Buffer) Kinds() []Kind {
	out := make([]Kind, len(b.items))
	for i, n := range b.items {
		out[i] = n.Kind
	}
	return out
}
