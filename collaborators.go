package echoai

import (
	"context"
	"sync"
)

// ──────────────────────────────────────────────
// Collaborator ports — the host-side adapters around the engine
// ──────────────────────────────────────────────

// SpeechCapture delivers utterance strings to the engine. Implementations
// own the microphone/recognition loop; the engine asks it to stop via an
// EventControlStop event.
type SpeechCapture interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventRenderer consumes ResponseEvents and performs spoken or visual
// output (speech synthesis, chat log, screen switch).
type EventRenderer interface {
	Render(ev *ResponseEvent) error
}

// MediaPlayer plays an opaque audio resource for story and ambient events.
type MediaPlayer interface {
	Play(ref string, volume float64, loop bool) error
}

// EventQueue is a FIFO buffer between the engine and a renderer that may
// still be busy with a previous turn. The engine's contract is to enqueue
// rather than block, so turn handling stays synchronous and short-lived.
type EventQueue struct {
	mu     sync.Mutex
	events []*ResponseEvent
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event. Nil events are ignored so callers can push the
// result of HandleUtterance unconditionally.
func (q *EventQueue) Push(ev *ResponseEvent) {
	if ev == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Next pops the oldest event, or nil when the queue is empty.
func (q *EventQueue) Next() *ResponseEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain delivers all queued events to r in order, stopping at the first
// render error and leaving the remainder queued.
func (q *EventQueue) Drain(r EventRenderer) error {
	for {
		q.mu.Lock()
		if len(q.events) == 0 {
			q.mu.Unlock()
			return nil
		}
		ev := q.events[0]
		q.mu.Unlock()

		if err := r.Render(ev); err != nil {
			return err
		}

		q.mu.Lock()
		if len(q.events) > 0 && q.events[0] == ev {
			q.events = q.events[1:]
		}
		q.mu.Unlock()
	}
}
