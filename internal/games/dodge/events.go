package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// EventQueue buffers outcomes raised during a tick.
// Producers push while systems run; the game drains it once per tick, in FIFO order.
type EventQueue struct {
	pending []core.Event
}

// Push appends an event.
func (q *EventQueue) Push(e core.Event) {
	q.pending = append(q.pending, e)
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []core.Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]core.Event, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}
