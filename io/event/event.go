// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Status reports whether a dispatched event was consumed by a
// widget or is still available to enclosing widgets.
type Status uint8

const (
	// Ignored means the event was not handled and propagation
	// may continue.
	Ignored Status = iota
	// Captured means the event was consumed and propagation
	// must stop.
	Captured
)

// Merge combines two statuses, preferring Captured.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("invalid Status")
	}
}

// Queue collects the application messages produced by widgets
// while an event is dispatched through the tree. Messages come
// out in the order they were pushed.
type Queue struct {
	messages []any
}

// Push appends a message to the queue.
func (q *Queue) Push(msg any) {
	q.messages = append(q.messages, msg)
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	return len(q.messages)
}

// Drain returns the queued messages and empties the queue.
func (q *Queue) Drain() []any {
	msgs := q.messages
	q.messages = nil
	return msgs
}
