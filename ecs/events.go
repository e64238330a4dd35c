package ecs

type eventInstance[T any] struct {
	id    uint64
	event T
}

// EventQueue is a double-buffered event channel. Events sent during a frame
// stay readable for the rest of that frame and the whole next frame; the
// second Update after a send discards them. There is no bound and nothing
// is ever dropped early.
type EventQueue[T any] struct {
	older []eventInstance[T]
	newer []eventInstance[T]
	next  uint64
}

// Send appends an event to the current frame's buffer.
func (q *EventQueue[T]) Send(ev T) {
	if q == nil {
		return
	}
	q.newer = append(q.newer, eventInstance[T]{id: q.next, event: ev})
	q.next++
}

// Update swaps the buffers. Call once per frame at a fixed pipeline point.
func (q *EventQueue[T]) Update() {
	if q == nil {
		return
	}
	q.older, q.newer = q.newer, q.older[:0]
}

// Clear drops every buffered event. Reader cursors stay valid because ids
// keep increasing.
func (q *EventQueue[T]) Clear() {
	if q == nil {
		return
	}
	q.older = q.older[:0]
	q.newer = q.newer[:0]
}

// Len reports how many events are still buffered.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.older) + len(q.newer)
}

// Peek returns every buffered event without affecting any reader.
func (q *EventQueue[T]) Peek() []T {
	if q == nil {
		return nil
	}
	out := make([]T, 0, q.Len())
	for _, inst := range q.older {
		out = append(out, inst.event)
	}
	for _, inst := range q.newer {
		out = append(out, inst.event)
	}
	return out
}

// EventReader is a per-listener cursor. Several readers over one queue each
// see every event once, which is how one event fans out to unrelated
// listeners.
type EventReader[T any] struct {
	next uint64
}

// Read returns the events this reader has not seen yet and advances it.
func (r *EventReader[T]) Read(q *EventQueue[T]) []T {
	if r == nil || q == nil {
		return nil
	}
	var out []T
	for _, inst := range q.older {
		if inst.id >= r.next {
			out = append(out, inst.event)
		}
	}
	for _, inst := range q.newer {
		if inst.id >= r.next {
			out = append(out, inst.event)
		}
	}
	r.next = q.next
	return out
}
