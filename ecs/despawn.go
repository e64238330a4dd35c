package ecs

// DespawnQueue collects entities to remove and destroys them at a single
// point in the frame, so systems running earlier in the same frame never
// look up an entity another system already removed.
type DespawnQueue struct {
	pending map[Entity]struct{}
	order   []Entity
}

// Mark schedules e (and its children) for removal at the next Flush.
func (q *DespawnQueue) Mark(e Entity) {
	if q == nil || !e.Valid() {
		return
	}
	if q.pending == nil {
		q.pending = make(map[Entity]struct{})
	}
	if _, ok := q.pending[e]; ok {
		return
	}
	q.pending[e] = struct{}{}
	q.order = append(q.order, e)
}

// Pending reports whether e is scheduled for removal.
func (q *DespawnQueue) Pending(e Entity) bool {
	if q == nil {
		return false
	}
	_, ok := q.pending[e]
	return ok
}

func (q *DespawnQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.order)
}

// Flush destroys every marked entity recursively and empties the queue.
func (q *DespawnQueue) Flush(w *World) int {
	if q == nil || w == nil {
		return 0
	}
	n := 0
	for _, e := range q.order {
		n += DestroyRecursive(w, e)
	}
	q.Clear()
	return n
}

// Clear forgets every pending removal without destroying anything.
func (q *DespawnQueue) Clear() {
	if q == nil {
		return
	}
	q.pending = nil
	q.order = q.order[:0]
}
