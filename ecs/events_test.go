package ecs

import "testing"

func TestEventQueueLifetime(t *testing.T) {
	var q EventQueue[int]
	q.Send(1)
	if q.Len() != 1 {
		t.Fatalf("expected 1 buffered event, got %d", q.Len())
	}

	q.Update()
	if got := q.Peek(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("event should survive the first update, got %v", got)
	}
	q.Send(2)

	q.Update()
	if got := q.Peek(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected only the second event after two updates, got %v", got)
	}

	q.Update()
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestEventReaderFanOut(t *testing.T) {
	var q EventQueue[string]
	var damage, alarm EventReader[string]

	q.Send("hit-a")
	q.Send("hit-b")

	if got := damage.Read(&q); len(got) != 2 {
		t.Fatalf("first reader should see both events, got %v", got)
	}
	if got := alarm.Read(&q); len(got) != 2 {
		t.Fatalf("second reader should see both events independently, got %v", got)
	}
	if got := damage.Read(&q); len(got) != 0 {
		t.Fatalf("a reader must not see an event twice, got %v", got)
	}

	// Events stay readable across one swap, so a listener running before
	// the sender in frame order still gets them next frame.
	var late EventReader[string]
	q.Update()
	q.Send("hit-c")
	if got := late.Read(&q); len(got) != 3 {
		t.Fatalf("late reader should see all buffered events, got %v", got)
	}
	if got := damage.Read(&q); len(got) != 1 || got[0] != "hit-c" {
		t.Fatalf("expected only the new event, got %v", got)
	}
}

func TestEventQueueClear(t *testing.T) {
	var q EventQueue[int]
	var r EventReader[int]
	q.Send(1)
	q.Send(2)
	q.Clear()

	if q.Len() != 0 {
		t.Fatalf("expected empty queue after clear, got %d", q.Len())
	}
	if got := r.Read(&q); len(got) != 0 {
		t.Fatalf("cleared events must not be read, got %v", got)
	}
	q.Send(3)
	if got := r.Read(&q); len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected the event sent after clear, got %v", got)
	}
}
