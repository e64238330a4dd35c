package resource

import "github.com/milk9111/turncoat/assets"

// SoundQueue is a FIFO of sounds requested this frame; the audio system
// drains it once per frame.
type SoundQueue struct {
	items []assets.SoundKey
}

func (q *SoundQueue) Play(key assets.SoundKey) {
	if q == nil || key == assets.SoundNone {
		return
	}
	q.items = append(q.items, key)
}

// Drain returns all queued sounds and clears the queue.
func (q *SoundQueue) Drain() []assets.SoundKey {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Pending returns the queued sounds without draining them.
func (q *SoundQueue) Pending() []assets.SoundKey {
	if q == nil {
		return nil
	}
	return append([]assets.SoundKey(nil), q.items...)
}

func (q *SoundQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
