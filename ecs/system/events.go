package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/resource"
)

// EventUpdateSystem swaps every event queue's buffers. It runs last, so an
// event stays readable for the rest of the frame it was sent in and the
// whole next frame.
type EventUpdateSystem struct {
	state *resource.State
}

func NewEventUpdateSystem(state *resource.State) *EventUpdateSystem {
	return &EventUpdateSystem{state: state}
}

func (s *EventUpdateSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil {
		return
	}
	s.state.Events.Update()
	s.state.Time.Advance()
	s.state.Playthrough.Frames++
}
