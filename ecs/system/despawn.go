package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/resource"
)

// DespawnFlushSystem is the single point in the frame where queued
// despawns are carried out.
type DespawnFlushSystem struct {
	state *resource.State
}

func NewDespawnFlushSystem(state *resource.State) *DespawnFlushSystem {
	return &DespawnFlushSystem{state: state}
}

func (s *DespawnFlushSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	if n := s.state.Despawn.Flush(w); n > 0 {
		s.state.Logger.Debug("despawn: flushed", "entities", n)
	}
}
