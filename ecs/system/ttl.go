package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// LifetimeSystem counts lifetimes down and queues expired entities for
// despawn.
type LifetimeSystem struct {
	state *resource.State
}

func NewLifetimeSystem(state *resource.State) *LifetimeSystem {
	return &LifetimeSystem{state: state}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, ttl *component.Lifetime) {
		ttl.Remaining -= s.state.Time.Delta
		if ttl.Remaining <= 0 {
			s.state.Despawn.Mark(e)
		}
	})
}
