package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// AnimationSystem advances the cosmetic timers on visual children.
type AnimationSystem struct {
	state *resource.State
}

func NewAnimationSystem(state *resource.State) *AnimationSystem {
	return &AnimationSystem{state: state}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	dt := s.state.Time.Delta

	ecs.ForEach(w, component.FlinchComponent.Kind(), func(_ ecs.Entity, f *component.Flinch) {
		f.Timer = max(f.Timer-dt, 0)
	})
	ecs.ForEach(w, component.AttackLungeComponent.Kind(), func(_ ecs.Entity, l *component.AttackLunge) {
		l.Timer = max(l.Timer-dt, 0)
	})
	ecs.ForEach(w, component.DeathFlopComponent.Kind(), func(_ ecs.Entity, d *component.DeathFlop) {
		d.Elapsed += dt
	})
}
