package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// CollisionIntakeSystem turns the raw collision starts recorded during the
// last physics step into typed domain events. Every pairing is raised on
// its own; a hitbox touching two hurtboxes yields two HitEvents.
type CollisionIntakeSystem struct {
	state *resource.State
}

func NewCollisionIntakeSystem(state *resource.State) *CollisionIntakeSystem {
	return &CollisionIntakeSystem{state: state}
}

func (s *CollisionIntakeSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	events := &s.state.Events

	for _, c := range events.DrainCollisions() {
		a, b := ecs.Entity(c.A), ecs.Entity(c.B)
		if !w.IsAlive(a) || !w.IsAlive(b) {
			continue
		}

		switch c.Kind {
		case component.CollisionHitbox:
			if !ecs.Has(w, a, component.HitboxComponent.Kind()) {
				continue
			}
			events.Hits.Send(component.HitEvent{Hitbox: c.A, Hurtbox: c.B})
		case component.CollisionDetection:
			if !ecs.Has(w, a, component.EnemyAIComponent.Kind()) {
				continue
			}
			events.Alerts.Send(component.AlertEvent{Enemy: c.A, Target: c.B})
		case component.CollisionPlate:
			events.Plates.Send(component.PlatePressedEvent{Plate: c.A, Actor: c.B})
		case component.CollisionExit:
			events.Exits.Send(component.ExitReachedEvent{Exit: c.A, Actor: c.B})
		case component.CollisionVictory:
			events.Victories.Send(component.VictoryEvent{Zone: c.A, Actor: c.B})
		case component.CollisionDefection:
			events.Defects.Send(component.DefectionEvent{Switch: c.A, Actor: c.B})
		}
	}

	// Every hitbox that went through a physics step has now had its
	// collisions turned into events; the combat pass may retire it.
	ecs.ForEach(w, component.HitboxComponent.Kind(), func(_ ecs.Entity, hb *component.Hitbox) {
		if hb.Stepped {
			hb.Collected = true
		}
	})
}
