package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// HitResolutionSystem applies every HitEvent: hit sound, damage with the
// death check, knockback and the hurt flinch.
type HitResolutionSystem struct {
	state *resource.State
	hits  ecs.EventReader[component.HitEvent]
}

func NewHitResolutionSystem(state *resource.State) *HitResolutionSystem {
	return &HitResolutionSystem{state: state}
}

func (s *HitResolutionSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	for _, ev := range s.hits.Read(&s.state.Events.Hits) {
		hitbox := ecs.Entity(ev.Hitbox)
		hurtbox := ecs.Entity(ev.Hurtbox)

		hb, ok := ecs.Get(w, hitbox, component.HitboxComponent.Kind())
		if !ok {
			continue
		}
		if !hb.Success {
			s.state.Sounds.Play(hb.HitSound)
			hb.Success = true
		}

		if health, ok := ecs.Get(w, hurtbox, component.HealthComponent.Kind()); ok {
			// Checked before subtracting so one lethal hit raises exactly
			// one death however large the damage is.
			if health.Current > 0 && health.Current <= hb.Damage {
				s.state.Events.Deaths.Send(component.DeathEvent{Entity: ev.Hurtbox})
			}
			health.Current -= hb.Damage
		}

		if vel, ok := ecs.Get(w, hurtbox, component.VelocityComponent.Kind()); ok {
			kb := hb.Knockback.Scale(s.state.Tuning.KnockbackScale)
			vel.X = kb.X
			vel.Y = kb.Y
		}

		if visual, ok := visualChild(w, hurtbox); ok {
			if flinch, ok := ecs.Get(w, visual, component.FlinchComponent.Kind()); ok {
				if flinch.Duration <= 0 {
					flinch.Duration = s.state.Tuning.FlinchDuration
				}
				flinch.Timer = flinch.Duration
				flinch.Dir = hb.Knockback.Normalize()
			}
		}

		s.state.Logger.Debug("combat: hit", "hitbox", hitbox, "hurtbox", hurtbox, "damage", hb.Damage)
	}
}

// HitboxCleanupSystem retires every hitbox whose physics step has been
// collected: the miss sound plays when it never landed, then it is queued
// for despawn.
type HitboxCleanupSystem struct {
	state *resource.State
}

func NewHitboxCleanupSystem(state *resource.State) *HitboxCleanupSystem {
	return &HitboxCleanupSystem{state: state}
}

func (s *HitboxCleanupSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.HitboxComponent.Kind(), func(e ecs.Entity, hb *component.Hitbox) {
		if !hb.Collected || s.state.Despawn.Pending(e) {
			return
		}
		if !hb.Success {
			s.state.Sounds.Play(hb.MissSound)
		}
		s.state.Despawn.Mark(e)
	})
}
