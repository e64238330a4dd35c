package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// DeathSystem turns a dead actor into a corpse in place. The entity keeps
// its body and transform; it loses its intent and detection, gets much
// heavier and plays the death flop.
type DeathSystem struct {
	state  *resource.State
	deaths ecs.EventReader[component.DeathEvent]
}

func NewDeathSystem(state *resource.State) *DeathSystem {
	return &DeathSystem{state: state}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	for _, ev := range s.deaths.Read(&s.state.Events.Deaths) {
		e := ecs.Entity(ev.Entity)
		if !w.IsAlive(e) || ecs.Has(w, e, component.CorpseComponent.Kind()) {
			continue
		}
		if err := s.corpse(w, e); err != nil {
			s.state.Logger.Error("death: corpse", "entity", e, "err", err)
			continue
		}
		s.state.Sounds.Play(assets.SoundDeath)

		switch {
		case ecs.Has(w, e, component.EnemyTagComponent.Kind()):
			s.state.Playthrough.Kills++
			alarm := s.state.Alarm.Increase(s.state.Tuning.DeathAlarm)
			s.state.Logger.Debug("death: enemy", "entity", e, "alarm", alarm)
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			s.state.Playthrough.PlayerDead = true
			s.state.Logger.Info("death: player")
		}
	}
}

func (s *DeathSystem) corpse(w *ecs.World, e ecs.Entity) error {
	ecs.Remove(w, e, component.ActorIntentComponent.Kind())
	ecs.Remove(w, e, component.DetectionSensorComponent.Kind())

	if ai, ok := ecs.Get(w, e, component.EnemyAIComponent.Kind()); ok {
		ai.Target = 0
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		mass := body.Mass
		if mass <= 0 {
			mass = 1
		}
		body.Mass = mass * s.state.Tuning.CorpseMassScale
	}
	if err := ecs.Add(w, e, component.CorpseComponent.Kind(), &component.Corpse{}); err != nil {
		return err
	}
	if visual, ok := visualChild(w, e); ok {
		if err := ecs.Add(w, visual, component.DeathFlopComponent.Kind(), &component.DeathFlop{}); err != nil {
			return err
		}
	}
	return nil
}
