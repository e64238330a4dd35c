package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// HurtAlarmSystem raises the alarm whenever the player is hit.
type HurtAlarmSystem struct {
	state *resource.State
	hits  ecs.EventReader[component.HitEvent]
}

func NewHurtAlarmSystem(state *resource.State) *HurtAlarmSystem {
	return &HurtAlarmSystem{state: state}
}

func (s *HurtAlarmSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	for _, ev := range s.hits.Read(&s.state.Events.Hits) {
		if !ecs.Has(w, ecs.Entity(ev.Hurtbox), component.PlayerTagComponent.Kind()) {
			continue
		}
		alarm := s.state.Alarm.Increase(s.state.Tuning.HurtAlarm)
		s.state.Logger.Debug("alarm: player hurt", "alarm", alarm)
	}
}
