package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// DifficultySystem re-derives every enemy's stats from the alarm level each
// frame. There is no smoothing: a change in alarm resizes detection sensors
// on the same frame.
type DifficultySystem struct {
	state *resource.State
}

func NewDifficultySystem(state *resource.State) *DifficultySystem {
	return &DifficultySystem{state: state}
}

func (s *DifficultySystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	alarm := s.state.Alarm.Value()

	ecs.ForEach(w, component.DifficultyCurveComponent.Kind(), func(e ecs.Entity, curve *component.DifficultyCurve) {
		if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
			actor.Speed = curve.Speed.Eval(alarm)
		}
		if ai, ok := ecs.Get(w, e, component.EnemyAIComponent.Kind()); ok {
			ai.FollowRadius = curve.FollowRadius.Eval(alarm)
			ai.AttackRadius = curve.AttackRadius.Eval(alarm)
			ai.AttackCooldown = curve.AttackCooldown.Eval(alarm)
		}
		if sensor, ok := ecs.Get(w, e, component.DetectionSensorComponent.Kind()); ok {
			sensor.Radius = curve.DetectRadius.Eval(alarm)
		}
	})
}
