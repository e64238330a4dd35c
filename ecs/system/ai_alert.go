package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/entity"
	"github.com/milk9111/turncoat/ecs/resource"
)

// EnemyAlertSystem moves idle enemies to pursuit when their sensor sees a
// target or when they are hit.
type EnemyAlertSystem struct {
	state   *resource.State
	alerts  ecs.EventReader[component.AlertEvent]
	hits    ecs.EventReader[component.HitEvent]
	scripts *alertScripts
}

func NewEnemyAlertSystem(state *resource.State) *EnemyAlertSystem {
	return &EnemyAlertSystem{state: state, scripts: newAlertScripts()}
}

// ReloadScripts drops every compiled alert script; the next alert
// recompiles from disk.
func (s *EnemyAlertSystem) ReloadScripts() {
	if s == nil {
		return
	}
	s.scripts = newAlertScripts()
}

func (s *EnemyAlertSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	for _, ev := range s.alerts.Read(&s.state.Events.Alerts) {
		s.alert(w, ecs.Entity(ev.Enemy), ecs.Entity(ev.Target))
	}

	for _, ev := range s.hits.Read(&s.state.Events.Hits) {
		enemy := ecs.Entity(ev.Hurtbox)
		if !ecs.Has(w, enemy, component.EnemyAIComponent.Kind()) {
			continue
		}
		// The attacker is assumed to be the player; the hitbox owner is
		// not consulted.
		player, ok := w.First(component.PlayerTagComponent.Kind())
		if !ok {
			continue
		}
		s.alert(w, enemy, player)
	}
}

func (s *EnemyAlertSystem) alert(w *ecs.World, enemy, target ecs.Entity) {
	ai, ok := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
	if !ok || ai.HasTarget() {
		return
	}
	if ecs.Has(w, enemy, component.CorpseComponent.Kind()) || !w.IsAlive(target) {
		return
	}
	// A lethal hit this frame leaves health at or below zero before the
	// Corpse tag lands, so health is the dead check that holds in any order.
	if health, ok := ecs.Get(w, enemy, component.HealthComponent.Kind()); ok && health.Current <= 0 {
		return
	}
	if ecs.Has(w, target, component.CorpseComponent.Kind()) {
		return
	}

	ai.Target = uint64(target)
	s.state.Sounds.Play(assets.SoundAlert)
	if _, err := entity.SpawnAlertPopup(w, s.state, enemy); err != nil {
		s.state.Logger.Error("ai: spawn alert popup", "enemy", enemy, "err", err)
	}
	alarm := s.state.Alarm.Increase(s.state.Tuning.DetectAlarm)
	s.state.Logger.Debug("ai: alerted", "enemy", enemy, "target", target, "alarm", alarm)

	script, ok := ecs.Get(w, enemy, component.AlertScriptComponent.Kind())
	if !ok || script.Path == "" {
		return
	}
	out, err := s.scripts.run(script.Path, alertScriptInput{
		Alarm:  s.state.Alarm.Value(),
		Kills:  s.state.Playthrough.Kills,
		Enemy:  positionOf(w, enemy),
		Target: positionOf(w, target),
	})
	if err != nil {
		s.state.Logger.Warn("ai: alert script", "enemy", enemy, "script", script.Path, "err", err)
		return
	}
	if out.AlarmBonus > 0 {
		s.state.Alarm.Increase(out.AlarmBonus)
	}
	s.state.Sounds.Play(assets.SoundByName(out.Bark))
}

func positionOf(w *ecs.World, e ecs.Entity) common.Vec2 {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec2{}
	}
	return common.V(t.X, t.Y)
}
