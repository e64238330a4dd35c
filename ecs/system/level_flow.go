package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

const victoryInputHolder = "victory"

// LevelFlowSystem reacts to the player reaching an exit, the victory zone
// or the defection switch.
type LevelFlowSystem struct {
	state     *resource.State
	exits     ecs.EventReader[component.ExitReachedEvent]
	victories ecs.EventReader[component.VictoryEvent]
	defects   ecs.EventReader[component.DefectionEvent]
}

func NewLevelFlowSystem(state *resource.State) *LevelFlowSystem {
	return &LevelFlowSystem{state: state}
}

func (s *LevelFlowSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	pt := &s.state.Playthrough

	for _, ev := range s.exits.Read(&s.state.Events.Exits) {
		if !isLivePlayer(w, ecs.Entity(ev.Actor)) || pt.LevelRequest != nil {
			continue
		}
		exit, ok := ecs.Get(w, ecs.Entity(ev.Exit), component.ExitComponent.Kind())
		if !ok {
			continue
		}
		pt.ExitsReached++
		pt.LevelRequest = &resource.LevelRequest{Name: exit.Target}
		s.state.Sounds.Play(assets.SoundExit)
		s.state.Logger.Debug("level: exit reached", "target", exit.Target)
	}

	for _, ev := range s.victories.Read(&s.state.Events.Victories) {
		if !isLivePlayer(w, ecs.Entity(ev.Actor)) || pt.Victory {
			continue
		}
		pt.Victory = true
		s.state.Input.Deny(victoryInputHolder)
		s.state.Logger.Info("level: victory", "score", pt.Score())
	}

	for _, ev := range s.defects.Read(&s.state.Events.Defects) {
		if !isLivePlayer(w, ecs.Entity(ev.Actor)) || pt.Defected {
			continue
		}
		sw, ok := ecs.Get(w, ecs.Entity(ev.Switch), component.DefectionSwitchComponent.Kind())
		if !ok || sw.Used {
			continue
		}
		sw.Used = true
		pt.Defected = true
		alarm := s.state.Alarm.Increase(s.state.Tuning.DefectionAlarm)
		s.state.Sounds.Play(assets.SoundDefect)
		s.state.Logger.Info("level: defected", "alarm", alarm)
	}
}

func isLivePlayer(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PlayerTagComponent.Kind()) && !ecs.Has(w, e, component.CorpseComponent.Kind())
}
