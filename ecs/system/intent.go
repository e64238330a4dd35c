package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/entity"
	"github.com/milk9111/turncoat/ecs/resource"
)

// IntentApplySystem turns every actor's intent into velocity, swings and
// facing. It treats player and enemy actors the same way.
type IntentApplySystem struct {
	state *resource.State
}

func NewIntentApplySystem(state *resource.State) *IntentApplySystem {
	return &IntentApplySystem{state: state}
}

func (s *IntentApplySystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	dt := s.state.Time.Delta

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, actor *component.Actor, vel *component.Velocity) {
		intent, hasIntent := ecs.Get(w, e, component.ActorIntentComponent.Kind())

		var move common.Vec2
		if hasIntent {
			move = intent.Movement
		}
		s.approach(actor, vel, move, hasIntent, dt)

		if hasIntent && intent.Attack != nil {
			s.swing(w, e, actor, *intent.Attack)
			intent.Attack = nil
		}

		s.face(w, e, move)
	})
}

// approach moves velocity toward the intended velocity by at most one
// step of acceleration, so it never overshoots.
func (s *IntentApplySystem) approach(actor *component.Actor, vel *component.Velocity, move common.Vec2, hasIntent bool, dt float64) {
	current := common.V(vel.X, vel.Y)
	dir := move.Normalize()
	target := dir.Scale(min(move.Len(), 1) * actor.Speed)

	rate := actor.Acceleration
	if !hasIntent || dir.Dot(current) < 0 {
		rate = actor.BrakeDeceleration
	}

	next := current.MoveToward(target, rate*dt)
	if move.IsZero() && next.Len() < actor.IdleThreshold {
		next = common.Vec2{}
	}
	vel.X = next.X
	vel.Y = next.Y
}

func (s *IntentApplySystem) swing(w *ecs.World, e ecs.Entity, actor *component.Actor, dir common.Vec2) {
	profile, ok := ecs.Get(w, e, component.AttackProfileComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if _, err := entity.SpawnHitbox(w, s.state, e, actor.Faction, common.V(t.X, t.Y), dir, profile); err != nil {
		s.state.Logger.Error("intent: spawn hitbox", "actor", e, "err", err)
		return
	}
	s.state.Sounds.Play(assets.SoundSwing)

	visual, ok := visualChild(w, e)
	if !ok {
		return
	}
	lunge, ok := ecs.Get(w, visual, component.AttackLungeComponent.Kind())
	if !ok {
		return
	}
	lunge.Duration = s.state.Tuning.LungeDuration
	lunge.Timer = lunge.Duration
	if dir.X != 0 {
		lunge.Sign = common.Sign(dir.X)
	} else if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
		lunge.Sign = facing.Sign
	}
}

// face picks the swing direction while a lunge plays, else the horizontal
// movement sign, else the sign of the last swing.
func (s *IntentApplySystem) face(w *ecs.World, e ecs.Entity, move common.Vec2) {
	facing, ok := ecs.Get(w, e, component.FacingComponent.Kind())
	if !ok {
		return
	}

	var lunge *component.AttackLunge
	if visual, ok := visualChild(w, e); ok {
		lunge, _ = ecs.Get(w, visual, component.AttackLungeComponent.Kind())
	}

	switch {
	case lunge.Active() && lunge.Sign != 0:
		facing.Sign = lunge.Sign
	case move.X != 0:
		facing.Sign = common.Sign(move.X)
	case lunge != nil && lunge.Sign != 0:
		facing.Sign = lunge.Sign
	}
}
