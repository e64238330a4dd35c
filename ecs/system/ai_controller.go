package system

import (
	"math"

	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// EnemyAISystem runs the perception/pursuit state machine and writes each
// enemy's ActorIntent. Becoming alerted (Idle -> Pursuing) is handled by
// EnemyAlertSystem in the combat stage.
type EnemyAISystem struct {
	state *resource.State
}

func NewEnemyAISystem(state *resource.State) *EnemyAISystem {
	return &EnemyAISystem{state: state}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}
	dt := s.state.Time.Delta
	_, playerExists := w.First(component.PlayerTagComponent.Kind())

	ecs.ForEach3(w, component.EnemyAIComponent.Kind(), component.ActorIntentComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, ai *component.EnemyAI, intent *component.ActorIntent, t *component.Transform) {
			if ecs.Has(w, e, component.CorpseComponent.Kind()) {
				return
			}

			if !playerExists {
				if ai.HasTarget() {
					ai.Target = 0
					intent.Movement = common.FromAngle(s.state.Rand.Float64() * 2 * math.Pi)
					intent.Attack = nil
				}
				return
			}

			if !ai.HasTarget() {
				return
			}

			target := ecs.Entity(ai.Target)
			tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
			if !w.IsAlive(target) || !ok {
				s.loseTarget(e, ai, intent)
				return
			}

			delta := common.V(tt.X, tt.Y).Sub(common.V(t.X, t.Y))
			dist := delta.Len()
			if dist > ai.FollowRadius {
				s.loseTarget(e, ai, intent)
				return
			}

			dir := delta.Normalize()
			intent.Movement = dir

			if dist > ai.AttackRadius {
				ai.CooldownTimer = ai.AttackCooldown / 4
				return
			}

			ai.CooldownTimer -= dt
			if ai.CooldownTimer <= 0 {
				attack := dir
				intent.Attack = &attack
				ai.CooldownTimer = ai.AttackCooldown
			}
		})
}

func (s *EnemyAISystem) loseTarget(e ecs.Entity, ai *component.EnemyAI, intent *component.ActorIntent) {
	s.state.Logger.Debug("ai: lost target", "enemy", e, "target", ai.Target)
	ai.Target = 0
	intent.Movement = common.Vec2{}
	intent.Attack = nil
}
