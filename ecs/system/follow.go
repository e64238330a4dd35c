package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

// FollowSystem copies each follower's target transform plus its offset.
// It runs after the physics step so it always sees final positions.
type FollowSystem struct{}

func NewFollowSystem() *FollowSystem {
	return &FollowSystem{}
}

func (s *FollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FollowComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, follow *component.Follow, t *component.Transform) {
		target, ok := ecs.Get(w, ecs.Entity(follow.Target), component.TransformComponent.Kind())
		if !ok {
			return
		}
		t.X = target.X + follow.OffsetX
		t.Y = target.Y + follow.OffsetY
	})
}
