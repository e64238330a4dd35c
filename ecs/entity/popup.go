package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// SpawnAlertPopup puts a short-lived "!" above an enemy. It is parented to
// the enemy for despawn and follows it each frame.
func SpawnAlertPopup(w *ecs.World, state *resource.State, enemy ecs.Entity) (ecs.Entity, error) {
	t, ok := ecs.Get(w, enemy, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("alert popup: enemy %d has no transform", enemy)
	}
	offsetY := state.Tuning.AlertPopupOffsetY

	popup := ecs.CreateEntity(w)
	if err := ecs.Add(w, popup, component.AlertPopupComponent.Kind(), &component.AlertPopup{}); err != nil {
		return 0, fmt.Errorf("alert popup: add tag: %w", err)
	}
	if err := ecs.Add(w, popup, component.TransformComponent.Kind(), &component.Transform{X: t.X, Y: t.Y + offsetY}); err != nil {
		return 0, fmt.Errorf("alert popup: add transform: %w", err)
	}
	if err := ecs.Add(w, popup, component.FollowComponent.Kind(), &component.Follow{Target: uint64(enemy), OffsetY: offsetY}); err != nil {
		return 0, fmt.Errorf("alert popup: add follow: %w", err)
	}
	if err := ecs.Add(w, popup, component.LifetimeComponent.Kind(), &component.Lifetime{Remaining: state.Tuning.AlertPopupTTL}); err != nil {
		return 0, fmt.Errorf("alert popup: add lifetime: %w", err)
	}
	if err := ecs.SetParent(w, popup, enemy); err != nil {
		return 0, fmt.Errorf("alert popup: parent: %w", err)
	}
	return popup, nil
}
