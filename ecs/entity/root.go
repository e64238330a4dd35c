package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

// EnsureRoot returns the game root, creating it when the world has none.
// Everything spawned for a life hangs off it so a restart can remove the
// whole life in one recursive despawn.
func EnsureRoot(w *ecs.World) (ecs.Entity, error) {
	if root, ok := w.First(component.GameRootComponent.Kind()); ok {
		return root, nil
	}
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.GameRootComponent.Kind(), &component.GameRoot{}); err != nil {
		return 0, fmt.Errorf("root: add game root: %w", err)
	}
	return root, nil
}

func attachToRoot(w *ecs.World, e ecs.Entity) error {
	root, err := EnsureRoot(w)
	if err != nil {
		return err
	}
	return ecs.SetParent(w, e, root)
}
