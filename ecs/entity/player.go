package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/prefabs"
)

// playerProps are the per-placement overrides a level may set.
type playerProps struct {
	Health float64 `yaml:"health"`
}

func NewPlayer(w *ecs.World, state *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	overrides, err := prefabs.DecodeProps[playerProps](props)
	if err != nil {
		return 0, fmt.Errorf("player: decode props: %w", err)
	}
	if overrides.Health > 0 {
		playerSpec.Health = overrides.Health
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := addActor(w, state, player, playerSpec.ActorSpec, component.FactionPlayer, x, y); err != nil {
		return 0, err
	}
	return player, nil
}
