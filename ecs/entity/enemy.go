package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/prefabs"
)

type enemyProps struct {
	Variant string  `yaml:"variant"`
	Health  float64 `yaml:"health"`
}

func curve(c prefabs.CurveSpec) component.Curve {
	return component.Curve{AtZero: c.AtZero, AtMax: c.AtMax}
}

func NewEnemy(w *ecs.World, state *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}
	overrides, err := prefabs.DecodeProps[enemyProps](props)
	if err != nil {
		return 0, fmt.Errorf("enemy: decode props: %w", err)
	}
	variant, err := enemySpec.Variant(overrides.Variant)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if overrides.Health > 0 {
		variant.Health = overrides.Health
	}

	enemy := ecs.CreateEntity(w)
	if err := ecs.Add(w, enemy, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}
	if err := addActor(w, state, enemy, variant.ActorSpec, component.FactionEnemy, x, y); err != nil {
		return 0, err
	}

	curves := &component.DifficultyCurve{
		Speed:          curve(variant.Difficulty.Speed),
		DetectRadius:   curve(variant.Difficulty.DetectRadius),
		FollowRadius:   curve(variant.Difficulty.FollowRadius),
		AttackRadius:   curve(variant.Difficulty.AttackRadius),
		AttackCooldown: curve(variant.Difficulty.AttackCooldown),
	}
	if err := ecs.Add(w, enemy, component.DifficultyCurveComponent.Kind(), curves); err != nil {
		return 0, fmt.Errorf("enemy: add difficulty curve: %w", err)
	}

	// Stats start at the current alarm so a fresh spawn is consistent
	// before its first difficulty pass.
	alarm := state.Alarm.Value()
	if err := ecs.Add(w, enemy, component.EnemyAIComponent.Kind(), &component.EnemyAI{
		FollowRadius:   curves.FollowRadius.Eval(alarm),
		AttackRadius:   curves.AttackRadius.Eval(alarm),
		AttackCooldown: curves.AttackCooldown.Eval(alarm),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add ai: %w", err)
	}
	if err := ecs.Add(w, enemy, component.DetectionSensorComponent.Kind(), &component.DetectionSensor{
		Radius: curves.DetectRadius.Eval(alarm),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add detection sensor: %w", err)
	}
	if variant.AlertScript != "" {
		if err := ecs.Add(w, enemy, component.AlertScriptComponent.Kind(), &component.AlertScript{Path: variant.AlertScript}); err != nil {
			return 0, fmt.Errorf("enemy: add alert script: %w", err)
		}
	}

	return enemy, nil
}
