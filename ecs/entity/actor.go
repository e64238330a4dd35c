package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/prefabs"
)

// addActor attaches everything a combatant needs: body, movement, health,
// intent, attack profile and a visual child for the cosmetic animations.
func addActor(w *ecs.World, state *resource.State, e ecs.Entity, spec prefabs.ActorSpec, faction component.Faction, x, y float64) error {
	name := faction.String()

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return fmt.Errorf("%s: add velocity: %w", name, err)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Faction:           faction,
		Speed:             spec.Movement.Speed,
		Acceleration:      spec.Movement.Acceleration,
		BrakeDeceleration: spec.Movement.BrakeDeceleration,
		IdleThreshold:     spec.Movement.IdleThreshold,
	}); err != nil {
		return fmt.Errorf("%s: add actor: %w", name, err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return fmt.Errorf("%s: add health: %w", name, err)
	}
	if err := ecs.Add(w, e, component.ActorIntentComponent.Kind(), &component.ActorIntent{}); err != nil {
		return fmt.Errorf("%s: add intent: %w", name, err)
	}
	if err := ecs.Add(w, e, component.AttackProfileComponent.Kind(), &component.AttackProfile{
		Damage:    spec.Attack.Damage,
		Knockback: spec.Attack.Knockback,
		Reach:     spec.Attack.Reach,
		Radius:    spec.Attack.Radius,
		HitSound:  assets.SoundByName(spec.Attack.HitSound),
		MissSound: assets.SoundByName(spec.Attack.MissSound),
	}); err != nil {
		return fmt.Errorf("%s: add attack profile: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:      component.ShapeCircle,
		Radius:    spec.Body.Radius,
		Mass:      spec.Body.Mass,
		Friction:  spec.Body.Friction,
		Collision: component.CollisionActor,
		Filter:    faction.HurtboxFilter(),
	}); err != nil {
		return fmt.Errorf("%s: add physics body: %w", name, err)
	}
	if err := ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Sign: 1}); err != nil {
		return fmt.Errorf("%s: add facing: %w", name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.RenderLayerActors}); err != nil {
		return fmt.Errorf("%s: add render layer: %w", name, err)
	}

	visual := ecs.CreateEntity(w)
	if err := ecs.Add(w, visual, component.VisualComponent.Kind(), &component.Visual{}); err != nil {
		return fmt.Errorf("%s: add visual: %w", name, err)
	}
	if err := ecs.Add(w, visual, component.FlinchComponent.Kind(), &component.Flinch{Duration: state.Tuning.FlinchDuration}); err != nil {
		return fmt.Errorf("%s: add flinch: %w", name, err)
	}
	if err := ecs.Add(w, visual, component.AttackLungeComponent.Kind(), &component.AttackLunge{Duration: state.Tuning.LungeDuration, Sign: 1}); err != nil {
		return fmt.Errorf("%s: add attack lunge: %w", name, err)
	}
	if err := ecs.SetParent(w, visual, e); err != nil {
		return fmt.Errorf("%s: parent visual: %w", name, err)
	}
	return nil
}
