package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// SpawnHitbox creates the one-swing attack collider in front of owner. Its
// filter only reaches the opposing faction's bodies.
func SpawnHitbox(w *ecs.World, state *resource.State, owner ecs.Entity, faction component.Faction, pos, dir common.Vec2, profile *component.AttackProfile) (ecs.Entity, error) {
	if profile == nil {
		return 0, fmt.Errorf("hitbox: nil attack profile")
	}
	center := pos.Add(dir.Scale(profile.Reach))

	hitbox := ecs.CreateEntity(w)
	if err := ecs.Add(w, hitbox, component.TransformComponent.Kind(), &component.Transform{X: center.X, Y: center.Y}); err != nil {
		return 0, fmt.Errorf("hitbox: add transform: %w", err)
	}
	if err := ecs.Add(w, hitbox, component.HitboxComponent.Kind(), &component.Hitbox{
		Owner:     uint64(owner),
		Faction:   faction,
		Damage:    profile.Damage,
		Knockback: dir.Scale(profile.Knockback),
		HitSound:  profile.HitSound,
		MissSound: profile.MissSound,
	}); err != nil {
		return 0, fmt.Errorf("hitbox: add hitbox: %w", err)
	}
	if err := ecs.Add(w, hitbox, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:      component.ShapeCircle,
		Radius:    profile.Radius,
		Mass:      1,
		Sensor:    true,
		Collision: component.CollisionHitbox,
		Filter:    faction.HitboxFilter(),
	}); err != nil {
		return 0, fmt.Errorf("hitbox: add physics body: %w", err)
	}
	if err := ecs.Add(w, hitbox, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.RenderLayerOverlay}); err != nil {
		return 0, fmt.Errorf("hitbox: add render layer: %w", err)
	}
	if err := attachToRoot(w, hitbox); err != nil {
		return 0, fmt.Errorf("hitbox: attach to root: %w", err)
	}
	state.Logger.Debug("hitbox: spawned", "owner", owner, "faction", faction)
	return hitbox, nil
}
