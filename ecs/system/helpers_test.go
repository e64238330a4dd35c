package system

import (
	"testing"

	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

func newTestState() *resource.State {
	return resource.NewState(resource.Options{Seed: 7})
}

// recordingBank counts every sound the audio system hands over.
type recordingBank struct {
	played []assets.SoundKey
}

func (b *recordingBank) Play(key assets.SoundKey) {
	b.played = append(b.played, key)
}

func (b *recordingBank) count(key assets.SoundKey) int {
	n := 0
	for _, k := range b.played {
		if k == key {
			n++
		}
	}
	return n
}

func countSounds(sounds []assets.SoundKey, key assets.SoundKey) int {
	n := 0
	for _, k := range sounds {
		if k == key {
			n++
		}
	}
	return n
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// addActor builds a bare actor with a visual child, the shape every
// combat system expects.
func addActor(t *testing.T, w *ecs.World, faction component.Faction, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.ActorComponent.Kind(), &component.Actor{
		Faction:           faction,
		Speed:             100,
		Acceleration:      600,
		BrakeDeceleration: 1200,
		IdleThreshold:     2,
	})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: 20, Max: 20})
	mustAdd(t, w, e, component.ActorIntentComponent.Kind(), &component.ActorIntent{})
	mustAdd(t, w, e, component.AttackProfileComponent.Kind(), &component.AttackProfile{
		Damage:    8,
		Knockback: 5,
		Reach:     18,
		Radius:    12,
		HitSound:  assets.SoundHit,
		MissSound: assets.SoundMiss,
	})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:      component.ShapeCircle,
		Radius:    10,
		Mass:      1,
		Collision: component.CollisionActor,
		Filter:    faction.HurtboxFilter(),
	})
	mustAdd(t, w, e, component.FacingComponent.Kind(), &component.Facing{Sign: 1})

	visual := ecs.CreateEntity(w)
	mustAdd(t, w, visual, component.VisualComponent.Kind(), &component.Visual{})
	mustAdd(t, w, visual, component.FlinchComponent.Kind(), &component.Flinch{Duration: 0.2})
	mustAdd(t, w, visual, component.AttackLungeComponent.Kind(), &component.AttackLunge{Duration: 0.15, Sign: 1})
	if err := ecs.SetParent(w, visual, e); err != nil {
		t.Fatalf("parent visual: %v", err)
	}
	return e
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := addActor(t, w, component.FactionPlayer, x, y)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	return e
}

func addEnemy(t *testing.T, w *ecs.World, x, y float64, ai component.EnemyAI) ecs.Entity {
	t.Helper()
	e := addActor(t, w, component.FactionEnemy, x, y)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyAIComponent.Kind(), &ai)
	return e
}

func addHitbox(t *testing.T, w *ecs.World, owner ecs.Entity, damage float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.HitboxComponent.Kind(), &component.Hitbox{
		Owner:     uint64(owner),
		Faction:   component.FactionPlayer,
		Damage:    damage,
		HitSound:  assets.SoundHit,
		MissSound: assets.SoundMiss,
	})
	return e
}
