package system

import (
	"math"
	"testing"

	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

func TestEnemyAlertFromSensor(t *testing.T) {
	w := ecs.NewWorld()
	state := newTestState()
	sys := NewEnemyAlertSystem(state)

	player := addPlayer(t, w, 100, 0)
	enemy := addEnemy(t, w, 0, 0, component.EnemyAI{FollowRadius: 200})

	state.Events.Alerts.Send(component.AlertEvent{Enemy: uint64(enemy), Target: uint64(player)})
	sys.Update(w)

	brain, _ := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
	if brain.Target != uint64(player) {
		t.Fatalf("expected target %d, got %d", player, brain.Target)
	}
	if got := countSounds(state.Sounds.Pending(), assets.SoundAlert); got != 1 {
		t.Fatalf("expected one alert sound, got %d", got)
	}
	if state.Alarm.Value() != state.Tuning.DetectAlarm {
		t.Fatalf("expected alarm %v, got %v", state.Tuning.DetectAlarm, state.Alarm.Value())
	}

	popups := w.Query(component.AlertPopupComponent.Kind())
	if len(popups) != 1 {
		t.Fatalf("expected one alert popup, got %d", len(popups))
	}
	if parent, ok := ecs.ParentOf(w, popups[0]); !ok || parent != enemy {
		t.Fatalf("popup should be owned by the enemy, got %v ok=%v", parent, ok)
	}
	follow, _ := ecs.Get(w, popups[0], component.FollowComponent.Kind())
	if follow.Target != uint64(enemy) || follow.OffsetY != state.Tuning.AlertPopupOffsetY {
		t.Fatalf("unexpected popup follow %+v", follow)
	}

	// Already pursuing: a second sighting changes nothing.
	state.Events.Alerts.Send(component.AlertEvent{Enemy: uint64(enemy), Target: uint64(player)})
	sys.Update(w)
	if got := len(w.Query(component.AlertPopupComponent.Kind())); got != 1 {
		t.Fatalf("a second alert must not spawn another popup, got %d", got)
	}
	if state.Alarm.Value() != state.Tuning.DetectAlarm {
		t.Fatalf("a second alert must not raise the alarm, got %v", state.Alarm.Value())
	}
}

func TestEnemyAlertIgnored(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *ecs.World, enemy, player ecs.Entity) ecs.Entity
	}{
		{
			name: "corpse",
			setup: func(t *testing.T, w *ecs.World, enemy, player ecs.Entity) ecs.Entity {
				mustAdd(t, w, enemy, component.CorpseComponent.Kind(), &component.Corpse{})
				return player
			},
		},
		{
			name: "dying_enemy",
			setup: func(t *testing.T, w *ecs.World, enemy, player ecs.Entity) ecs.Entity {
				health, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
				health.Current = -3
				return player
			},
		},
		{
			name: "target_corpse",
			setup: func(t *testing.T, w *ecs.World, enemy, player ecs.Entity) ecs.Entity {
				mustAdd(t, w, player, component.CorpseComponent.Kind(), &component.Corpse{})
				return player
			},
		},
		{
			name: "target_gone",
			setup: func(t *testing.T, w *ecs.World, enemy, player ecs.Entity) ecs.Entity {
				gone := ecs.CreateEntity(w)
				ecs.DestroyEntity(w, gone)
				return gone
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := newTestState()
			player := addPlayer(t, w, 100, 0)
			enemy := addEnemy(t, w, 0, 0, component.EnemyAI{})
			target := tc.setup(t, w, enemy, player)

			state.Events.Alerts.Send(component.AlertEvent{Enemy: uint64(enemy), Target: uint64(target)})
			NewEnemyAlertSystem(state).Update(w)

			brain, _ := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
			if brain.HasTarget() {
				t.Fatalf("expected the enemy to stay idle, got target %d", brain.Target)
			}
			if state.Alarm.Value() != 0 || len(state.Sounds.Pending()) != 0 {
				t.Fatalf("an ignored alert must have no side effects")
			}
		})
	}
}

func TestEnemyAlertFromHitTargetsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	state := newTestState()
	player := addPlayer(t, w, 300, 300)
	enemy := addEnemy(t, w, 0, 0, component.EnemyAI{})
	other := addEnemy(t, w, 10, 0, component.EnemyAI{})

	// The hitbox belongs to another enemy; the alert still goes to the player.
	hitbox := addHitbox(t, w, other, 1)
	state.Events.Hits.Send(component.HitEvent{Hitbox: uint64(hitbox), Hurtbox: uint64(enemy)})
	NewEnemyAlertSystem(state).Update(w)

	brain, _ := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
	if brain.Target != uint64(player) {
		t.Fatalf("expected a hit to alert toward the player, got %d", brain.Target)
	}
}

func TestEnemyAlertScript(t *testing.T) {
	tests := []struct {
		name       string
		playerX    float64
		wantAlarm  float64
		wantAlerts int
	}{
		{"close_bark", 30, 0.03, 2},
		{"far_silent", 100, 0.02, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := newTestState()
			player := addPlayer(t, w, tc.playerX, 0)
			enemy := addEnemy(t, w, 0, 0, component.EnemyAI{})
			mustAdd(t, w, enemy, component.AlertScriptComponent.Kind(), &component.AlertScript{Path: "guard_alert.tengo"})

			state.Events.Alerts.Send(component.AlertEvent{Enemy: uint64(enemy), Target: uint64(player)})
			NewEnemyAlertSystem(state).Update(w)

			if math.Abs(state.Alarm.Value()-tc.wantAlarm) > 1e-9 {
				t.Fatalf("expected alarm %v, got %v", tc.wantAlarm, state.Alarm.Value())
			}
			if got := countSounds(state.Sounds.Pending(), assets.SoundAlert); got != tc.wantAlerts {
				t.Fatalf("expected %d alert sounds, got %d", tc.wantAlerts, got)
			}
		})
	}
}

func TestEnemyAlertMissingScriptStillAlerts(t *testing.T) {
	w := ecs.NewWorld()
	state := newTestState()
	player := addPlayer(t, w, 30, 0)
	enemy := addEnemy(t, w, 0, 0, component.EnemyAI{})
	mustAdd(t, w, enemy, component.AlertScriptComponent.Kind(), &component.AlertScript{Path: "missing.tengo"})

	state.Events.Alerts.Send(component.AlertEvent{Enemy: uint64(enemy), Target: uint64(player)})
	NewEnemyAlertSystem(state).Update(w)

	brain, _ := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
	if brain.Target != uint64(player) {
		t.Fatalf("a broken script must not block the alert")
	}
}
