package system

import (
	"reflect"
	"testing"

	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

func TestPipelineStageOrder(t *testing.T) {
	p := NewPipeline(newTestState(), PipelineOptions{})
	want := []string{StageIntake, StageDifficulty, StageIntent, StageApply, StagePhysics, StageCombat, StageHousekeeping}
	if got := p.Stages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stages %v, got %v", want, got)
	}
}

// swingOnce presses attack toward +x on the first frame only.
func swingOnce() InputFunc {
	frame := 0
	return func() RawInput {
		frame++
		return RawInput{Aim: common.V(1, 0), AttackPressed: frame == 1}
	}
}

func TestPipelineSwing(t *testing.T) {
	tests := []struct {
		name       string
		enemyX     float64
		wantHit    int
		wantMiss   int
		wantHealth float64
		wantTarget bool
	}{
		{"hit", 125, 1, 0, 12, true},
		{"miss", 400, 0, 1, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := newTestState()
			bank := &recordingBank{}
			p := NewPipeline(state, PipelineOptions{Input: swingOnce(), Sounds: bank})

			player := addPlayer(t, w, 100, 100)
			enemy := addEnemy(t, w, tc.enemyX, 100, component.EnemyAI{FollowRadius: 100, AttackRadius: 20, AttackCooldown: 1})

			p.Update(w)
			hitboxes := w.Query(component.HitboxComponent.Kind())
			if len(hitboxes) != 1 {
				t.Fatalf("expected one hitbox after the swing frame, got %d", len(hitboxes))
			}
			hitbox := hitboxes[0]
			if hb, _ := ecs.Get(w, hitbox, component.HitboxComponent.Kind()); !hb.Stepped {
				t.Fatalf("the hitbox should have gone through the physics step")
			}

			p.Update(w)
			if w.IsAlive(hitbox) {
				t.Fatalf("the hitbox should be gone after the following frame")
			}

			for i := 0; i < 5; i++ {
				p.Update(w)
			}

			if got := bank.count(assets.SoundSwing); got != 1 {
				t.Fatalf("expected one swing sound, got %d", got)
			}
			if got := bank.count(assets.SoundHit); got != tc.wantHit {
				t.Fatalf("expected %d hit sounds, got %d", tc.wantHit, got)
			}
			if got := bank.count(assets.SoundMiss); got != tc.wantMiss {
				t.Fatalf("expected %d miss sounds, got %d", tc.wantMiss, got)
			}

			health, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
			if health.Current != tc.wantHealth {
				t.Fatalf("expected enemy health %v, got %v", tc.wantHealth, health.Current)
			}
			brain, _ := ecs.Get(w, enemy, component.EnemyAIComponent.Kind())
			if got := brain.Target == uint64(player); got != tc.wantTarget {
				t.Fatalf("expected targeting player %v, got target %d", tc.wantTarget, brain.Target)
			}
			if state.Events.Hits.Len() != 0 {
				t.Fatalf("hit events should have expired, %d left", state.Events.Hits.Len())
			}
		})
	}
}

func TestPipelineDeniedInput(t *testing.T) {
	w := ecs.NewWorld()
	state := newTestState()
	state.Input.Deny("cutscene")
	p := NewPipeline(state, PipelineOptions{Input: swingOnce()})
	addPlayer(t, w, 0, 0)

	p.Update(w)

	if got := len(w.Query(component.HitboxComponent.Kind())); got != 0 {
		t.Fatalf("denied input must not swing, got %d hitboxes", got)
	}
}
