package system

import (
	"math"
	"testing"

	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

func TestPlayerInput(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawInput
		wantMove   common.Vec2
		wantAttack *common.Vec2
	}{
		{
			name:     "move_clamped",
			raw:      RawInput{Move: common.V(3, 4)},
			wantMove: common.V(0.6, 0.8),
		},
		{
			name:       "aim_stick_wins",
			raw:        RawInput{Aim: common.V(0, -2), Cursor: common.V(50, 10), HasCursor: true, AttackPressed: true},
			wantAttack: &common.Vec2{X: 0, Y: -1},
		},
		{
			name:       "cursor_direction",
			raw:        RawInput{Cursor: common.V(10, 20), HasCursor: true, AttackPressed: true},
			wantAttack: &common.Vec2{X: 0, Y: 1},
		},
		{
			name: "cursor_on_player",
			raw:  RawInput{Cursor: common.V(10, 10), HasCursor: true, AttackPressed: true},
		},
		{
			name: "no_direction",
			raw:  RawInput{AttackPressed: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := newTestState()
			e := addPlayer(t, w, 10, 10)
			raw := tc.raw

			NewPlayerInputSystem(state, InputFunc(func() RawInput { return raw })).Update(w)

			intent, _ := ecs.Get(w, e, component.ActorIntentComponent.Kind())
			if math.Abs(intent.Movement.X-tc.wantMove.X) > 1e-9 || math.Abs(intent.Movement.Y-tc.wantMove.Y) > 1e-9 {
				t.Fatalf("expected movement %v, got %v", tc.wantMove, intent.Movement)
			}
			switch {
			case tc.wantAttack == nil && intent.Attack != nil:
				t.Fatalf("expected no attack, got %v", *intent.Attack)
			case tc.wantAttack != nil && intent.Attack == nil:
				t.Fatalf("expected attack %v, got none", *tc.wantAttack)
			case tc.wantAttack != nil && *intent.Attack != *tc.wantAttack:
				t.Fatalf("expected attack %v, got %v", *tc.wantAttack, *intent.Attack)
			}
		})
	}
}

func TestPlayerInputDenied(t *testing.T) {
	w := ecs.NewWorld()
	state := newTestState()
	e := addPlayer(t, w, 0, 0)
	intent, _ := ecs.Get(w, e, component.ActorIntentComponent.Kind())
	intent.Movement = common.V(1, 0)

	state.Input.Deny("dialogue")
	sys := NewPlayerInputSystem(state, InputFunc(func() RawInput {
		return RawInput{Move: common.V(0, 1), Aim: common.V(1, 0), AttackPressed: true}
	}))
	sys.Update(w)

	if !intent.Movement.IsZero() || intent.Attack != nil {
		t.Fatalf("denied input must clear the intent, got %+v", intent)
	}

	state.Input.Allow("dialogue")
	sys.Update(w)
	if intent.Movement != common.V(0, 1) || intent.Attack == nil {
		t.Fatalf("expected input to flow again, got %+v", intent)
	}
}
