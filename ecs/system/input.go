package system

import (
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// RawInput is one frame of device state.
type RawInput struct {
	Move common.Vec2
	// Aim is the aim stick; zero when no stick is deflected.
	Aim common.Vec2
	// Cursor is the pointer position already projected to world space.
	Cursor        common.Vec2
	HasCursor     bool
	AttackPressed bool
}

type InputSource interface {
	Read() RawInput
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() RawInput

func (f InputFunc) Read() RawInput { return f() }

type PlayerInputSystem struct {
	state  *resource.State
	source InputSource
}

func NewPlayerInputSystem(state *resource.State, source InputSource) *PlayerInputSystem {
	return &PlayerInputSystem{state: state, source: source}
}

func (s *PlayerInputSystem) SetSource(source InputSource) {
	if s == nil {
		return
	}
	s.source = source
}

func (s *PlayerInputSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	var raw RawInput
	if s.source != nil {
		raw = s.source.Read()
	}
	denied := s.state.Input.Active()

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.ActorIntentComponent.Kind()) {
		intent, ok := ecs.Get(w, e, component.ActorIntentComponent.Kind())
		if !ok {
			continue
		}
		if denied {
			intent.Movement = common.Vec2{}
			intent.Attack = nil
			continue
		}

		intent.Movement = raw.Move.ClampLen(1)
		if !raw.AttackPressed {
			continue
		}
		if dir, ok := attackDirection(w, e, raw); ok {
			intent.Attack = &dir
		}
	}
}

// attackDirection prefers the aim stick and falls back to the direction
// from the player to the cursor.
func attackDirection(w *ecs.World, e ecs.Entity, raw RawInput) (common.Vec2, bool) {
	if !raw.Aim.IsZero() {
		return raw.Aim.Normalize(), true
	}
	if !raw.HasCursor {
		return common.Vec2{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec2{}, false
	}
	dir := raw.Cursor.Sub(common.V(t.X, t.Y))
	if dir.IsZero() {
		return common.Vec2{}, false
	}
	return dir.Normalize(), true
}
