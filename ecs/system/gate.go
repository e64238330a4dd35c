package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

// PlateSystem latches a plate on its first press and toggles every linked
// gate once. Later presses do nothing.
type PlateSystem struct {
	state  *resource.State
	plates ecs.EventReader[component.PlatePressedEvent]
}

func NewPlateSystem(state *resource.State) *PlateSystem {
	return &PlateSystem{state: state}
}

func (s *PlateSystem) Update(w *ecs.World) {
	if s == nil || s.state == nil || w == nil {
		return
	}

	for _, ev := range s.plates.Read(&s.state.Events.Plates) {
		plate, ok := ecs.Get(w, ecs.Entity(ev.Plate), component.PlateComponent.Kind())
		if !ok || plate.Pressed {
			continue
		}
		plate.Pressed = true
		s.state.Sounds.Play(assets.SoundPlate)

		toggled := 0
		for _, ref := range plate.Gates {
			gate, ok := ecs.Get(w, ecs.Entity(ref), component.GateComponent.Kind())
			if !ok {
				continue
			}
			gate.Open = !gate.Open
			toggled++
		}
		if toggled > 0 {
			s.state.Sounds.Play(assets.SoundGate)
		}
		s.state.Logger.Debug("plate: pressed", "plate", ev.Plate, "actor", ev.Actor, "gates", toggled)
	}
}

// GateSystem keeps each gate's collision filter in step with its open
// state; the physics system applies the filter.
type GateSystem struct{}

func NewGateSystem() *GateSystem {
	return &GateSystem{}
}

func (s *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.GateComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, gate *component.Gate, body *component.PhysicsBody) {
		body.Filter = gate.Filter()
	})
}
