package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/prefabs"
)

const defaultTileSize = 32.0

// levelProps covers every static level object; each template reads only
// the fields it needs.
type levelProps struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Open   bool    `yaml:"open"`
	Target string  `yaml:"target"`
}

func decodeLevelProps(props map[string]any) (levelProps, error) {
	p, err := prefabs.DecodeProps[levelProps](props)
	if err != nil {
		return p, err
	}
	if p.Width <= 0 {
		p.Width = defaultTileSize
	}
	if p.Height <= 0 {
		p.Height = defaultTileSize
	}
	if p.Radius <= 0 {
		p.Radius = defaultTileSize / 2
	}
	return p, nil
}

// triggerFilter is used by exits, the victory zone and the defection
// switch: only the player's body sets them off.
var triggerFilter = component.CollisionFilter{Membership: component.LayerTrigger, Mask: component.LayerPlayerBody}

func newStatic(w *ecs.World, name string, x, y float64, body component.PhysicsBody, layer int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	body.Static = true
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, fmt.Errorf("%s: add render layer: %w", name, err)
	}
	return e, nil
}

func NewWall(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	p, err := decodeLevelProps(props)
	if err != nil {
		return 0, fmt.Errorf("wall: decode props: %w", err)
	}
	return newStatic(w, "wall", x, y, component.PhysicsBody{
		Kind:      component.ShapeBox,
		Width:     p.Width,
		Height:    p.Height,
		Collision: component.CollisionSolid,
		Filter:    component.CollisionFilter{Membership: component.LayerWall, Mask: component.LayerBodies},
	}, component.RenderLayerWalls)
}

// NewGate spawns a gate. Gates are closed unless the level says otherwise.
func NewGate(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	p, err := decodeLevelProps(props)
	if err != nil {
		return 0, fmt.Errorf("gate: decode props: %w", err)
	}
	gate := component.Gate{Open: p.Open}
	e, err := newStatic(w, "gate", x, y, component.PhysicsBody{
		Kind:      component.ShapeBox,
		Width:     p.Width,
		Height:    p.Height,
		Collision: component.CollisionSolid,
		Filter:    gate.Filter(),
	}, component.RenderLayerWalls)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GateComponent.Kind(), &gate); err != nil {
		return 0, fmt.Errorf("gate: add gate: %w", err)
	}
	return e, nil
}

// NewPlate spawns an unlinked plate; LinkPlate wires its gates once every
// placement of the level exists.
func NewPlate(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	p, err := decodeLevelProps(props)
	if err != nil {
		return 0, fmt.Errorf("plate: decode props: %w", err)
	}
	e, err := newStatic(w, "plate", x, y, component.PhysicsBody{
		Kind:      component.ShapeCircle,
		Radius:    p.Radius,
		Sensor:    true,
		Collision: component.CollisionPlate,
		Filter:    component.CollisionFilter{Membership: component.LayerTrigger, Mask: component.LayerBodies},
	}, component.RenderLayerFloor)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlateComponent.Kind(), &component.Plate{}); err != nil {
		return 0, fmt.Errorf("plate: add plate: %w", err)
	}
	return e, nil
}

// LinkPlate points a plate at the gates it toggles.
func LinkPlate(w *ecs.World, plate ecs.Entity, gates []ecs.Entity) error {
	p, ok := ecs.Get(w, plate, component.PlateComponent.Kind())
	if !ok {
		return fmt.Errorf("plate: entity %d is not a plate", plate)
	}
	for _, g := range gates {
		if !ecs.Has(w, g, component.GateComponent.Kind()) {
			return fmt.Errorf("plate: entity %d is not a gate", g)
		}
		p.Gates = append(p.Gates, uint64(g))
	}
	return nil
}

func newTrigger(w *ecs.World, name string, x, y float64, props map[string]any, kind component.CollisionKind) (ecs.Entity, levelProps, error) {
	p, err := decodeLevelProps(props)
	if err != nil {
		return 0, p, fmt.Errorf("%s: decode props: %w", name, err)
	}
	e, err := newStatic(w, name, x, y, component.PhysicsBody{
		Kind:      component.ShapeBox,
		Width:     p.Width,
		Height:    p.Height,
		Sensor:    true,
		Collision: kind,
		Filter:    triggerFilter,
	}, component.RenderLayerFloor)
	return e, p, err
}

func NewExit(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	e, p, err := newTrigger(w, "exit", x, y, props, component.CollisionExit)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ExitComponent.Kind(), &component.Exit{Target: p.Target}); err != nil {
		return 0, fmt.Errorf("exit: add exit: %w", err)
	}
	return e, nil
}

func NewVictoryZone(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	e, _, err := newTrigger(w, "victory", x, y, props, component.CollisionVictory)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VictoryZoneComponent.Kind(), &component.VictoryZone{}); err != nil {
		return 0, fmt.Errorf("victory: add zone: %w", err)
	}
	return e, nil
}

func NewDefectionSwitch(w *ecs.World, _ *resource.State, x, y float64, props map[string]any) (ecs.Entity, error) {
	e, _, err := newTrigger(w, "defect_switch", x, y, props, component.CollisionDefection)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DefectionSwitchComponent.Kind(), &component.DefectionSwitch{}); err != nil {
		return 0, fmt.Errorf("defect_switch: add switch: %w", err)
	}
	return e, nil
}
