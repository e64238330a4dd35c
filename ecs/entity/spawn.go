package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/resource"
)

// SpawnFunc builds one kind of level placement at a position.
type SpawnFunc func(w *ecs.World, state *resource.State, x, y float64, props map[string]any) (ecs.Entity, error)

var spawnRegistry = map[string]SpawnFunc{
	"player":        NewPlayer,
	"enemy":         NewEnemy,
	"wall":          NewWall,
	"gate":          NewGate,
	"plate":         NewPlate,
	"exit":          NewExit,
	"victory":       NewVictoryZone,
	"defect_switch": NewDefectionSwitch,
}

// Spawn builds the placement named id and parents it under the game root.
func Spawn(w *ecs.World, state *resource.State, id string, x, y float64, props map[string]any) (ecs.Entity, error) {
	if w == nil || state == nil {
		return 0, fmt.Errorf("spawn %q: nil world or state", id)
	}
	fn, ok := spawnRegistry[id]
	if !ok {
		return 0, fmt.Errorf("spawn: unknown entity %q", id)
	}
	e, err := fn(w, state, x, y, props)
	if err != nil {
		return 0, err
	}
	if err := attachToRoot(w, e); err != nil {
		return 0, fmt.Errorf("spawn %q: attach to root: %w", id, err)
	}
	return e, nil
}

// Kinds lists every identifier Spawn accepts.
func Kinds() []string {
	out := make([]string, 0, len(spawnRegistry))
	for id := range spawnRegistry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
