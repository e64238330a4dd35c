package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

// visualChild returns the cosmetic child of an actor, if it has one.
func visualChild(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	for _, c := range ecs.ChildrenOf(w, e) {
		if ecs.Has(w, c, component.VisualComponent.Kind()) {
			return c, true
		}
	}
	return 0, false
}
