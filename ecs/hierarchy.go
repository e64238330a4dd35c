package ecs

import "github.com/milk9111/turncoat/ecs/component"

// SetParent records a despawn/ownership relation between child and parent.
// It does not propagate transforms; see component.Follow for that.
func SetParent(w *World, child, parent Entity) error {
	if !w.IsAlive(child) || !w.IsAlive(parent) {
		return component.ErrEntityNotAlive
	}
	if old, ok := Get(w, child, component.ParentComponent.Kind()); ok && old.Entity != uint64(parent) {
		detach(w, Entity(old.Entity), child)
	}
	if err := Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}); err != nil {
		return err
	}
	children, ok := Get(w, parent, component.ChildrenComponent.Kind())
	if !ok {
		children = &component.Children{}
		if err := Add(w, parent, component.ChildrenComponent.Kind(), children); err != nil {
			return err
		}
	}
	for _, c := range children.Entities {
		if c == uint64(child) {
			return nil
		}
	}
	children.Entities = append(children.Entities, uint64(child))
	return nil
}

func detach(w *World, parent, child Entity) {
	children, ok := Get(w, parent, component.ChildrenComponent.Kind())
	if !ok {
		return
	}
	kept := children.Entities[:0]
	for _, c := range children.Entities {
		if c != uint64(child) {
			kept = append(kept, c)
		}
	}
	children.Entities = kept
}

// ChildrenOf returns the live children of e.
func ChildrenOf(w *World, e Entity) []Entity {
	children, ok := Get(w, e, component.ChildrenComponent.Kind())
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(children.Entities))
	for _, c := range children.Entities {
		if w.IsAlive(Entity(c)) {
			out = append(out, Entity(c))
		}
	}
	return out
}

// ParentOf returns the parent of e when it is still alive.
func ParentOf(w *World, e Entity) (Entity, bool) {
	p, ok := Get(w, e, component.ParentComponent.Kind())
	if !ok || !w.IsAlive(Entity(p.Entity)) {
		return 0, false
	}
	return Entity(p.Entity), true
}

// DestroyRecursive destroys e and all of its descendants, returning how many
// entities were destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !w.IsAlive(e) {
		return 0
	}
	n := 0
	for _, c := range ChildrenOf(w, e) {
		n += DestroyRecursive(w, c)
	}
	if p, ok := ParentOf(w, e); ok {
		detach(w, p, e)
	}
	if w.DestroyEntity(e) {
		n++
	}
	return n
}
