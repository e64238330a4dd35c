package resource

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

// Events holds every typed event queue plus the raw collision buffer the
// physics step fills for the intake pass.
type Events struct {
	Hits      ecs.EventQueue[component.HitEvent]
	Deaths    ecs.EventQueue[component.DeathEvent]
	Alerts    ecs.EventQueue[component.AlertEvent]
	Plates    ecs.EventQueue[component.PlatePressedEvent]
	Exits     ecs.EventQueue[component.ExitReachedEvent]
	Victories ecs.EventQueue[component.VictoryEvent]
	Defects   ecs.EventQueue[component.DefectionEvent]

	collisions []component.RawCollision
}

// RecordCollision buffers one collision start from the physics step.
func (e *Events) RecordCollision(c component.RawCollision) {
	if e == nil {
		return
	}
	e.collisions = append(e.collisions, c)
}

// DrainCollisions returns and clears the buffered collision starts.
func (e *Events) DrainCollisions() []component.RawCollision {
	if e == nil || len(e.collisions) == 0 {
		return nil
	}
	out := e.collisions
	e.collisions = nil
	return out
}

// Update swaps every queue's buffers; run once per frame.
func (e *Events) Update() {
	if e == nil {
		return
	}
	e.Hits.Update()
	e.Deaths.Update()
	e.Alerts.Update()
	e.Plates.Update()
	e.Exits.Update()
	e.Victories.Update()
	e.Defects.Update()
}

// Clear drops every pending event and collision.
func (e *Events) Clear() {
	if e == nil {
		return
	}
	e.Hits.Clear()
	e.Deaths.Clear()
	e.Alerts.Clear()
	e.Plates.Clear()
	e.Exits.Clear()
	e.Victories.Clear()
	e.Defects.Clear()
	e.collisions = nil
}

// Pending reports the total number of buffered events and collisions.
func (e *Events) Pending() int {
	if e == nil {
		return 0
	}
	return e.Hits.Len() + e.Deaths.Len() + e.Alerts.Len() + e.Plates.Len() +
		e.Exits.Len() + e.Victories.Len() + e.Defects.Len() + len(e.collisions)
}
