package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeHitbox
	collisionTypeDetection
	collisionTypePlate
	collisionTypeExit
	collisionTypeVictory
	collisionTypeDefection
)

const sensorRadiusEpsilon = 1e-6

// triggerKinds are the shapes whose collision starts against an actor are
// reported to the intake pass.
var triggerKinds = []component.CollisionKind{
	component.CollisionHitbox,
	component.CollisionDetection,
	component.CollisionPlate,
	component.CollisionExit,
	component.CollisionVictory,
	component.CollisionDefection,
}

type PhysicsSystem struct {
	state         *resource.State
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	roles    map[*cp.Shape]shapeRole
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	filter component.CollisionFilter

	sensor       *cp.Shape
	sensorRadius float64
}

type shapeRole struct {
	entity ecs.Entity
	kind   component.CollisionKind
}

func NewPhysicsSystem(state *resource.State) *PhysicsSystem {
	return &PhysicsSystem{
		state:    state,
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		roles:    make(map[*cp.Shape]shapeRole),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops the space and every body in it. The next Update rebuilds
// bodies for whatever is alive.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.roles = make(map[*cp.Shape]shapeRole)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.state == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushVelocities(w)

	ps.space.Step(ps.state.Time.Delta)

	ps.syncTransforms(w)
	ps.markHitboxesStepped(w)
}

func collisionTypeFor(kind component.CollisionKind) cp.CollisionType {
	switch kind {
	case component.CollisionActor:
		return collisionTypeActor
	case component.CollisionHitbox:
		return collisionTypeHitbox
	case component.CollisionDetection:
		return collisionTypeDetection
	case component.CollisionPlate:
		return collisionTypePlate
	case component.CollisionExit:
		return collisionTypeExit
	case component.CollisionVictory:
		return collisionTypeVictory
	case component.CollisionDefection:
		return collisionTypeDefection
	default:
		return collisionTypeSolid
	}
}

func shapeFilter(f component.CollisionFilter) cp.ShapeFilter {
	return cp.ShapeFilter{
		Categories: uint(f.Membership),
		Mask:       uint(f.Mask),
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}
	for _, kind := range triggerKinds {
		handler := ps.space.NewCollisionHandler(collisionTypeFor(kind), collisionTypeActor)
		handler.UserData = ps
		handler.BeginFunc = ps.beginFunc(kind)
	}
	ps.handlersReady = true
}

// beginFunc records collision starts between a trigger of the given kind
// and an actor body. Roles come from the shape map so the arbiter's shape
// order does not matter.
func (ps *PhysicsSystem) beginFunc(kind component.CollisionKind) func(*cp.Arbiter, *cp.Space, interface{}) bool {
	return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.state == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		roleA, okA := sys.roles[shapeA]
		roleB, okB := sys.roles[shapeB]
		if !okA || !okB {
			return true
		}
		if roleA.kind != kind {
			roleA, roleB = roleB, roleA
		}
		if roleA.kind != kind || roleB.kind != component.CollisionActor {
			return true
		}
		if roleA.entity == roleB.entity {
			return true
		}
		sys.state.Events.RecordCollision(component.RawCollision{
			Kind: kind,
			A:    uint64(roleA.entity),
			B:    uint64(roleB.entity),
		})
		return true
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info == nil {
			if spentHitbox(w, e) {
				continue
			}
			info = ps.createBodyInfo(e, transform, bodyComp)
			if info == nil {
				continue
			}
			ps.entities[e] = info
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		if info.filter != bodyComp.Filter {
			info.shape.SetFilter(shapeFilter(bodyComp.Filter))
			info.filter = bodyComp.Filter
		}
		if !info.static && bodyComp.Mass > 0 && info.body.Mass() != bodyComp.Mass {
			info.body.SetMass(bodyComp.Mass)
		}
		ps.syncDetectionSensor(w, e, info)
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if bodyComp.Kind == component.ShapeCircle && radius <= 0 {
		radius = 8
	}
	if bodyComp.Kind == component.ShapeBox && (width <= 0 || height <= 0) {
		width, height = 32, 32
	}

	info := &bodyInfo{static: bodyComp.Static, filter: bodyComp.Filter}

	var shape *cp.Shape
	if bodyComp.Static {
		body := ps.space.StaticBody
		center := cp.Vector{X: transform.X, Y: transform.Y}
		if bodyComp.Kind == component.ShapeCircle {
			shape = cp.NewCircle(body, radius, center)
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(body, bb, 0)
		}
		info.body = body
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Actors never rotate in a top-down view.
		body := cp.NewBody(mass, math.Inf(1))
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		if bodyComp.Kind == component.ShapeCircle {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
		ps.space.AddBody(body)
		info.body = body
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeFor(bodyComp.Collision))
	shape.SetFilter(shapeFilter(bodyComp.Filter))
	ps.space.AddShape(shape)

	info.shape = shape
	ps.roles[shape] = shapeRole{entity: e, kind: bodyComp.Collision}
	return info
}

// syncDetectionSensor keeps the sensor circle's radius equal to the live
// detection radius, rebuilding the shape when it changes. A rebuilt
// sensor reports every overlap it starts with as a new collision.
func (ps *PhysicsSystem) syncDetectionSensor(w *ecs.World, e ecs.Entity, info *bodyInfo) {
	if info.static {
		return
	}
	sensor, ok := ecs.Get(w, e, component.DetectionSensorComponent.Kind())
	if !ok || sensor.Radius <= 0 {
		ps.removeDetectionSensor(info)
		return
	}
	if info.sensor != nil && math.Abs(info.sensorRadius-sensor.Radius) <= sensorRadiusEpsilon {
		return
	}
	ps.removeDetectionSensor(info)

	shape := cp.NewCircle(info.body, sensor.Radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeDetection)
	shape.SetFilter(shapeFilter(component.CollisionFilter{
		Membership: component.LayerDetection,
		Mask:       component.LayerPlayerBody,
	}))
	ps.space.AddShape(shape)

	info.sensor = shape
	info.sensorRadius = sensor.Radius
	ps.roles[shape] = shapeRole{entity: e, kind: component.CollisionDetection}
}

func (ps *PhysicsSystem) removeDetectionSensor(info *bodyInfo) {
	if info.sensor == nil {
		return
	}
	ps.space.RemoveShape(info.sensor)
	delete(ps.roles, info.sensor)
	info.sensor = nil
	info.sensorRadius = 0
}

// pushVelocities hands the velocity gameplay wrote this frame to the
// physics bodies.
func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		info.body.SetVelocity(vel.X, vel.Y)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v := info.body.Velocity()
			vel.X = v.X
			vel.Y = v.Y
		}
	}
}

func (ps *PhysicsSystem) markHitboxesStepped(w *ecs.World) {
	ecs.ForEach(w, component.HitboxComponent.Kind(), func(e ecs.Entity, hb *component.Hitbox) {
		if _, ok := ps.entities[e]; ok {
			hb.Stepped = true
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) && !spentHitbox(w, e) {
			continue
		}

		ps.removeDetectionSensor(info)
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.roles, info.shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// spentHitbox reports a hitbox whose single step has already been
// collected; it leaves the space before the next step.
func spentHitbox(w *ecs.World, e ecs.Entity) bool {
	hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
	return ok && hb.Collected
}
