package component

// Collision layer bits. A pair of shapes only interacts when each one's
// Membership intersects the other's Mask.
const (
	LayerWall uint32 = 1 << iota
	LayerPlayerBody
	LayerEnemyBody
	LayerPlayerHitbox
	LayerEnemyHitbox
	LayerDetection
	LayerTrigger
	LayerGate
)

// LayerBodies matches every actor body regardless of faction.
const LayerBodies = LayerPlayerBody | LayerEnemyBody

// CollisionFilter is a membership/mask pair translated to a cp.ShapeFilter
// by the physics system.
type CollisionFilter struct {
	Membership uint32
	Mask       uint32
}

// Interacts reports whether two filters accept each other.
func (f CollisionFilter) Interacts(o CollisionFilter) bool {
	return f.Membership&o.Mask != 0 && o.Membership&f.Mask != 0
}

// CollisionKind tells the physics system which collision handler a shape
// belongs to.
type CollisionKind int

const (
	CollisionSolid CollisionKind = iota
	CollisionActor
	CollisionHitbox
	CollisionDetection
	CollisionPlate
	CollisionExit
	CollisionVictory
	CollisionDefection
)

// RawCollision is one collision-start pair reported by the physics step.
// A is always the shape of the first kind in the handler pair (hitbox,
// sensor, plate, exit...), B the actor it touched.
type RawCollision struct {
	Kind CollisionKind
	A    uint64
	B    uint64
}
