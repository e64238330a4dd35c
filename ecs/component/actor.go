package component

type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionEnemy {
		return "enemy"
	}
	return "player"
}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == FactionEnemy {
		return FactionPlayer
	}
	return FactionEnemy
}

func (f Faction) bodyLayer() uint32 {
	if f == FactionEnemy {
		return LayerEnemyBody
	}
	return LayerPlayerBody
}

func (f Faction) hitboxLayer() uint32 {
	if f == FactionEnemy {
		return LayerEnemyHitbox
	}
	return LayerPlayerHitbox
}

// HitboxFilter is a hitbox's collision filter: its membership bit is the
// one the opposing faction's hurtbox listens for, and it only looks for
// opposing bodies, so a faction can never hit itself.
func (f Faction) HitboxFilter() CollisionFilter {
	return CollisionFilter{
		Membership: f.hitboxLayer(),
		Mask:       f.Opponent().bodyLayer(),
	}
}

// HurtboxFilter is an actor body's collision filter.
func (f Faction) HurtboxFilter() CollisionFilter {
	mask := LayerWall | LayerBodies | LayerTrigger | LayerGate | f.Opponent().hitboxLayer()
	if f == FactionPlayer {
		mask |= LayerDetection
	}
	return CollisionFilter{Membership: f.bodyLayer(), Mask: mask}
}

// Actor is any combat-capable entity.
type Actor struct {
	Faction           Faction
	Speed             float64
	Acceleration      float64
	BrakeDeceleration float64
	IdleThreshold     float64
}

var ActorComponent = NewComponent[Actor]()
