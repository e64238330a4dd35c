package component

// HitEvent is raised for every hitbox/hurtbox pair that starts overlapping.
type HitEvent struct {
	Hitbox  uint64
	Hurtbox uint64
}

// DeathEvent is raised once, when health crosses from positive to <= 0.
type DeathEvent struct {
	Entity uint64
}

// AlertEvent is raised when an enemy's detection sensor touches a target.
type AlertEvent struct {
	Enemy  uint64
	Target uint64
}

type PlatePressedEvent struct {
	Plate uint64
	Actor uint64
}

type ExitReachedEvent struct {
	Exit  uint64
	Actor uint64
}

type VictoryEvent struct {
	Zone  uint64
	Actor uint64
}

type DefectionEvent struct {
	Switch uint64
	Actor  uint64
}
