package component

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/common"
)

// Hitbox is a one-swing attack collider. It gets exactly one physics step
// to register overlaps and is removed by the next combat pass.
type Hitbox struct {
	Owner     uint64
	Faction   Faction
	Damage    float64
	Knockback common.Vec2
	HitSound  assets.SoundKey
	MissSound assets.SoundKey
	Success   bool

	// Stepped is set once the physics step has run with the hitbox in the
	// space; Collected once the intake pass has turned that step's
	// collisions into events.
	Stepped   bool
	Collected bool
}

var HitboxComponent = NewComponent[Hitbox]()
