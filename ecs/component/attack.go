package component

import "github.com/milk9111/turncoat/assets"

// AttackProfile describes the hitbox an actor spawns when it swings.
type AttackProfile struct {
	Damage    float64
	Knockback float64
	Reach     float64
	Radius    float64
	HitSound  assets.SoundKey
	MissSound assets.SoundKey
}

var AttackProfileComponent = NewComponent[AttackProfile]()
