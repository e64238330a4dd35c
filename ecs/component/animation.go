package component

import "github.com/milk9111/turncoat/common"

// Flinch is the self-resetting hurt wobble on an actor's visual child.
type Flinch struct {
	Timer    float64
	Duration float64
	Dir      common.Vec2
}

var FlinchComponent = NewComponent[Flinch]()

// AttackLunge is the swing lunge. Sign keeps the horizontal direction of
// the last swing after the timer runs out.
type AttackLunge struct {
	Timer    float64
	Duration float64
	Sign     float64
}

func (a *AttackLunge) Active() bool { return a != nil && a.Timer > 0 }

var AttackLungeComponent = NewComponent[AttackLunge]()

// DeathFlop is attached to a visual child when its actor dies.
type DeathFlop struct {
	Elapsed float64
}

var DeathFlopComponent = NewComponent[DeathFlop]()

// Facing is the horizontal direction an actor looks at: -1 or 1.
type Facing struct {
	Sign float64
}

var FacingComponent = NewComponent[Facing]()
