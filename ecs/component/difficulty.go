package component

import "github.com/milk9111/turncoat/common"

// Curve is a linear tuning axis: AtZero applies at alarm 0, AtMax at alarm 1.
type Curve struct {
	AtZero float64
	AtMax  float64
}

// Eval returns AtMax*alarm + AtZero*(1-alarm) with alarm clamped to [0,1].
func (c Curve) Eval(alarm float64) float64 {
	return common.Lerp(c.AtZero, c.AtMax, common.Clamp01(alarm))
}

// DifficultyCurve holds the enemy stats derived from the alarm level. It is
// never mutated after spawn.
type DifficultyCurve struct {
	Speed          Curve
	DetectRadius   Curve
	FollowRadius   Curve
	AttackRadius   Curve
	AttackCooldown Curve
}

var DifficultyCurveComponent = NewComponent[DifficultyCurve]()
