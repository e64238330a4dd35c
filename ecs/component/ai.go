package component

// EnemyAI drives the perception/pursuit state machine. Target is a weak
// reference: a despawned target just fails its lookup.
//
//	Idle      Target == 0
//	Pursuing  Target != 0, distance > AttackRadius
//	Attacking Target != 0, distance <= AttackRadius and CooldownTimer <= 0
type EnemyAI struct {
	FollowRadius   float64
	AttackRadius   float64
	AttackCooldown float64
	CooldownTimer  float64
	Target         uint64
}

func (a *EnemyAI) HasTarget() bool { return a != nil && a.Target != 0 }

var EnemyAIComponent = NewComponent[EnemyAI]()

// DetectionSensor is the live detection radius. The physics system keeps
// the sensor shape's radius equal to it.
type DetectionSensor struct {
	Radius float64
}

var DetectionSensorComponent = NewComponent[DetectionSensor]()

// AlertScript names a tengo script run when the enemy becomes alerted.
type AlertScript struct {
	Path string
}

var AlertScriptComponent = NewComponent[AlertScript]()
