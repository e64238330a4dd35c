package component

type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is written by gameplay systems and integrated by the physics
// step, which writes the post-step value back.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
