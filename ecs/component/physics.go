package component

import "github.com/jakecoffman/cp"

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are owned by the physics system; gameplay code only edits
// the configuration fields.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Kind      ShapeKind
	Radius    float64
	Width     float64
	Height    float64
	Mass      float64
	Friction  float64
	Static    bool
	Sensor    bool
	Collision CollisionKind
	Filter    CollisionFilter
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
