package component

// Plate toggles its linked gates the first time anything steps on it and
// never again.
type Plate struct {
	Gates   []uint64
	Pressed bool
}

var PlateComponent = NewComponent[Plate]()

// Gate blocks actors while closed.
type Gate struct {
	Open bool
}

// Filter returns the collision filter for the gate's current state.
func (g Gate) Filter() CollisionFilter {
	if g.Open {
		return CollisionFilter{Membership: LayerGate}
	}
	return CollisionFilter{Membership: LayerGate, Mask: LayerBodies}
}

var GateComponent = NewComponent[Gate]()
