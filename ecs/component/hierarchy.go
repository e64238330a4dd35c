package component

// Parent and Children describe ownership for recursive despawn. They do
// not move anything; Follow does that.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

type Children struct {
	Entities []uint64
}

var ChildrenComponent = NewComponent[Children]()

// Follow copies Target's transform plus an offset every frame after the
// physics step, so followers never fight the physics engine's own
// transform writes.
type Follow struct {
	Target  uint64
	OffsetX float64
	OffsetY float64
}

var FollowComponent = NewComponent[Follow]()
