package component

// Lifetime removes the entity (through the despawn queue) after Remaining
// seconds.
type Lifetime struct {
	Remaining float64
}

var LifetimeComponent = NewComponent[Lifetime]()
