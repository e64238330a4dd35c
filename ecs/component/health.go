package component

// Health may go negative: a corpse keeps taking damage and the sign is the
// "already dead" signal. Max never changes after spawn.
type Health struct {
	Current float64
	Max     float64
}

var HealthComponent = NewComponent[Health]()
