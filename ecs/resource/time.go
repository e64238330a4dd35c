package resource

// DefaultDelta is one tick at ebiten's default 60 TPS.
const DefaultDelta = 1.0 / 60.0

// Time is the simulation clock. Delta is the length of the current step in
// seconds.
type Time struct {
	Delta   float64
	Elapsed float64
}

func (t *Time) Advance() {
	if t == nil {
		return
	}
	if t.Delta <= 0 {
		t.Delta = DefaultDelta
	}
	t.Elapsed += t.Delta
}
