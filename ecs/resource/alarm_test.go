package resource

import "testing"

func TestAlarmIncrease(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    float64
	}{
		{"accumulates", []float64{0.1, 0.2}, 0.3},
		{"saturates_at_one", []float64{0.7, 0.7}, 1},
		{"ignores_negative", []float64{0.4, -0.3}, 0.4},
		{"ignores_zero", []float64{0, 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a Alarm
			prev := a.Value()
			for _, amt := range tc.amounts {
				got := a.Increase(amt)
				if got < prev {
					t.Fatalf("alarm decreased from %v to %v", prev, got)
				}
				if got < 0 || got > 1 {
					t.Fatalf("alarm %v out of [0,1]", got)
				}
				prev = got
			}
			if diff := a.Value() - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, a.Value())
			}
		})
	}
}

func TestAlarmReset(t *testing.T) {
	var a Alarm
	a.Increase(0.9)
	a.Reset()
	if a.Value() != 0 {
		t.Fatalf("expected 0 after reset, got %v", a.Value())
	}
}
