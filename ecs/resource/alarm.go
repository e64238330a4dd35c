package resource

// Alarm is the global difficulty meter in [0,1]. Within one life it only
// goes up; Reset is the only way back to zero.
type Alarm struct {
	value float64
}

// Increase adds amount and saturates at 1. Negative amounts are ignored so
// the meter can never decrease through this call.
func (a *Alarm) Increase(amount float64) float64 {
	if a == nil {
		return 0
	}
	if amount > 0 {
		a.value = min(a.value+amount, 1.0)
	}
	return a.value
}

func (a *Alarm) Value() float64 {
	if a == nil {
		return 0
	}
	return a.value
}

func (a *Alarm) Reset() {
	if a == nil {
		return
	}
	a.value = 0
}
