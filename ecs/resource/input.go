package resource

// InputDenial suppresses player input while any holder (cutscene, dialogue)
// is active. Holders are counted so nested denials release correctly.
type InputDenial struct {
	holders map[string]struct{}
}

func (d *InputDenial) Deny(holder string) {
	if d == nil {
		return
	}
	if d.holders == nil {
		d.holders = make(map[string]struct{})
	}
	d.holders[holder] = struct{}{}
}

func (d *InputDenial) Allow(holder string) {
	if d == nil {
		return
	}
	delete(d.holders, holder)
}

func (d *InputDenial) Active() bool {
	return d != nil && len(d.holders) > 0
}

func (d *InputDenial) Reset() {
	if d == nil {
		return
	}
	d.holders = nil
}
