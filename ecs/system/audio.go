package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/resource"
)

// AudioSystem hands the frame's queued sounds to the sound bank. Without a
// bank the queue is still drained.
type AudioSystem struct {
	state *resource.State
	bank  assets.SoundBank
}

func NewAudioSystem(state *resource.State, bank assets.SoundBank) *AudioSystem {
	return &AudioSystem{state: state, bank: bank}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || a.state == nil {
		return
	}
	for _, key := range a.state.Sounds.Drain() {
		if a.bank != nil {
			a.bank.Play(key)
		}
	}
}
