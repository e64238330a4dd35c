package resource

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

// State is the simulation state shared by every system. It is passed to
// systems explicitly at construction rather than living in a global, so a
// pipeline can be built and tested in isolation.
type State struct {
	Alarm       Alarm
	Playthrough Playthrough
	Events      Events
	Despawn     ecs.DespawnQueue
	Sounds      SoundQueue
	Input       InputDenial
	Time        Time
	Tuning      Tuning

	Rand   *rand.Rand
	Logger *log.Logger
}

type Options struct {
	Seed   uint64
	Tuning *Tuning
	Logger *log.Logger
}

func NewState(opts Options) *State {
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		Time:   Time{Delta: DefaultDelta},
		Tuning: tuning,
		Rand:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		Logger: logger,
	}
}

// Reset is the restart transition. In one step it drops every pending
// event, collision, sound and despawn, zeroes the alarm, clears the
// playthrough and level selection, and destroys everything owned by the
// game root. Nothing from the previous life can be observed afterwards.
func (s *State) Reset(w *ecs.World) int {
	if s == nil {
		return 0
	}
	s.Events.Clear()
	s.Despawn.Clear()
	s.Sounds.Clear()
	s.Input.Reset()
	s.Alarm.Reset()
	s.Playthrough.Reset()
	s.Time.Elapsed = 0

	destroyed := 0
	if w != nil {
		for _, root := range w.Query(component.GameRootComponent.Kind()) {
			destroyed += ecs.DestroyRecursive(w, root)
		}
	}
	s.Logger.Debug("state: reset", "destroyed", destroyed)
	return destroyed
}
