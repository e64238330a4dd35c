package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/entity"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/ecs/system"
	"github.com/milk9111/turncoat/levels"
	"github.com/milk9111/turncoat/prefabs"
)

type Options struct {
	Seed   uint64
	Logger *log.Logger
	Input  system.InputSource
	Sounds assets.SoundBank

	ViewWidth  float64
	ViewHeight float64

	// Levels overrides the play order; empty uses every embedded level.
	Levels []string
}

// Session owns one running game: the world, the state every system shares
// and the frame pipeline.
type Session struct {
	World    *ecs.World
	State    *resource.State
	Pipeline *system.Pipeline

	levels []string
	start  int
}

func NewSession(opts Options) (*Session, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("session: load tuning: %w", err)
	}
	state := resource.NewState(resource.Options{
		Seed:   opts.Seed,
		Tuning: &tuning,
		Logger: opts.Logger,
	})

	order := opts.Levels
	if len(order) == 0 {
		order = levels.Names()
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("session: no levels")
	}

	return &Session{
		World: ecs.NewWorld(),
		State: state,
		Pipeline: system.NewPipeline(state, system.PipelineOptions{
			Input:      opts.Input,
			Sounds:     opts.Sounds,
			ViewWidth:  opts.ViewWidth,
			ViewHeight: opts.ViewHeight,
		}),
		levels: order,
	}, nil
}

// Levels returns the play order.
func (s *Session) Levels() []string {
	return append([]string(nil), s.levels...)
}

// Start loads the named level (or the first one) and remembers it as the
// level a restart returns to.
func (s *Session) Start(name string) error {
	index := 0
	if name != "" {
		index = s.indexOf(name)
		if index < 0 {
			return fmt.Errorf("session: unknown level %q", name)
		}
	}
	s.start = index
	return s.LoadLevelIndex(index)
}

func (s *Session) indexOf(name string) int {
	name = strings.TrimSuffix(name, ".json")
	for i, n := range s.levels {
		if n == name {
			return i
		}
	}
	return -1
}

// LoadLevel replaces the current level with name. Alarm and playthrough
// counters carry over; a restart is what clears them.
func (s *Session) LoadLevel(name string) error {
	index := s.indexOf(name)
	if index < 0 {
		return fmt.Errorf("session: unknown level %q", name)
	}
	return s.LoadLevelIndex(index)
}

func (s *Session) LoadLevelIndex(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("session: level index %d out of range", index)
	}
	name := s.levels[index]
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.clearLevel()
	if err := s.spawnLevel(lvl); err != nil {
		return fmt.Errorf("session: level %s: %w", name, err)
	}
	if _, ok := s.World.First(component.CameraComponent.Kind()); !ok {
		if _, err := entity.NewCamera(s.World); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	s.State.Playthrough.LevelIndex = index
	s.State.Playthrough.LevelRequest = nil
	s.State.Logger.Info("session: level loaded", "level", name, "index", index)
	return nil
}

// clearLevel drops the previous level's entities without touching the
// alarm or the playthrough.
func (s *Session) clearLevel() {
	s.State.Events.Clear()
	s.State.Despawn.Clear()
	for _, root := range s.World.Query(component.GameRootComponent.Kind()) {
		ecs.DestroyRecursive(s.World, root)
	}
	s.Pipeline.Physics.Reset()
}

// spawnLevel builds every placement, then links plates to their gates once
// every iid has an entity.
func (s *Session) spawnLevel(lvl *levels.Level) error {
	for _, r := range lvl.SolidRects() {
		if _, err := entity.Spawn(s.World, s.State, "wall", r.X, r.Y, map[string]any{"width": r.W, "height": r.H}); err != nil {
			return err
		}
	}

	byIID := make(map[string]ecs.Entity, len(lvl.Entities))
	for _, placement := range lvl.Entities {
		e, err := entity.Spawn(s.World, s.State, placement.Type, placement.X, placement.Y, placement.Props)
		if err != nil {
			return err
		}
		if placement.IID != "" {
			byIID[placement.IID] = e
		}
	}

	for _, placement := range lvl.Entities {
		if placement.Type != "plate" || len(placement.Refs) == 0 {
			continue
		}
		gates := make([]ecs.Entity, 0, len(placement.Refs))
		for _, ref := range placement.Refs {
			gates = append(gates, byIID[ref])
		}
		if err := entity.LinkPlate(s.World, byIID[placement.IID], gates); err != nil {
			return err
		}
	}
	return nil
}

// Update runs one frame, then services a level change requested during it.
func (s *Session) Update() error {
	s.Pipeline.Update(s.World)

	req := s.State.Playthrough.LevelRequest
	if req == nil {
		return nil
	}
	if req.Name != "" {
		return s.LoadLevel(req.Name)
	}
	next := s.State.Playthrough.LevelIndex + 1
	if next >= len(s.levels) {
		s.State.Logger.Warn("session: exit past the last level", "index", s.State.Playthrough.LevelIndex)
		s.State.Playthrough.LevelRequest = nil
		return nil
	}
	return s.LoadLevelIndex(next)
}

// Restart clears everything from the current life and reloads the level
// the session started on.
func (s *Session) Restart() error {
	destroyed := s.State.Reset(s.World)
	s.Pipeline.Physics.Reset()
	s.State.Logger.Info("session: restart", "destroyed", destroyed)
	return s.LoadLevelIndex(s.start)
}

// ReloadTuning rereads tuning.yaml into the running state.
func (s *Session) ReloadTuning() error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return fmt.Errorf("session: reload tuning: %w", err)
	}
	s.State.Tuning = tuning
	return nil
}

// HandleFileChange applies a change reported by a prefabs.Watcher. Actor
// prefabs are read on spawn, so only tuning and compiled scripts need
// refreshing.
func (s *Session) HandleFileChange(change prefabs.Change) error {
	switch change.Kind {
	case prefabs.ChangeScript:
		s.Pipeline.Alert.ReloadScripts()
	case prefabs.ChangeTuning:
		if err := s.ReloadTuning(); err != nil {
			return err
		}
	default:
		return nil
	}
	s.State.Logger.Info("session: reloaded", "kind", change.Kind, "file", change.Path)
	return nil
}
