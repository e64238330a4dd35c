package game

import (
	"testing"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"github.com/milk9111/turncoat/levels"
	"github.com/milk9111/turncoat/prefabs"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(Options{Seed: 3})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Start(""); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func countPlayers(w *ecs.World) int {
	return len(w.Query(component.PlayerTagComponent.Kind()))
}

func TestSessionStart(t *testing.T) {
	s := newSession(t)

	if got, want := s.Levels(), levels.Names(); len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("expected the embedded play order %v, got %v", want, got)
	}
	if countPlayers(s.World) != 1 {
		t.Fatalf("expected one player, got %d", countPlayers(s.World))
	}
	if _, ok := s.World.First(component.CameraComponent.Kind()); !ok {
		t.Fatalf("expected a camera")
	}
	if len(s.World.Query(component.EnemyTagComponent.Kind())) == 0 {
		t.Fatalf("expected enemies in the first level")
	}

	for _, plate := range s.World.Query(component.PlateComponent.Kind()) {
		p, _ := ecs.Get(s.World, plate, component.PlateComponent.Kind())
		if len(p.Gates) == 0 {
			t.Fatalf("plate %v is not linked to any gate", plate)
		}
	}

	if err := s.Start("nope"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func TestSessionLevelProgression(t *testing.T) {
	s := newSession(t)
	camera, _ := s.World.First(component.CameraComponent.Kind())
	s.State.Alarm.Increase(0.4)
	s.State.Playthrough.Kills = 2

	s.State.Playthrough.LevelRequest = &resource.LevelRequest{}
	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.State.Playthrough.LevelIndex != 1 {
		t.Fatalf("expected level 1, got %d", s.State.Playthrough.LevelIndex)
	}
	if s.State.Playthrough.LevelRequest != nil {
		t.Fatalf("the level request should be consumed")
	}
	if s.State.Alarm.Value() < 0.4 || s.State.Playthrough.Kills != 2 {
		t.Fatalf("alarm and kills carry across levels, got alarm %v kills %d", s.State.Alarm.Value(), s.State.Playthrough.Kills)
	}
	if countPlayers(s.World) != 1 {
		t.Fatalf("expected the old level cleared, got %d players", countPlayers(s.World))
	}
	if !s.World.IsAlive(camera) {
		t.Fatalf("the camera survives level changes")
	}

	last := len(s.Levels()) - 1
	s.State.Playthrough.LevelRequest = &resource.LevelRequest{Name: s.Levels()[last]}
	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.State.Playthrough.LevelIndex != last {
		t.Fatalf("expected level %d, got %d", last, s.State.Playthrough.LevelIndex)
	}

	s.State.Playthrough.LevelRequest = &resource.LevelRequest{}
	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.State.Playthrough.LevelIndex != last || s.State.Playthrough.LevelRequest != nil {
		t.Fatalf("an exit past the last level is dropped")
	}
}

func TestSessionRestart(t *testing.T) {
	s := newSession(t)
	camera, _ := s.World.First(component.CameraComponent.Kind())
	for i := 0; i < 10; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	root, _ := s.World.First(component.GameRootComponent.Kind())
	old := append([]ecs.Entity{root}, ecs.ChildrenOf(s.World, root)...)

	for i := 0; i < 3; i++ {
		s.State.Events.Hits.Send(component.HitEvent{Hitbox: 1, Hurtbox: 2})
	}
	s.State.Events.Deaths.Send(component.DeathEvent{Entity: 2})
	s.State.Alarm.Increase(0.9)
	s.State.Playthrough.Defected = true

	if err := s.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if got := s.State.Events.Pending(); got != 0 {
		t.Fatalf("expected no pending events, got %d", got)
	}
	if s.State.Alarm.Value() != 0 {
		t.Fatalf("expected alarm reset, got %v", s.State.Alarm.Value())
	}
	if s.State.Playthrough.Defected || s.State.Playthrough.Frames != 0 {
		t.Fatalf("expected a fresh playthrough, got %+v", s.State.Playthrough)
	}
	for _, e := range old {
		if s.World.IsAlive(e) {
			t.Fatalf("entity %v from the previous life is still alive", e)
		}
	}
	if countPlayers(s.World) != 1 {
		t.Fatalf("expected the start level respawned, got %d players", countPlayers(s.World))
	}
	if !s.World.IsAlive(camera) {
		t.Fatalf("the camera lives outside the game root and survives a restart")
	}
}

func TestSessionHandleFileChange(t *testing.T) {
	s := newSession(t)
	s.State.Tuning.HurtAlarm = 0.5

	for _, path := range []string{"prefabs/scripts/guard_alert.tengo", "prefabs/player.yaml", "prefabs/tuning.yaml"} {
		kind, ok := prefabs.Classify(path)
		if !ok {
			t.Fatalf("%s: not classified", path)
		}
		if err := s.HandleFileChange(prefabs.Change{Path: path, Kind: kind}); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
	}
	if s.State.Tuning != resource.DefaultTuning() {
		t.Fatalf("expected tuning reloaded, got %+v", s.State.Tuning)
	}
}
