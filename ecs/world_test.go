package ecs

import (
	"testing"

	"github.com/milk9111/turncoat/ecs/component"
)

type position struct{ X, Y float64 }

type hp struct{ Current float64 }

type label string

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("created entity %d is not valid", i)
				}
				ents = append(ents, e)
			}
			if got := len(Entities(w)); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for a live entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should return false")
			}
			if got := len(Entities(w)); got != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
			}
		})
	}
}

func TestWorldStaleHandle(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[hp]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, &hp{Current: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused == old {
		t.Fatalf("reused slot must get a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle still resolves a component")
	}
	if Has(w, reused, kind) {
		t.Fatalf("new entity inherited a component from the destroyed one")
	}
	if err := Add(w, old, kind, &hp{}); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	posKind := component.NewComponentKind[position]()
	hpKind := component.NewComponentKind[hp]()
	labelKind := component.NewComponentKind[label]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_position_to_e1",
			setup: func() error { return Add(w, e1, posKind, &position{X: 3, Y: 4}) },
			check: func(t *testing.T) {
				p, ok := Get(w, e1, posKind)
				if !ok || p.X != 3 || p.Y != 4 {
					t.Fatalf("expected (3,4), got %v ok=%v", p, ok)
				}
				p.X = 7
				if again, _ := Get(w, e1, posKind); again.X != 7 {
					t.Fatalf("Get should return the stored pointer")
				}
			},
			teardown: func() bool { return Remove(w, e1, posKind) },
		},
		{
			name: "hp_on_both",
			setup: func() error {
				if err := Add(w, e1, hpKind, &hp{Current: 1}); err != nil {
					return err
				}
				return Add(w, e2, hpKind, &hp{Current: 2})
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hpKind) || !Has(w, e2, hpKind) {
					t.Fatalf("expected both entities to have hp")
				}
			},
			teardown: func() bool { return Remove(w, e1, hpKind) },
		},
		{
			name:  "label_replaced",
			setup: func() error { return Add(w, e2, labelKind, ptr(label("guard"))) },
			check: func(t *testing.T) {
				if err := Add(w, e2, labelKind, ptr(label("brute"))); err != nil {
					t.Fatalf("replace: %v", err)
				}
				if l, _ := Get(w, e2, labelKind); *l != "brute" {
					t.Fatalf("expected replaced value, got %q", *l)
				}
			},
			teardown: func() bool { return Remove(w, e2, labelKind) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[hp](w, e1, hpKind, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func ptr[T any](v T) *T { return &v }

func TestForEach(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[hp]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e1, kind, &hp{Current: 1})
	_ = Add(w, e3, kind, &hp{Current: 3})

	seen := map[Entity]float64{}
	ForEach(w, kind, func(e Entity, h *hp) { seen[e] = h.Current })

	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachIntersections(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "only_full_match",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[hp]()
				kb := component.NewComponentKind[position]()
				kc := component.NewComponentKind[label]()

				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				_ = Add(w, e1, ka, &hp{})
				_ = Add(w, e2, ka, &hp{})
				_ = Add(w, e2, kb, &position{})
				_ = Add(w, e2, kc, ptr(label("x")))
				_ = Add(w, e3, kb, &position{})

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *hp, _ *position, _ *label) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}

				var pairs []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *hp, _ *position) { pairs = append(pairs, e) })
				if len(pairs) != 1 || pairs[0] != e2 {
					t.Fatalf("expected only e2 for ForEach2, got %v", pairs)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[hp]()
				kb := component.NewComponentKind[position]()
				e := CreateEntity(w)
				_ = Add(w, e, ka, &hp{})
				_ = Add(w, e, kb, &position{})
				DestroyEntity(w, e)

				n := 0
				ForEach2(w, ka, kb, func(Entity, *hp, *position) { n++ })
				if n != 0 {
					t.Fatalf("expected no results after destroy, got %d", n)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[hp]()
				kb := component.NewComponentKind[position]()
				kc := component.NewComponentKind[label]()
				kd := component.NewComponentKind[int]()
				e := CreateEntity(w)
				_ = Add(w, e, ka, &hp{})

				n := 0
				ForEach4(w, ka, kb, kc, kd, func(Entity, *hp, *position, *label, *int) { n++ })
				if n != 0 {
					t.Fatalf("expected empty when other stores are missing, got %d", n)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponentKind[label]()
	pos := component.NewComponentKind[position]()

	if _, ok := w.First(tag); ok {
		t.Fatalf("First on an empty store should fail")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, tag, ptr(label("a")))
	_ = Add(w, a, pos, &position{})
	_ = Add(w, b, pos, &position{})

	if got := w.Query(tag, pos); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := w.Query(pos); len(got) != 2 {
		t.Fatalf("expected two entities with position, got %v", got)
	}
	if e, ok := First(w, tag); !ok || e != a {
		t.Fatalf("expected First to return a, got %v ok=%v", e, ok)
	}

	DestroyEntity(w, a)
	if _, ok := w.First(tag); ok {
		t.Fatalf("First should skip destroyed entities")
	}
}
