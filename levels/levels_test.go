package levels

import (
	"reflect"
	"testing"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	for i, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if Index(name+".json") != i {
				t.Fatalf("expected index %d, got %d", i, Index(name))
			}
			players := 0
			for _, e := range lvl.Entities {
				if e.Type == "player" {
					players++
				}
			}
			if players != 1 {
				t.Fatalf("expected exactly one player placement, got %d", players)
			}
			if len(lvl.SolidRects()) == 0 {
				t.Fatalf("expected some walls")
			}
		})
	}
	if Index("missing") != -1 {
		t.Fatalf("expected -1 for an unknown level")
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("missing"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		wantErr bool
	}{
		{
			name:  "ok",
			level: Level{Width: 2, Height: 1, Layers: [][]int{{1, 0}}, Entities: []Entity{{IID: "g", Type: "gate"}, {IID: "p", Type: "plate", Refs: []string{"g"}}}},
		},
		{
			name:    "short_layer",
			level:   Level{Width: 2, Height: 2, Layers: [][]int{{1, 0, 1}}},
			wantErr: true,
		},
		{
			name:    "duplicate_iid",
			level:   Level{Entities: []Entity{{IID: "a"}, {IID: "a"}}},
			wantErr: true,
		},
		{
			name:    "dangling_ref",
			level:   Level{Entities: []Entity{{IID: "p", Type: "plate", Refs: []string{"nope"}}}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSolidRectsMergesRuns(t *testing.T) {
	lvl := &Level{
		Width:  4,
		Height: 2,
		Layers: [][]int{
			{1, 1, 0, 1, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 7, 7, 7},
		},
		LayerMeta: []LayerMeta{{Physics: true}, {Physics: false}},
	}

	want := []Rect{
		{X: 32, Y: 16, W: 64, H: 32},
		{X: 112, Y: 16, W: 32, H: 32},
	}
	if got := lvl.SolidRects(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Without metadata every layer is solid.
	lvl.LayerMeta = nil
	if got := len(lvl.SolidRects()); got != 3 {
		t.Fatalf("expected 3 runs with every layer solid, got %d", got)
	}

	w, h := lvl.Bounds()
	if w != 128 || h != 64 {
		t.Fatalf("expected bounds 128x64, got %vx%v", w, h)
	}
}
