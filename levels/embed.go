package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// TileSize is the edge length of one grid cell in world units.
const TileSize = 32

type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is one placement. IID is unique within the level and is what Refs
// point at (a plate lists the gates it opens).
type Entity struct {
	IID   string         `json:"iid"`
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
	Refs  []string       `json:"refs,omitempty"`
}

// Rect is a solid run of tiles in world units, centered on X, Y.
type Rect struct {
	X, Y, W, H float64
}

func fileName(name string) string {
	if strings.HasSuffix(name, ".json") {
		return name
	}
	return name + ".json"
}

// Load reads a level by name, with or without the .json suffix.
func Load(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, fileName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Names returns the embedded level names in play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Index returns the play-order position of name, or -1.
func Index(name string) int {
	name = strings.TrimSuffix(name, ".json")
	for i, n := range Names() {
		if n == name {
			return i
		}
	}
	return -1
}

func (l *Level) validate() error {
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	seen := make(map[string]bool, len(l.Entities))
	for _, e := range l.Entities {
		if e.IID == "" {
			continue
		}
		if seen[e.IID] {
			return fmt.Errorf("duplicate iid %q", e.IID)
		}
		seen[e.IID] = true
	}
	for _, e := range l.Entities {
		for _, ref := range e.Refs {
			if !seen[ref] {
				return fmt.Errorf("%s %q references unknown iid %q", e.Type, e.IID, ref)
			}
		}
	}
	return nil
}

// SolidRects merges every physics layer's filled tiles into horizontal runs
// so a wall row becomes one static box instead of one per tile.
func (l *Level) SolidRects() []Rect {
	if l == nil || l.Width <= 0 || l.Height <= 0 {
		return nil
	}
	solid := make([]bool, l.Width*l.Height)
	for i, layer := range l.Layers {
		if i < len(l.LayerMeta) && !l.LayerMeta[i].Physics {
			continue
		}
		for idx, v := range layer {
			if v > 0 {
				solid[idx] = true
			}
		}
	}

	var rects []Rect
	for y := 0; y < l.Height; y++ {
		x := 0
		for x < l.Width {
			if !solid[y*l.Width+x] {
				x++
				continue
			}
			start := x
			for x < l.Width && solid[y*l.Width+x] {
				x++
			}
			run := x - start
			rects = append(rects, Rect{
				X: (float64(start) + float64(run)/2) * TileSize,
				Y: (float64(y) + 0.5) * TileSize,
				W: float64(run * TileSize),
				H: TileSize,
			})
		}
	}
	return rects
}

// Bounds is the level size in world units.
func (l *Level) Bounds() (float64, float64) {
	return float64(l.Width * TileSize), float64(l.Height * TileSize)
}
