package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	colorWall       color.Color = colornames.Slategray
	colorGateClosed color.Color = colornames.Sienna
	colorGateOpen   color.Color = color.RGBA{R: 160, G: 82, B: 45, A: 60}
	colorPlate      color.Color = colornames.Darkgoldenrod
	colorPlateDown  color.Color = colornames.Darkolivegreen
	colorExit       color.Color = colornames.Seagreen
	colorVictory    color.Color = colornames.Gold
	colorSwitch     color.Color = colornames.Mediumvioletred
	colorPlayer     color.Color = colornames.Cornflowerblue
	colorEnemy      color.Color = colornames.Crimson
	colorCorpse     color.Color = colornames.Dimgray
	colorHitbox     color.Color = color.RGBA{R: 255, G: 240, B: 120, A: 120}
	colorDetection  color.Color = color.RGBA{R: 255, G: 120, B: 120, A: 90}
)

const (
	flinchAmplitude = 4.0
	lungeAmplitude  = 6.0
)

// RenderSystem draws every collider-backed entity as a flat shape. It is
// the only consumer of the cosmetic animation timers.
type RenderSystem struct {
	// Debug also draws detection radii.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := CameraView(w)
	toScreen := func(x, y float64) (float32, float32) {
		return float32((x - camX) * zoom), float32((y - camY) * zoom)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())

		x, y := t.X, t.Y
		squash := 1.0
		if ecs.Has(w, e, component.ActorComponent.Kind()) {
			dx, dy, s := visualOffset(w, e)
			x, y, squash = x+dx, y+dy, s
		}
		sx, sy := toScreen(x, y)
		clr := shapeColor(w, e)

		switch body.Kind {
		case component.ShapeCircle:
			radius := float32(body.Radius * zoom)
			vector.DrawFilledCircle(screen, sx, sy, radius*float32(squash), clr, true)
			if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok && facing.Sign != 0 {
				vector.StrokeLine(screen, sx, sy, sx+float32(facing.Sign)*radius, sy, 2, colornames.Lightgrey, true)
			}
		default:
			bw, bh := float32(body.Width*zoom), float32(body.Height*zoom)
			vector.FillRect(screen, sx-bw/2, sy-bh/2, bw, bh, clr, false)
		}

		if r.Debug {
			if sensor, ok := ecs.Get(w, e, component.DetectionSensorComponent.Kind()); ok {
				vector.StrokeCircle(screen, sx, sy, float32(sensor.Radius*zoom), 1, colorDetection, true)
			}
		}
	}

	ecs.ForEach2(w, component.AlertPopupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.AlertPopup, t *component.Transform) {
		sx, sy := toScreen(t.X, t.Y)
		ebitenutil.DebugPrintAt(screen, "!", int(sx)-3, int(sy)-8)
	})
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return component.RenderLayerActors
}

// visualOffset turns the visual child's flinch, lunge and death flop into
// a draw offset and a vertical squash factor.
func visualOffset(w *ecs.World, e ecs.Entity) (dx, dy, squash float64) {
	squash = 1
	visual, ok := visualChild(w, e)
	if !ok {
		return 0, 0, squash
	}
	if f, ok := ecs.Get(w, visual, component.FlinchComponent.Kind()); ok && f.Timer > 0 && f.Duration > 0 {
		k := f.Timer / f.Duration
		dx += f.Dir.X * flinchAmplitude * k
		dy += f.Dir.Y * flinchAmplitude * k
	}
	if l, ok := ecs.Get(w, visual, component.AttackLungeComponent.Kind()); ok && l.Active() && l.Duration > 0 {
		dx += l.Sign * lungeAmplitude * math.Sin(math.Pi*l.Timer/l.Duration)
	}
	if d, ok := ecs.Get(w, visual, component.DeathFlopComponent.Kind()); ok {
		squash = math.Max(0.5, 1-d.Elapsed*2)
	}
	return dx, dy, squash
}

func shapeColor(w *ecs.World, e ecs.Entity) color.Color {
	switch {
	case ecs.Has(w, e, component.CorpseComponent.Kind()):
		return colorCorpse
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return colorPlayer
	case ecs.Has(w, e, component.EnemyTagComponent.Kind()):
		return colorEnemy
	case ecs.Has(w, e, component.HitboxComponent.Kind()):
		return colorHitbox
	}
	if gate, ok := ecs.Get(w, e, component.GateComponent.Kind()); ok {
		if gate.Open {
			return colorGateOpen
		}
		return colorGateClosed
	}
	if plate, ok := ecs.Get(w, e, component.PlateComponent.Kind()); ok {
		if plate.Pressed {
			return colorPlateDown
		}
		return colorPlate
	}
	switch {
	case ecs.Has(w, e, component.ExitComponent.Kind()):
		return colorExit
	case ecs.Has(w, e, component.VictoryZoneComponent.Kind()):
		return colorVictory
	case ecs.Has(w, e, component.DefectionSwitchComponent.Kind()):
		return colorSwitch
	}
	return colorWall
}
