package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"golang.org/x/image/colornames"
)

// roleColors tints each collider by what it does in combat, so a debug run
// shows hitboxes, detection ranges and triggers apart at a glance.
var roleColors = map[component.CollisionKind]color.RGBA{
	component.CollisionSolid:     colornames.Limegreen,
	component.CollisionActor:     colornames.Deepskyblue,
	component.CollisionHitbox:    colornames.Red,
	component.CollisionDetection: colornames.Yellow,
	component.CollisionPlate:     colornames.Orange,
	component.CollisionExit:      colornames.Aquamarine,
	component.CollisionVictory:   colornames.Gold,
	component.CollisionDefection: colornames.Violet,
}

// DrawDebug outlines every collider in the space over the frame, colored
// by its collision role.
func (ps *PhysicsSystem) DrawDebug(w *ecs.World, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := CameraView(w)
	cp.DrawSpace(ps.space, &physicsDebugDrawer{
		screen: screen,
		roles:  ps.roles,
		camX:   camX,
		camY:   camY,
		zoom:   zoom,
	})
}

// physicsDebugDrawer implements cp.Drawer. Primitives are stroked in the
// fill color, which cp takes from ShapeColor.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	roles  map[*cp.Shape]shapeRole
	camX   float64
	camY   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.circle(pos, radius, fill)
	facing := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.line(pos, facing, fill)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.polygon(verts[:count], fill)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.circle(pos, max(size, 2)/2, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.White)
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	c, ok := roleColors[d.roles[shape].kind]
	if !ok {
		c = colornames.Limegreen
	}
	if shape != nil && shape.Sensor() {
		c.A = 0x99
	}
	return toFColor(c)
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) line(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, fromFColor(c), true)
}

func (d *physicsDebugDrawer) polygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.line(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) circle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	x, y := d.toScreen(center)
	vector.StrokeCircle(d.screen, x, y, float32(radius*d.zoom), 1, fromFColor(c), true)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32((v.X - d.camX) * d.zoom), float32((v.Y - d.camY) * d.zoom)
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func fromFColor(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp01(float64(c.R)) * 255),
		G: uint8(common.Clamp01(float64(c.G)) * 255),
		B: uint8(common.Clamp01(float64(c.B)) * 255),
		A: uint8(common.Clamp01(float64(c.A)) * 255),
	}
}
