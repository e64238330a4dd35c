package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/ecs/resource"
	"golang.org/x/image/colornames"
)

const (
	hudPaddingX  = 12.0
	hudPaddingY  = 12.0
	hudBarWidth  = 160.0
	hudBarHeight = 8.0
)

// DrawHUD reads health, alarm and playthrough state and never writes
// anything back.
func DrawHUD(w *ecs.World, state *resource.State, screen *ebiten.Image) {
	if w == nil || state == nil || screen == nil {
		return
	}

	health := 0.0
	healthMax := 1.0
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && h.Max > 0 {
			health = max(h.Current, 0)
			healthMax = h.Max
		}
	}

	drawBar(screen, hudPaddingY, min(health/healthMax, 1), colornames.Cornflowerblue)
	drawBar(screen, hudPaddingY+hudBarHeight+4, state.Alarm.Value(), colornames.Orangered)

	pt := &state.Playthrough
	text := fmt.Sprintf("HP %.0f/%.0f  ALARM %3.0f%%  KILLS %d  SCORE %d", health, healthMax, state.Alarm.Value()*100, pt.Kills, pt.Score())
	if pt.Defected {
		text += "  [TURNCOAT]"
	}
	ebitenutil.DebugPrintAt(screen, text, int(hudPaddingX), int(hudPaddingY+2*hudBarHeight+10))

	bounds := screen.Bounds()
	switch {
	case pt.Victory:
		ebitenutil.DebugPrintAt(screen, "YOU ESCAPED - press R to play again", bounds.Dx()/2-110, bounds.Dy()/2)
	case pt.PlayerDead:
		ebitenutil.DebugPrintAt(screen, "YOU DIED - press R to restart", bounds.Dx()/2-90, bounds.Dy()/2)
	}
}

func drawBar(screen *ebiten.Image, y, fill float64, clr color.Color) {
	vector.StrokeRect(screen, hudPaddingX, float32(y), hudBarWidth, hudBarHeight, 1, colornames.Lightgrey, false)
	vector.FillRect(screen, hudPaddingX, float32(y), float32(hudBarWidth*max(fill, 0)), hudBarHeight, clr, false)
}
