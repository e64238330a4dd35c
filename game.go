package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs/system"
	"github.com/milk9111/turncoat/game"
	"github.com/milk9111/turncoat/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type GameOptions struct {
	Level  string
	Debug  bool
	Seed   uint64
	Logger *log.Logger
	Sounds *assets.Library
}

// Game adapts a game.Session to ebiten's loop.
type Game struct {
	session  *game.Session
	renderer *system.RenderSystem
	logger   *log.Logger
	debug    bool

	fileChanges <-chan prefabs.Change
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		renderer: system.NewRenderSystem(),
		logger:   opts.Logger,
		debug:    opts.Debug,
	}
	g.renderer.Debug = opts.Debug

	var sounds assets.SoundBank
	if opts.Sounds != nil {
		sounds = opts.Sounds
	}
	session, err := game.NewSession(game.Options{
		Seed:       opts.Seed,
		Logger:     opts.Logger,
		Input:      &system.EbitenInput{ScreenToWorld: g.screenToWorld},
		Sounds:     sounds,
		ViewWidth:  baseWidth,
		ViewHeight: baseHeight,
	})
	if err != nil {
		return nil, err
	}
	if err := session.Start(opts.Level); err != nil {
		return nil, err
	}
	g.session = session
	return g, nil
}

// Watch applies file changes reported by w at the start of each frame.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.fileChanges = w.Events
}

func (g *Game) screenToWorld(x, y float64) (float64, float64) {
	if g.session == nil {
		return x, y
	}
	camX, camY, zoom := system.CameraView(g.session.World)
	return camX + x/zoom, camY + y/zoom
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.drainFileChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		return nil
	}
	return g.session.Update()
}

func (g *Game) drainFileChanges() {
	for g.fileChanges != nil {
		select {
		case change, ok := <-g.fileChanges:
			if !ok {
				g.fileChanges = nil
				return
			}
			if err := g.session.HandleFileChange(change); err != nil {
				g.logger.Error("reload failed", "file", change.Path, "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(g.session.World, screen)
	if g.debug {
		g.session.Pipeline.Physics.DrawDebug(g.session.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), baseWidth-90, 4)
	}
	system.DrawHUD(g.session.World, g.session.State, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

var _ ebiten.Game = (*Game)(nil)
