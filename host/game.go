// Package host runs a simulation inside an ebiten window.
package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/milk9111/simcore/config"
	"github.com/milk9111/simcore/scene"
	"github.com/milk9111/simcore/sim"
)

const flushInterval = 60

var background = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// Game implements ebiten.Game over a Simulation. When a watcher is set the
// scene is rebuilt whenever its file changes.
type Game struct {
	sim     *sim.Simulation
	cfg     *config.Config
	logger  zerolog.Logger
	source  string
	watcher *scene.Watcher

	frames int
	paused bool
	hud    bool
}

// NewGame loads the scene named by source (a file path or a bundled scene
// name) into a fresh simulation driven by keyboard and gamepad input.
func NewGame(cfg *config.Config, logger zerolog.Logger, source string) (*Game, error) {
	sc, err := scene.Load(source)
	if err != nil {
		return nil, err
	}
	s := sim.New(cfg, logger, NewInputSystem())
	if _, err := s.Load(sc); err != nil {
		return nil, err
	}
	return &Game{
		sim:    s,
		cfg:    cfg,
		logger: logger,
		source: source,
		hud:    true,
	}, nil
}

// Simulation returns the simulation the game drives.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Watch reloads the scene from disk whenever w reports a change.
func (g *Game) Watch(w *scene.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		return nil
	}

	g.sim.Step()
	g.frames++
	if g.frames%flushInterval == 0 {
		if err := g.sim.Flush(); err != nil {
			g.logger.Error().Err(err).Msg("trace flush failed")
		}
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info().Str("path", path).Msg("scene changed")
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn().Err(err).Msg("scene watcher")
		default:
			return
		}
	}
}

func (g *Game) reload() {
	sc, err := scene.Load(g.source)
	if err != nil {
		g.logger.Error().Err(err).Str("scene", g.source).Msg("reload failed, keeping current scene")
		return
	}
	if _, err := g.sim.Load(sc); err != nil {
		g.logger.Error().Err(err).Str("scene", g.source).Msg("reload failed")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	DrawWorld(g.sim.World, screen)
	if g.hud {
		DrawHUD(g.sim.World, g.sim.Physics, screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close flushes the trace and stops watching. Closing again is a no-op.
func (g *Game) Close() error {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	return g.sim.Close()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w := g.cfg.Window
	scale := w.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.Width)*scale), int(float64(w.Height)*scale))
	ebiten.SetWindowTitle("simcore - " + g.source)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.TPS)
	defer g.Close()
	return ebiten.RunGame(g)
}
