// Package window runs flights in a desktop window with Ebiten. Unlike a
// terminal, the window reports key releases, so held keys are exact.
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/driver"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/render"
	"github.com/vovakirdan/rocket-kid/internal/session"
	"github.com/vovakirdan/rocket-kid/internal/sim"
)

// Game implements ebiten.Game around a session controller.
type Game struct {
	ctl      *session.Controller
	tuning   config.RocketConfig
	bindings core.Bindings
	tracker  *core.Tracker
	surface  *ImageSurface
	keys     []ebiten.Key

	drv     *driver.Driver
	ended   bool
	outcome session.Outcome
}

// New creates a window game and mounts the first flight.
func New(ctl *session.Controller, tuning config.RocketConfig) *Game {
	g := &Game{
		ctl:      ctl,
		tuning:   tuning,
		bindings: core.DefaultBindings(),
		tracker:  core.NewTracker(),
		surface:  NewImageSurface(),
	}
	g.start()
	return g
}

func (g *Game) start() {
	g.ctl.Start()
	g.ended = false
	g.drv = driver.New(g.tick, nil)
}

func (g *Game) tick(elapsed time.Duration) {
	out, ok := g.ctl.Tick(elapsed, g.tracker.Controls(g.bindings))
	if ok && !out.Restarted {
		g.ended = true
		g.outcome = out
		g.drv.Stop()
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.tracker.Press(keyName(k))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.tracker.Release(keyName(k))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ended {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.start()
		}
		return nil
	}
	g.drv.Step(time.Now())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	game := g.ctl.Game()
	g.surface.Target(screen)
	render.Draw(g.surface, game.State())

	tr := i18n.For(g.ctl.Settings().Language)
	snap := game.Snapshot()
	alt := fmt.Sprintf("%s %dm", tr.Altitude, snap.Altitude)
	if snap.Phase == sim.PhaseSpace {
		alt = fmt.Sprintf("%s  %s %d/%d", tr.Space, tr.Speed, snap.SpaceSpeed, g.tuning.Space.MaxSpeed)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", tr.Score, snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, alt, 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", tr.Health, snap.Health), 10, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", tr.HighScore, g.ctl.HighScore()), int(g.tuning.Canvas.Width)-150, 10)

	w, h := g.tuning.Canvas.Width, g.tuning.Canvas.Height
	if snap.Phase == sim.PhaseLaunch && snap.Countdown == 0 {
		g.surface.Text(w/2, h/2+60, 24, tr.Launch, render.Bullet)
	}
	if g.ended {
		g.surface.FillRect(0, 0, w, h, render.WithAlpha(render.Space, 0.6))
		g.surface.Text(w/2, h/2-60, 48, tr.GameOver, render.RocketBody)
		g.surface.Text(w/2, h/2, 24, fmt.Sprintf("%s: %d", tr.Score, g.outcome.Score), render.Star)
		g.surface.Text(w/2, h/2+40, 24, fmt.Sprintf("%s: %d", tr.HighScore, g.outcome.HighScore), render.Bullet)
		g.surface.Text(w/2, h/2+100, 16, "Enter: "+tr.Restart+"   Esc: "+tr.Quit, render.Star)
	}
}

// Layout implements ebiten.Game. The window always shows the logical canvas.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.tuning.Canvas.Width), int(g.tuning.Canvas.Height)
}

// Run opens the window and blocks until it closes.
func Run(g *Game, fps int) error {
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle(i18n.For(g.ctl.Settings().Language).Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
