package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/driver"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/render"
	"github.com/vovakirdan/rocket-kid/internal/session"
)

// The flight view needs room for the HUD rows and a recognizable rocket.
const (
	minFlightWidth  = 24
	minFlightHeight = 10
)

// FlightModel plays flights in the terminal until one ends without
// auto-restart or the player leaves.
type FlightModel struct {
	ctl      *session.Controller
	tuning   config.RocketConfig
	fps      int
	keys     GameKeyMap
	bindings core.Bindings
	held     *core.HoldTracker

	drv      *driver.Driver
	screen   *core.Screen
	surface  *CellSurface
	renderer *ScreenRenderer
	frame    string

	ended   bool
	outcome session.Outcome
	exited  bool
}

// NewFlightModel mounts a fresh flight on ctl sized to the terminal.
func NewFlightModel(ctl *session.Controller, tuning config.RocketConfig, sr *ScreenRenderer, fps, width, height int) *FlightModel {
	screen := core.NewScreen(max(width, 1), max(height, 1))
	f := &FlightModel{
		ctl:      ctl,
		tuning:   tuning,
		fps:      fps,
		keys:     DefaultGameKeyMap(),
		bindings: core.DefaultBindings(),
		held:     core.NewHoldTracker(),
		screen:   screen,
		surface:  NewCellSurface(screen, tuning.Canvas.Width, tuning.Canvas.Height),
		renderer: sr,
	}
	ctl.Start()
	f.drv = driver.New(f.tick, f.draw)
	f.draw()
	return f
}

// Init schedules the first frame.
func (f *FlightModel) Init() tea.Cmd {
	return frameCmd(f.drv.ID(), f.fps)
}

// Update handles a message and returns the next command.
func (f *FlightModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Quit):
			f.drv.Stop()
			return tea.Quit
		case key.Matches(msg, f.keys.Exit):
			f.drv.Stop()
			f.exited = true
			return nil
		}
		f.held.PressAt(keyName(msg), time.Now())

	case tea.WindowSizeMsg:
		f.screen.Resize(max(msg.Width, 1), max(msg.Height, 1))
		f.surface.Rescale()
		f.draw()

	case FrameMsg:
		if msg.Driver != f.drv.ID() {
			return nil
		}
		f.held.Expire(msg.At)
		if f.drv.Step(msg.At) {
			return frameCmd(f.drv.ID(), f.fps)
		}
	}
	return nil
}

func (f *FlightModel) tick(elapsed time.Duration) {
	out, ok := f.ctl.Tick(elapsed, f.held.Controls(f.bindings))
	if !ok {
		return
	}
	if out.Restarted {
		f.held.Reset()
		return
	}
	f.ended = true
	f.outcome = out
	f.drv.Stop()
}

func (f *FlightModel) draw() {
	g := f.ctl.Game()
	if g == nil {
		return
	}
	tr := i18n.For(f.ctl.Settings().Language)
	f.screen.ClearTo(core.ColorBlack)
	if f.screen.Width() < minFlightWidth || f.screen.Height() < minFlightHeight {
		f.drawTooSmall(tr)
		f.frame = f.renderer.Render(f.screen)
		return
	}
	render.Draw(f.surface, g.State())
	hud{
		snap:      g.Snapshot(),
		highScore: f.ctl.HighScore(),
		maxHealth: int(f.tuning.Rocket.MaxHealth),
		maxSpeed:  f.tuning.Space.MaxSpeed,
		tr:        tr,
	}.draw(f.screen)
	f.frame = f.renderer.Render(f.screen)
}

// drawTooSmall boxes a notice in the middle of the screen. The flight keeps
// running underneath.
func (f *FlightModel) drawTooSmall(tr i18n.Strings) {
	w, h := f.screen.Width(), f.screen.Height()
	box := core.CenteredRect(w, h, min(len([]rune(tr.TooSmall))+4, w), min(3, h))
	f.screen.DrawRect(box, ' ')
	f.screen.DrawBox(box)
	f.screen.DrawTextCentered(box.Y+box.H/2, tr.TooSmall)
}

// View returns the last drawn frame.
func (f *FlightModel) View() string {
	return f.frame
}

// Ended reports whether the flight is over and the game-over screen is due.
func (f *FlightModel) Ended() (session.Outcome, bool) {
	return f.outcome, f.ended
}

// Exited reports whether the player left for the main menu.
func (f *FlightModel) Exited() bool {
	return f.exited
}
