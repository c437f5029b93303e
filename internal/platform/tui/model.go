package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/session"
	"github.com/vovakirdan/rocket-kid/internal/storage"
)

// Scores is the score storage the app reads and writes. *storage.Store
// satisfies it.
type Scores interface {
	session.ScoreStore
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// Deps wires an App.
type Deps struct {
	Tuning       config.RocketConfig
	Settings     config.Settings
	SettingsPath string // empty keeps settings in memory
	Scores       Scores // nil plays without persistence
	Sound        session.SoundPlayer
	Player       string
	Runtime      core.RuntimeConfig
	Logger       *log.Logger
	// Renderer styles output; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

type screenID int

const (
	screenMenu screenID = iota
	screenSettings
	screenScores
	screenFlight
	screenGameOver
)

// App is the top-level Bubble Tea model: menu -> flight -> game over -> menu.
type App struct {
	deps     Deps
	ctl      *session.Controller
	styles   styles
	renderer *ScreenRenderer
	logger   *log.Logger

	width, height int
	screen        screenID
	notice        string

	menu     MenuModel
	settings SettingsModel
	scores   ScoreboardModel
	flight   *FlightModel
	gameOver GameOverModel
	quitting bool
}

// NewApp creates the app on the main menu.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Runtime.TickRate <= 0 {
		deps.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if deps.Renderer == nil {
		deps.Renderer = lipgloss.DefaultRenderer()
	}

	cfg := session.Config{
		Tuning:       deps.Tuning,
		Settings:     deps.Settings,
		SettingsPath: deps.SettingsPath,
		Sound:        deps.Sound,
		Player:       deps.Player,
		Seed:         deps.Runtime.Seed,
		Logger:       deps.Logger,
	}
	if deps.Scores != nil {
		cfg.Store = deps.Scores
	}

	return App{
		deps:     deps,
		ctl:      session.New(cfg),
		styles:   newStyles(deps.Renderer),
		renderer: NewScreenRenderer(deps.Renderer),
		logger:   deps.Logger.WithPrefix("tui"),
		width:    deps.Runtime.ScreenW,
		height:   deps.Runtime.ScreenH,
		menu:     NewMenuModel(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = wsm.Width, wsm.Height
		a.scores.width, a.scores.height = wsm.Width, wsm.Height
	}

	switch a.screen {
	case screenFlight:
		return a.updateFlight(msg)
	case screenScores:
		var cmd tea.Cmd
		a.scores, cmd = a.scores.Update(msg)
		if a.scores.Done() {
			a.screen = screenMenu
		}
		return a, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	a.notice = ""

	switch a.screen {
	case screenMenu:
		a.menu = a.menu.Update(k)
		return a.afterMenu()
	case screenSettings:
		a.settings = a.settings.Update(k)
		a.afterSettings()
	case screenGameOver:
		a.gameOver = a.gameOver.Update(k)
		switch a.gameOver.Chosen() {
		case gameOverRestart:
			return a.startFlight()
		case gameOverMenu:
			a.screen = screenMenu
		}
	}
	return a, nil
}

func (a App) afterMenu() (tea.Model, tea.Cmd) {
	choice := a.menu.Chosen()
	a.menu.chosen = menuNone
	switch choice {
	case menuPlay:
		return a.startFlight()
	case menuSettings:
		a.settings = NewSettingsModel(a.ctl.Settings())
		a.screen = screenSettings
	case menuScores:
		a.scores = NewScoreboardModel(a.deps.Scores, a.styles, a.width, a.height)
		a.screen = screenScores
	case menuQuit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) afterSettings() {
	switch {
	case a.settings.Saved():
		if err := a.ctl.UpdateSettings(a.settings.Draft()); err != nil {
			a.logger.Warn("cannot save settings", "err", err)
			a.notice = err.Error()
		}
		a.screen = screenMenu
	case a.settings.Cancelled():
		a.screen = screenMenu
	}
}

func (a App) startFlight() (tea.Model, tea.Cmd) {
	a.flight = NewFlightModel(a.ctl, a.deps.Tuning, a.renderer, a.deps.Runtime.TickRate, a.width, a.height)
	a.screen = screenFlight
	return a, a.flight.Init()
}

func (a App) updateFlight(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.flight.Update(msg)
	if out, ended := a.flight.Ended(); ended {
		a.gameOver = NewGameOverModel(out)
		a.screen = screenGameOver
		a.flight = nil
		return a, nil
	}
	if a.flight.Exited() {
		a.screen = screenMenu
		a.flight = nil
		return a, nil
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	tr := i18n.For(a.ctl.Settings().Language)

	switch a.screen {
	case screenFlight:
		return a.flight.View()
	case screenSettings:
		return a.settings.View(a.styles, a.width, a.height)
	case screenScores:
		return a.scores.View(a.styles, tr)
	case screenGameOver:
		return a.gameOver.View(a.styles, tr, a.width, a.height)
	}

	view := a.menu.View(a.styles, tr, a.ctl.HighScore(), a.width, a.height)
	if a.notice != "" {
		view += "\n" + a.styles.record.Render(a.notice)
	}
	return view
}

// Run starts the app in the local terminal.
func Run(deps Deps) error {
	p := tea.NewProgram(NewApp(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
