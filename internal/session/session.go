// Package session runs one player's flights back to back: it mounts a fresh
// simulation per play, records finished flights, tracks the high score and
// owns the player's settings.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-kid/internal/audio"
	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/sim"
)

// ScoreStore persists finished flights. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(player string, score int) (int64, error)
	HighScore() (int, error)
}

// SoundPlayer is a sound sink with a master volume. *audio.Service satisfies it.
type SoundPlayer interface {
	core.SoundSink
	SetVolume(v int)
}

// Config wires a Controller.
type Config struct {
	Tuning   config.RocketConfig
	Settings config.Settings
	// SettingsPath is where UpdateSettings persists. Empty keeps settings in memory.
	SettingsPath string
	Store        ScoreStore  // optional
	Sound        SoundPlayer // optional
	Player       string
	// Seed for the first flight; later flights add the play count. Zero
	// derives seeds from the clock.
	Seed   int64
	Now    func() time.Time
	Logger *log.Logger
}

// Outcome describes a flight that just ended.
type Outcome struct {
	Score     int
	HighScore int
	NewRecord bool
	// Restarted is set when auto-restart already mounted the next flight.
	Restarted bool
}

// Controller is not safe for concurrent use; each host session owns one.
type Controller struct {
	cfg      Config
	settings config.Settings
	logger   *log.Logger

	game      *sim.Game
	highScore int
	plays     int64
	finished  *int
	last      Outcome
}

// New creates a controller and reads the stored high score. A failing store
// is logged and treated as empty.
func New(cfg Config) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	cfg.Settings.Normalize()

	c := &Controller{
		cfg:      cfg,
		settings: cfg.Settings,
		logger:   cfg.Logger.WithPrefix("session"),
	}
	if cfg.Store != nil {
		high, err := cfg.Store.HighScore()
		if err != nil {
			c.logger.Warn("cannot read high score", "err", err)
		}
		c.highScore = high
	}
	if cfg.Sound != nil {
		cfg.Sound.SetVolume(c.settings.Volume)
	}
	return c
}

// Start mounts a fresh flight on the launch pad and returns it.
func (c *Controller) Start() *sim.Game {
	seed := c.cfg.Seed
	if seed == 0 {
		seed = c.cfg.Now().UnixNano()
	}
	seed += c.plays
	c.plays++
	c.finished = nil

	var sink core.SoundSink = core.NopSink{}
	if c.cfg.Sound != nil {
		sink = audio.Gate{Sink: c.cfg.Sound, Toggles: c.settings.Sounds}
	}

	c.game = sim.New(sim.Options{
		Tuning:            c.cfg.Tuning,
		ObstacleCollision: c.settings.ObstacleCollision,
		Shooting:          c.settings.Shooting,
		Seed:              seed,
		Sound:             sink,
		OnGameOver: func(score int) {
			c.finished = &score
		},
		Now: c.cfg.Now,
	})
	c.logger.Debug("flight started", "player", c.cfg.Player, "seed", seed)
	return c.game
}

// Game returns the current flight, or nil before Start.
func (c *Controller) Game() *sim.Game {
	return c.game
}

// Tick advances the current flight. When the flight ends during this tick it
// records the score and returns the outcome with ok set; with auto-restart on,
// the next flight is already mounted.
func (c *Controller) Tick(elapsed time.Duration, held core.Controls) (out Outcome, ok bool) {
	if c.game == nil {
		return Outcome{}, false
	}
	c.game.Tick(elapsed, held)
	if c.finished == nil {
		return Outcome{}, false
	}

	score := *c.finished
	c.finished = nil
	out = c.record(score)
	if c.settings.AutoRestart {
		c.Start()
		out.Restarted = true
	}
	c.last = out
	return out, true
}

func (c *Controller) record(score int) Outcome {
	out := Outcome{Score: score}
	if score > c.highScore {
		c.highScore = score
		out.NewRecord = true
	}
	out.HighScore = c.highScore

	if c.cfg.Store != nil {
		if _, err := c.cfg.Store.SaveScore(c.cfg.Player, score); err != nil {
			c.logger.Warn("cannot save score", "score", score, "err", err)
		}
	}
	c.logger.Info("flight over", "player", c.cfg.Player, "score", score, "record", out.NewRecord)
	return out
}

// LastOutcome returns the most recent finished flight.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}

// HighScore returns the best score seen by this controller or its store.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Settings returns the active settings.
func (c *Controller) Settings() config.Settings {
	return c.settings
}

// UpdateSettings applies s to future flights and the sound volume, then
// persists it. The new settings stay active even if saving fails.
func (c *Controller) UpdateSettings(s config.Settings) error {
	s.Normalize()
	c.settings = s
	if c.cfg.Sound != nil {
		c.cfg.Sound.SetVolume(s.Volume)
	}
	if c.cfg.SettingsPath == "" {
		return nil
	}
	return config.SaveSettings(c.cfg.SettingsPath, s)
}
