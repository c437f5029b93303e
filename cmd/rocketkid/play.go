package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-kid/internal/audio"
	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/platform/tui"
	"github.com/vovakirdan/rocket-kid/internal/platform/window"
	"github.com/vovakirdan/rocket-kid/internal/session"
	"github.com/vovakirdan/rocket-kid/internal/storage"
)

var (
	flagWindow bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rocket Kid",
	Long: `Start the game.

Controls:
  Up/W         - Hold through the countdown to launch, thrust, speed up in space
  Down         - Slow down in space
  Left/A       - Steer left
  Right/D      - Steer right
  Space/S      - Fire
  Esc          - Main menu (terminal) or quit (window)
  Ctrl+C       - Quit

Terminals do not report key releases, so a key counts as held while it
auto-repeats. Use --window for exact key handling.

Examples:
  rocketkid play
  rocketkid play --window
  rocketkid play --seed 42 --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	stderr := newLogger(os.Stderr, "rocketkid")
	logger, closeLog := fileLogger("rocketkid")
	defer closeLog()

	tuning, err := config.LoadRocket(flagConfig)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		stderr.Warn("using default settings", "err", err)
	}

	var scores tui.Scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderr.Warn("could not open scores database, scores will not be saved", "err", err)
	} else {
		defer store.Close()
		scores = store
	}

	var sound session.SoundPlayer
	if !flagMute {
		svc := audio.NewService(logger)
		if err := svc.Init(); err != nil {
			stderr.Warn("sound disabled", "err", err)
		} else {
			defer svc.Close()
			sound = svc
		}
	}

	player := playerName()

	if flagWindow {
		cfg := session.Config{
			Tuning:       tuning,
			Settings:     settings,
			SettingsPath: flagSettings,
			Sound:        sound,
			Player:       player,
			Seed:         flagSeed,
			Logger:       logger,
		}
		if scores != nil {
			cfg.Store = scores
		}
		return window.Run(window.New(session.New(cfg), tuning), flagFPS)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	err = tui.Run(tui.Deps{
		Tuning:       tuning,
		Settings:     settings,
		SettingsPath: flagSettings,
		Scores:       scores,
		Sound:        sound,
		Player:       player,
		Runtime:      rt,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
