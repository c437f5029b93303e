package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/sim"
)

const healthBarWidth = 10

var (
	hudText    = core.RGB{R: 255, G: 255, B: 255}
	hudGood    = core.RGB{R: 50, G: 205, B: 50}
	hudWarn    = core.RGB{R: 255, G: 215, B: 0}
	hudBad     = core.RGB{R: 255, G: 69, B: 0}
	hudPrompt  = core.RGB{R: 255, G: 255, B: 0}
	hudSpeedOn = core.RGB{R: 0, G: 191, B: 255}
)

// hud describes one frame of the heads-up display.
type hud struct {
	snap      sim.Snapshot
	highScore int
	maxHealth int
	maxSpeed  int
	tr        i18n.Strings
}

// draw overlays the HUD on the top rows of scr and, on the pad, the launch prompt.
func (h hud) draw(scr *core.Screen) {
	scr.DrawTextColored(1, 0, fmt.Sprintf("%s: %d", h.tr.Score, h.snap.Score), hudText)
	high := fmt.Sprintf("%s: %d", h.tr.HighScore, h.highScore)
	scr.DrawTextColored(scr.Width()-len([]rune(high))-1, 0, high, hudText)

	scr.DrawTextColored(1, 1, h.altitude(), hudText)

	label := h.tr.Health + " "
	scr.DrawTextColored(1, 2, label, hudText)
	bar, c := h.healthBar()
	scr.DrawTextColored(1+len([]rune(label)), 2, bar, c)

	if h.snap.Phase == sim.PhaseSpace {
		speed := h.tr.Speed + " "
		scr.DrawTextColored(1, 3, speed, hudText)
		scr.DrawTextColored(1+len([]rune(speed)), 3, h.speedBar(), hudSpeedOn)
	}

	if h.snap.Phase == sim.PhaseLaunch && h.snap.Countdown == 0 {
		y := scr.Height()/2 + 2
		x := (scr.Width() - len([]rune(h.tr.Launch))) / 2
		scr.DrawTextColored(x, y, h.tr.Launch, hudPrompt)
	}
}

func (h hud) altitude() string {
	if h.snap.Phase == sim.PhaseSpace {
		return h.tr.Space
	}
	return fmt.Sprintf("%s %dm", h.tr.Altitude, h.snap.Altitude)
}

func (h hud) healthBar() (string, core.RGB) {
	maxHealth := max(h.maxHealth, 1)
	filled := core.Clamp(h.snap.Health*healthBarWidth/maxHealth, 0, healthBarWidth)
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", healthBarWidth-filled) + "]"

	switch pct := h.snap.Health * 100 / maxHealth; {
	case pct > 60:
		return bar, hudGood
	case pct > 30:
		return bar, hudWarn
	default:
		return bar, hudBad
	}
}

func (h hud) speedBar() string {
	on := core.Clamp(h.snap.SpaceSpeed, 0, h.maxSpeed)
	return strings.Repeat("▮", on) + strings.Repeat("▯", h.maxSpeed-on)
}
