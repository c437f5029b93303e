package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/i18n"
	"github.com/vovakirdan/rocket-kid/internal/sim"
)

func drawTestHUD(snap sim.Snapshot, tr i18n.Strings) *core.Screen {
	scr := core.NewScreen(60, 20)
	hud{snap: snap, highScore: 420, maxHealth: 100, maxSpeed: 5, tr: tr}.draw(scr)
	return scr
}

func TestHUDAtmosphere(t *testing.T) {
	en := i18n.For("en")
	scr := drawTestHUD(sim.Snapshot{Phase: sim.PhaseAtmosphere, Score: 12, Altitude: 873, Health: 100}, en)

	if row := scr.Row(0); !strings.Contains(row, "Score: 12") || !strings.Contains(row, "High Score: 420") {
		t.Errorf("row 0 = %q", row)
	}
	if row := scr.Row(1); !strings.Contains(row, "ALT 873m") {
		t.Errorf("row 1 = %q", row)
	}
	if row := scr.Row(2); !strings.Contains(row, "[██████████]") {
		t.Errorf("row 2 = %q", row)
	}
	if strings.TrimSpace(scr.Row(3)) != "" {
		t.Errorf("speed row should be empty outside space, got %q", scr.Row(3))
	}
}

func TestHUDSpace(t *testing.T) {
	en := i18n.For("en")
	scr := drawTestHUD(sim.Snapshot{Phase: sim.PhaseSpace, Health: 25, SpaceSpeed: 2}, en)

	if row := scr.Row(1); !strings.Contains(row, "SPACE") {
		t.Errorf("row 1 = %q", row)
	}
	if row := scr.Row(2); !strings.Contains(row, "[██░░░░░░░░]") {
		t.Errorf("row 2 = %q", row)
	}
	if row := scr.Row(3); !strings.Contains(row, "Speed ▮▮▯▯▯") {
		t.Errorf("row 3 = %q", row)
	}
}

func TestHUDHealthColor(t *testing.T) {
	tests := []struct {
		health int
		want   core.RGB
	}{
		{100, hudGood},
		{50, hudWarn},
		{10, hudBad},
	}
	for _, tt := range tests {
		_, got := hud{snap: sim.Snapshot{Health: tt.health}, maxHealth: 100}.healthBar()
		if got != tt.want {
			t.Errorf("health %d color = %v, expected %v", tt.health, got, tt.want)
		}
	}
}

func TestHUDLaunchPrompt(t *testing.T) {
	pt := i18n.For("pt")

	scr := drawTestHUD(sim.Snapshot{Phase: sim.PhaseLaunch, Health: 100}, pt)
	if row := scr.Row(12); !strings.Contains(row, pt.Launch) {
		t.Errorf("prompt row = %q", row)
	}

	scr = drawTestHUD(sim.Snapshot{Phase: sim.PhaseLaunch, Health: 100, Countdown: 2}, pt)
	if strings.Contains(scr.String(), pt.Launch) {
		t.Error("prompt should hide once the countdown runs")
	}
}
