package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/rocket-kid/internal/core"
)

func (g *Game) stepLaunch(elapsed time.Duration, held core.Controls) {
	s := &g.state
	s.Rocket.X = s.Width / 2
	s.Rocket.Y = g.padY()

	if !held.Has(core.ControlUp) {
		s.LaunchHold = 0
		s.Countdown = 0
		return
	}

	s.LaunchHold += max(elapsed, 0)
	steps := g.cfg.Launch.Steps
	n := min(int(s.LaunchHold/g.cfg.Launch.Step()), steps)
	if n != s.Countdown {
		s.Countdown = n
		g.play(core.SoundCountdown)
	}

	if n >= steps {
		s.Phase = PhaseAtmosphere
		s.Rocket.VY = -g.cfg.Physics.Thrust
		g.play(core.SoundLaunch)
	}
}

func (g *Game) stepAtmosphere(held core.Controls) {
	s := &g.state
	p := g.cfg.Physics

	if held.Has(core.ControlUp) {
		s.Rocket.VY -= p.Thrust
		if g.every(g.cfg.Particles.ExhaustEvery) {
			g.exhaust()
		}
	}
	s.Rocket.VY += p.Gravity
	s.Rocket.Y += s.Rocket.VY

	pad := g.padY()
	s.Altitude = math.Max(0, (pad-s.Rocket.Y)*p.AltitudeScale)

	if s.Rocket.Y > pad {
		g.burst(s.Rocket.X, s.Rocket.Y, colorFire)
		g.play(core.SoundExplosion)
		g.end()
		return
	}

	if s.Altitude >= p.AtmosphereHeight {
		s.Phase = PhaseSpace
		s.Rocket.Y = s.Height - p.SpaceOffset
		s.Rocket.VY = 0
	}
}
