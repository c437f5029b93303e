package render

import (
	"math"
	"strconv"

	"github.com/vovakirdan/rocket-kid/internal/sim"
)

// Altitude thresholds for the backdrop.
const (
	StarfieldAltitude = 1500 // stars replace the sky above this in the atmosphere
	GroundAltitude    = 200  // ground and pad stay visible below this
)

// Draw paints s onto dst. s is only read.
func Draw(dst Surface, s *sim.State) {
	drawBackground(dst, s)
	drawParticles(dst, s)
	drawObstacles(dst, s)
	drawBullets(dst, s)
	if s.Phase != sim.PhaseGameOver {
		drawRocket(dst, s.Rocket.X, s.Rocket.Y)
	}
	if s.Phase == sim.PhaseLaunch && s.Countdown > 0 {
		dst.Text(s.Width/2, s.Height/2, 80, strconv.Itoa(s.Countdown), Countdown)
	}
}

// InSpaceView reports whether the backdrop is the starfield rather than sky.
func InSpaceView(s *sim.State) bool {
	return s.Phase == sim.PhaseSpace ||
		(s.Phase == sim.PhaseAtmosphere && s.Altitude > StarfieldAltitude)
}

func drawBackground(dst Surface, s *sim.State) {
	if InSpaceView(s) {
		dst.FillRect(0, 0, s.Width, s.Height, Space)
		streaks := s.Phase == sim.PhaseSpace && s.SpaceSpeed == 5
		frame := float64(s.Frame)
		for _, st := range s.Stars {
			blink := 0.4 + math.Sin(frame*st.BlinkSpeed+st.Phase)*0.6
			c := WithAlpha(Star, math.Max(0.1, st.Opacity*blink))
			if streaks {
				dst.StrokeLine(st.X, st.Y, st.X, st.Y+15+st.Size*5, st.Size*2, c)
			} else {
				dst.FillCircle(st.X, st.Y, st.Size, c)
			}
		}
		return
	}

	dst.FillGradient(0, 0, s.Width, s.Height, SkyTop, SkyBottom)
	if s.Phase == sim.PhaseLaunch || s.Altitude < GroundAltitude {
		dst.FillRect(0, s.Height-20, s.Width, 20, Ground)
		dst.FillRect(s.Width/2-50, s.Height-30, 100, 10, LaunchPad)
	}
}

func drawParticles(dst Surface, s *sim.State) {
	for _, p := range s.Particles.Items() {
		dst.FillCircle(p.X, p.Y, p.Size, WithAlpha(p.Color, p.Life))
	}
}

func drawObstacles(dst Surface, s *sim.State) {
	for _, o := range s.Obstacles.Items() {
		dst.FillCircle(o.X, o.Y, o.Size, ObstacleColor(o.Kind))
		dst.StrokeCircle(o.X, o.Y, o.Size, 1, Outline)
	}
}

func drawBullets(dst Surface, s *sim.State) {
	for _, b := range s.Bullets.Items() {
		dst.FillRect(b.X-2, b.Y-10, 4, 15, Bullet)
	}
}

func drawRocket(dst Surface, x, y float64) {
	dst.FillTriangle(x, y-40, x-15, y+10, x+15, y+10, RocketBody)
	dst.FillCircle(x, y-10, 8, RocketGlass)
	dst.FillRect(x-20, y+5, 10, 15, RocketFin)
	dst.FillRect(x+10, y+5, 10, 15, RocketFin)
}
