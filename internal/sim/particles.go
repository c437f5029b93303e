package sim

import (
	"image/color"

	"github.com/vovakirdan/rocket-kid/internal/entity"
)

// particleEpsilon absorbs float drift so a particle decays in exactly
// life/decay ticks.
const particleEpsilon = 1e-9

var (
	colorFire    = color.NRGBA{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF}
	colorDebris  = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	colorHit     = color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	colorExhaust = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xCC}
)

// burst scatters an explosion at (x, y).
func (g *Game) burst(x, y float64, c color.NRGBA) {
	pc := g.cfg.Particles
	for range pc.BurstCount {
		g.state.Particles.Add(entity.Particle{
			ID:    g.ids.Next(),
			X:     x,
			Y:     y,
			VX:    (g.rng.Float64() - 0.5) * pc.BurstSpeed,
			VY:    (g.rng.Float64() - 0.5) * pc.BurstSpeed,
			Life:  1,
			Color: c,
			Size:  g.rng.Float64()*pc.BurstSizeVar + pc.BurstMinSize,
		})
	}
}

// exhaust emits one flame puff below the rocket.
func (g *Game) exhaust() {
	pc := g.cfg.Particles
	r := g.state.Rocket
	g.state.Particles.Add(entity.Particle{
		ID:    g.ids.Next(),
		X:     r.X,
		Y:     r.Y + pc.ExhaustDrop,
		VX:    (g.rng.Float64() - 0.5) * 2,
		VY:    2 + g.rng.Float64()*3,
		Life:  pc.ExhaustLife,
		Color: colorExhaust,
		Size:  pc.ExhaustSize,
	})
}

func (g *Game) stepParticles() {
	decay := g.cfg.Particles.Decay
	g.state.Particles.Retain(func(p *entity.Particle) bool {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		return p.Life > particleEpsilon
	})
}
