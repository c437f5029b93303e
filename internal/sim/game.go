// Package sim advances a single rocket flight one frame at a time: the
// launch countdown, flight through the atmosphere, and the space shooter.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/entity"
)

// Options configure one flight.
type Options struct {
	Tuning            config.RocketConfig
	ObstacleCollision bool
	Shooting          bool
	Seed              int64

	// Sound receives effect events. Nil discards them.
	Sound core.SoundSink
	// OnGameOver is called exactly once with the final score.
	OnGameOver func(score int)
	// Now gates score awards in space. Nil means time.Now.
	Now func() time.Time
}

// Game is one flight. It is not safe for concurrent use.
type Game struct {
	cfg        config.RocketConfig
	collisions bool
	shooting   bool
	sound      core.SoundSink
	onGameOver func(int)
	now        func() time.Time

	rng      *rand.Rand
	ids      entity.Sequence
	state    State
	reported bool
}

// New creates a flight sitting on the launch pad.
func New(opts Options) *Game {
	g := &Game{
		cfg:        opts.Tuning,
		collisions: opts.ObstacleCollision,
		shooting:   opts.Shooting,
		sound:      opts.Sound,
		onGameOver: opts.OnGameOver,
		now:        opts.Now,
		rng:        rand.New(rand.NewSource(opts.Seed)),
	}
	if g.sound == nil {
		g.sound = core.NopSink{}
	}
	if g.now == nil {
		g.now = time.Now
	}

	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
	g.state = State{
		Width:      w,
		Height:     h,
		Phase:      PhaseLaunch,
		Rocket:     entity.Rocket{X: w / 2, Y: g.padY()},
		Health:     g.cfg.Rocket.MaxHealth,
		SpaceSpeed: g.cfg.Space.MinSpeed,
	}
	g.seedStars()
	return g
}

// State exposes the live state for rendering.
func (g *Game) State() *State {
	return &g.state
}

// Over reports whether the flight has ended.
func (g *Game) Over() bool {
	return g.state.Phase == PhaseGameOver
}

// Tick advances the flight by one frame. elapsed is the real time since the
// previous tick and only feeds the launch countdown; flight physics move a
// fixed step per tick. Once the flight is over Tick does nothing.
func (g *Game) Tick(elapsed time.Duration, held core.Controls) {
	switch g.state.Phase {
	case PhaseGameOver:
		return
	case PhaseLaunch:
		g.stepLaunch(elapsed, held)
	case PhaseAtmosphere:
		g.stepAtmosphere(held)
	case PhaseSpace:
		g.stepSpace(held)
	}

	g.stepParticles()
	g.state.Frame++
}

func (g *Game) padY() float64 {
	return g.cfg.Canvas.Height - g.cfg.Physics.PadOffset
}

func (g *Game) every(n int) bool {
	return g.state.Frame%uint64(n) == 0 //#nosec G115 -- cadences are validated positive
}

func (g *Game) play(s core.Sound) {
	g.sound.Play(s)
}

// end enters the terminal phase and reports the score once.
func (g *Game) end() {
	g.state.Phase = PhaseGameOver
	if g.reported {
		return
	}
	g.reported = true
	if g.onGameOver != nil {
		g.onGameOver(g.state.Score)
	}
}

func (g *Game) seedStars() {
	s := &g.state
	s.Stars = make([]entity.Star, g.cfg.Stars.Count)
	for i := range s.Stars {
		s.Stars[i] = entity.Star{
			X:          g.rng.Float64() * s.Width,
			Y:          g.rng.Float64() * s.Height,
			Size:       g.rng.Float64()*1.5 + 0.5,
			Opacity:    g.rng.Float64(),
			Phase:      g.rng.Float64() * 2 * math.Pi,
			BlinkSpeed: 0.02 + g.rng.Float64()*0.08,
		}
	}
}
