package sim

import (
	"time"

	"github.com/vovakirdan/rocket-kid/internal/entity"
)

// Phase is the stage of a flight.
type Phase uint8

const (
	PhaseLaunch     Phase = iota // on the pad, holding to count down
	PhaseAtmosphere              // free flight under gravity
	PhaseSpace                   // scrolling shooter
	PhaseGameOver                // terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLaunch:
		return "LAUNCH"
	case PhaseAtmosphere:
		return "ATMOSPHERE"
	case PhaseSpace:
		return "SPACE"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// State is everything one flight needs. It is mutated only by Game.Tick;
// renderers receive it by pointer and must treat it as read-only.
type State struct {
	Width, Height float64

	Phase      Phase
	Rocket     entity.Rocket
	Altitude   float64
	Health     float64
	Score      int
	Countdown  int
	LaunchHold time.Duration
	SpaceSpeed int
	Frame      uint64

	// LastScoreAt is when score was last awarded in space. The zero value
	// lets the first space tick score immediately.
	LastScoreAt time.Time

	Obstacles entity.Arena[entity.Obstacle]
	Bullets   entity.Arena[entity.Bullet]
	Particles entity.Arena[entity.Particle]
	Stars     []entity.Star
}
