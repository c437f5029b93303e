// Package entity defines the plain data the simulation moves around:
// the rocket, obstacles, bullets, particles and background stars.
package entity

import "image/color"

// ID identifies an entity for its whole lifetime. IDs are never reused.
type ID uint64

// Sequence hands out monotonically increasing IDs starting at 1.
type Sequence struct {
	last ID
}

// Next returns a fresh ID.
func (s *Sequence) Next() ID {
	s.last++
	return s.last
}

// Rocket is the player ship. Y grows downward.
type Rocket struct {
	X, Y   float64
	VX, VY float64
}

// ObstacleKind only affects how an obstacle is drawn.
type ObstacleKind uint8

const (
	KindRock ObstacleKind = iota
	KindMeteor
	KindAsteroid
)

// ObstacleKinds lists every kind, in spawn-roll order.
var ObstacleKinds = []ObstacleKind{KindRock, KindMeteor, KindAsteroid}

func (k ObstacleKind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindMeteor:
		return "meteor"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Obstacle falls toward the rocket. Size is its collision radius.
type Obstacle struct {
	ID     ID
	X, Y   float64
	Size   float64
	Weight int
	Kind   ObstacleKind
	Speed  float64
}

// Bullet travels straight up.
type Bullet struct {
	ID   ID
	X, Y float64
}

// Particle is a short-lived visual. Life runs from its initial value down to 0
// and doubles as the draw alpha.
type Particle struct {
	ID     ID
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  color.NRGBA
	Size   float64
}

// Star is a background point that scrolls and blinks.
type Star struct {
	X, Y       float64
	Size       float64
	Opacity    float64
	Phase      float64
	BlinkSpeed float64
}
