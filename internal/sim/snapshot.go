package sim

import "math"

// Snapshot is the HUD-facing summary of a flight.
type Snapshot struct {
	Frame      uint64
	Phase      Phase
	Health     int
	Score      int
	Altitude   int
	Countdown  int
	SpaceSpeed int

	Obstacles int
	Bullets   int
	Particles int
}

// Snapshot returns the current summary. Health and altitude are floored.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	return Snapshot{
		Frame:      s.Frame,
		Phase:      s.Phase,
		Health:     int(math.Floor(s.Health)),
		Score:      s.Score,
		Altitude:   int(math.Floor(s.Altitude)),
		Countdown:  s.Countdown,
		SpaceSpeed: s.SpaceSpeed,
		Obstacles:  s.Obstacles.Len(),
		Bullets:    s.Bullets.Len(),
		Particles:  s.Particles.Len(),
	}
}

// Hash returns a simple hash of the snapshot plus entity positions for
// determinism testing.
func (g *Game) Hash() uint64 {
	snap := g.Snapshot()
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Health)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Altitude)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpaceSpeed) //#nosec G115 -- hash computation

	s := &g.state
	h = h*31 + math.Float64bits(s.Rocket.X)
	h = h*31 + math.Float64bits(s.Rocket.Y)
	for _, o := range s.Obstacles.Items() {
		h = h*31 + uint64(o.ID)
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
	}
	for _, b := range s.Bullets.Items() {
		h = h*31 + math.Float64bits(b.Y)
	}
	for _, p := range s.Particles.Items() {
		h = h*31 + math.Float64bits(p.X)
	}
	return h
}
