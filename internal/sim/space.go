package sim

import (
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/entity"
)

func (g *Game) stepSpace(held core.Controls) {
	s := &g.state
	sc := g.cfg.Space

	if held.Has(core.ControlLeft) {
		s.Rocket.X -= sc.SideStep
	}
	if held.Has(core.ControlRight) {
		s.Rocket.X += sc.SideStep
	}
	s.Rocket.X = core.ClampF(s.Rocket.X, sc.SideMargin, s.Width-sc.SideMargin)

	if g.every(sc.SpeedChangeEvery) {
		if held.Has(core.ControlUp) {
			s.SpaceSpeed = min(sc.MaxSpeed, s.SpaceSpeed+1)
		}
		if held.Has(core.ControlDown) {
			s.SpaceSpeed = max(sc.MinSpeed, s.SpaceSpeed-1)
		}
	}

	g.scrollStars()

	if now := g.now(); now.Sub(s.LastScoreAt) > sc.ScoreInterval() {
		s.Score += s.SpaceSpeed
		s.LastScoreAt = now
	}

	if g.shooting && held.Has(core.ControlFire) && g.every(g.cfg.Weapons.FireEvery) {
		s.Bullets.Add(entity.Bullet{
			ID: g.ids.Next(),
			X:  s.Rocket.X,
			Y:  s.Rocket.Y - g.cfg.Weapons.MuzzleOffset,
		})
		g.play(core.SoundShoot)
	}

	if g.every(g.cfg.Obstacles.SpawnEvery(s.SpaceSpeed)) {
		g.spawnObstacle()
	}

	w := g.cfg.Weapons
	s.Bullets.Retain(func(b *entity.Bullet) bool {
		b.Y -= w.BulletSpeed
		return b.Y > w.CullY
	})

	g.stepObstacles()
}

func (g *Game) scrollStars() {
	s := &g.state
	dy := float64(s.SpaceSpeed) * g.cfg.Space.StarScroll
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Y += dy
		if st.Y > s.Height {
			st.Y = g.cfg.Stars.WrapY
			st.X = g.rng.Float64() * s.Width
		}
	}
}

// stepObstacles moves every obstacle and resolves its collisions. An
// obstacle is destroyed by at most one bullet; a bullet hit takes precedence
// over hitting the rocket.
func (g *Game) stepObstacles() {
	s := &g.state
	oc := g.cfg.Obstacles
	body := g.cfg.Rocket
	drift := float64(s.SpaceSpeed) * oc.DriftPerLevel
	cull := s.Height + oc.CullMargin

	for i := 0; i < s.Obstacles.Len(); {
		o := s.Obstacles.At(i)
		o.Y += o.Speed + drift

		if j := g.bulletHit(o); j >= 0 {
			s.Score += o.Weight
			s.Bullets.SwapRemove(j)
			g.burst(o.X, o.Y, colorDebris)
			g.play(core.SoundSmallExplosion)
			s.Obstacles.SwapRemove(i)
			continue
		}

		if g.collisions && core.Dist(s.Rocket.X, s.Rocket.Y, o.X, o.Y) < o.Size+body.CollisionRadius {
			s.Health = core.ClampF(s.Health-float64(o.Weight)*body.DamagePerWeight, 0, body.MaxHealth)
			ox, oy := o.X, o.Y
			s.Obstacles.SwapRemove(i)
			g.burst(ox, oy, colorHit)

			if s.Health <= 0 {
				g.burst(s.Rocket.X, s.Rocket.Y, colorFire)
				g.play(core.SoundExplosion)
				g.end()
				return
			}
			g.play(core.SoundCollision)
			continue
		}

		if o.Y >= cull {
			s.Obstacles.SwapRemove(i)
			continue
		}
		i++
	}
}

// bulletHit returns the index of the first bullet inside o, or -1.
func (g *Game) bulletHit(o *entity.Obstacle) int {
	for j, b := range g.state.Bullets.Items() {
		if core.Dist(b.X, b.Y, o.X, o.Y) < o.Size {
			return j
		}
	}
	return -1
}

func (g *Game) spawnObstacle() {
	s := &g.state
	oc := g.cfg.Obstacles
	weight := oc.Weights[g.rng.Intn(len(oc.Weights))]
	kind := entity.ObstacleKinds[g.rng.Intn(len(entity.ObstacleKinds))]

	s.Obstacles.Add(entity.Obstacle{
		ID:     g.ids.Next(),
		X:      g.rng.Float64()*(s.Width-2*oc.EdgeMargin) + oc.EdgeMargin,
		Y:      oc.SpawnY,
		Size:   oc.BaseSize + float64(weight)*oc.SizePerWeight,
		Weight: weight,
		Kind:   kind,
		Speed:  oc.BaseSpeed + g.rng.Float64()*oc.SpeedJitter + float64(s.SpaceSpeed)*oc.SpeedPerLevel,
	})
}
