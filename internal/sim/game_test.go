package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/entity"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type soundLog []core.Sound

func (l *soundLog) Play(s core.Sound) { *l = append(*l, s) }

func (l soundLog) count(s core.Sound) int {
	n := 0
	for _, got := range l {
		if got == s {
			n++
		}
	}
	return n
}

type harness struct {
	g       *Game
	clock   *fakeClock
	sounds  *soundLog
	reports []int
}

func newHarness(t *testing.T, mutate func(*Options)) *harness {
	t.Helper()
	h := &harness{
		clock:  &fakeClock{t: time.Unix(1_700_000_000, 0)},
		sounds: &soundLog{},
	}
	opts := Options{
		Tuning:            config.DefaultRocketConfig(),
		ObstacleCollision: true,
		Shooting:          true,
		Seed:              42,
		Sound:             h.sounds,
		OnGameOver:        func(score int) { h.reports = append(h.reports, score) },
		Now:               h.clock.Now,
	}
	if mutate != nil {
		mutate(&opts)
	}
	h.g = New(opts)
	return h
}

// toSpace puts the flight in space at a frame that triggers no cadence and
// with the score timer just reset.
func (h *harness) toSpace() {
	s := &h.g.state
	s.Phase = PhaseSpace
	s.Rocket = entity.Rocket{X: 400, Y: 450}
	s.Altitude = 2000
	s.Frame = 1
	s.LastScoreAt = h.clock.Now()
}

func held(cs ...core.Control) core.Controls {
	var out core.Controls
	for _, c := range cs {
		out = out.With(c)
	}
	return out
}

const frame = 16 * time.Millisecond

func TestNewStartsOnPad(t *testing.T) {
	h := newHarness(t, nil)
	s := h.g.State()

	if s.Phase != PhaseLaunch {
		t.Errorf("phase = %v, expected LAUNCH", s.Phase)
	}
	if s.Rocket.X != 400 || s.Rocket.Y != 500 {
		t.Errorf("rocket at (%v, %v), expected (400, 500)", s.Rocket.X, s.Rocket.Y)
	}
	if s.Health != 100 || s.SpaceSpeed != 1 || s.Score != 0 {
		t.Errorf("unexpected initial state: %+v", h.g.Snapshot())
	}
	if len(s.Stars) != 200 {
		t.Errorf("stars = %d, expected 200", len(s.Stars))
	}
	for _, st := range s.Stars {
		if st.Size < 0.5 || st.Size >= 2 || st.BlinkSpeed < 0.02 || st.BlinkSpeed >= 0.1 {
			t.Fatalf("star out of range: %+v", st)
		}
	}
}

func TestLaunchAfterFiveSecondHold(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.ObstacleCollision = false
		o.Shooting = false
	})

	h.g.Tick(5000*time.Millisecond, held(core.ControlUp))

	s := h.g.State()
	if s.Phase != PhaseAtmosphere {
		t.Fatalf("phase = %v, expected ATMOSPHERE", s.Phase)
	}
	if s.Rocket.VY != -0.4 {
		t.Errorf("vy = %v, expected -THRUST", s.Rocket.VY)
	}
	if s.Countdown != 5 {
		t.Errorf("countdown = %d, expected 5", s.Countdown)
	}
	if h.sounds.count(core.SoundLaunch) != 1 || h.sounds.count(core.SoundCountdown) != 1 {
		t.Errorf("sounds = %v", *h.sounds)
	}
}

func TestLaunchAtFrameRate(t *testing.T) {
	h := newHarness(t, nil)

	transitions := 0
	for i := 0; i < 400; i++ {
		before := h.g.State().Phase
		h.g.Tick(frame, held(core.ControlUp))
		if before == PhaseLaunch && h.g.State().Phase == PhaseAtmosphere {
			transitions++
			if elapsed := time.Duration(i+1) * frame; elapsed < 5*time.Second {
				t.Errorf("launched after %v of hold", elapsed)
			}
		}
	}

	if transitions != 1 {
		t.Errorf("LAUNCH->ATMOSPHERE transitions = %d, expected 1", transitions)
	}
	if got := h.sounds.count(core.SoundCountdown); got != 5 {
		t.Errorf("countdown sounds = %d, expected one per step", got)
	}
}

func TestLaunchReleaseResets(t *testing.T) {
	h := newHarness(t, nil)

	h.g.Tick(3500*time.Millisecond, held(core.ControlUp))
	if h.g.State().Countdown != 3 {
		t.Fatalf("countdown = %d, expected 3", h.g.State().Countdown)
	}

	h.g.Tick(frame, 0)
	s := h.g.State()
	if s.Countdown != 0 || s.LaunchHold != 0 {
		t.Errorf("release should reset hold, got countdown %d hold %v", s.Countdown, s.LaunchHold)
	}

	h.g.Tick(2500*time.Millisecond, held(core.ControlUp))
	if s.Phase != PhaseLaunch || s.Countdown != 2 {
		t.Errorf("hold should restart from zero, got %v countdown %d", s.Phase, s.Countdown)
	}
}

func TestCountdownClampedOnLongTick(t *testing.T) {
	h := newHarness(t, nil)

	h.g.Tick(time.Minute, held(core.ControlUp))

	if c := h.g.State().Countdown; c != 5 {
		t.Errorf("countdown = %d, expected clamp to 5", c)
	}
	if n := h.sounds.count(core.SoundCountdown); n != 1 {
		t.Errorf("countdown sounds = %d, expected 1", n)
	}
}

func TestAtmosphereAltitudeAndSpaceEntry(t *testing.T) {
	h := newHarness(t, nil)
	h.g.Tick(5*time.Second, held(core.ControlUp))

	entries := 0
	for i := 0; i < 500; i++ {
		before := h.g.State().Phase
		h.g.Tick(frame, held(core.ControlUp))
		s := h.g.State()

		switch s.Phase {
		case PhaseAtmosphere:
			want := math.Max(0, (500-s.Rocket.Y)*2)
			if s.Altitude != want {
				t.Fatalf("tick %d: altitude = %v, expected %v", i, s.Altitude, want)
			}
			if s.Altitude >= 2000 {
				t.Fatalf("tick %d: still in atmosphere at altitude %v", i, s.Altitude)
			}
		case PhaseSpace:
			if before == PhaseAtmosphere {
				entries++
				if s.Rocket.Y != 450 || s.Rocket.VY != 0 {
					t.Errorf("space entry rocket = %+v, expected y 450 vy 0", s.Rocket)
				}
				if s.Altitude < 2000 {
					t.Errorf("entered space at altitude %v", s.Altitude)
				}
			}
		}
	}

	if entries != 1 {
		t.Errorf("ATMOSPHERE->SPACE transitions = %d, expected 1", entries)
	}
}

func TestExhaustOnlyWhileThrusting(t *testing.T) {
	h := newHarness(t, nil)
	h.g.Tick(5*time.Second, held(core.ControlUp))

	h.g.Tick(frame, 0)
	h.g.Tick(frame, 0)
	h.g.Tick(frame, 0)
	if n := h.g.State().Particles.Len(); n != 0 {
		t.Fatalf("coasting should leave no exhaust, got %d particles", n)
	}

	for i := 0; i < 6; i++ {
		h.g.Tick(frame, held(core.ControlUp))
	}
	if n := h.g.State().Particles.Len(); n != 2 {
		t.Errorf("six thrust frames should puff twice, got %d particles", n)
	}
}

func TestFallingPastPadEndsOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.g.Tick(5*time.Second, held(core.ControlUp))

	for i := 0; i < 1000 && !h.g.Over(); i++ {
		h.g.Tick(frame, 0)
	}
	if !h.g.Over() {
		t.Fatal("rocket without thrust should fall back onto the pad")
	}
	if len(h.reports) != 1 {
		t.Fatalf("reports = %v, expected exactly one", h.reports)
	}
	if h.sounds.count(core.SoundExplosion) != 1 {
		t.Errorf("expected one explosion sound, got %v", *h.sounds)
	}

	snap := h.g.Snapshot()
	for i := 0; i < 100; i++ {
		h.g.Tick(frame, held(core.ControlUp, core.ControlFire))
	}
	if len(h.reports) != 1 {
		t.Errorf("reports = %v after extra ticks, expected exactly one", h.reports)
	}
	if after := h.g.Snapshot(); after != snap {
		t.Errorf("game over should be terminal\nbefore %+v\nafter  %+v", snap, after)
	}
}

func TestBulletDestroysObstacle(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()

	s.Obstacles.Add(entity.Obstacle{ID: 100, X: 400, Y: 200, Size: 36, Weight: 20})
	s.Bullets.Add(entity.Bullet{ID: 101, X: 400, Y: 210})
	s.Bullets.Add(entity.Bullet{ID: 102, X: 405, Y: 212})

	h.g.Tick(frame, 0)

	if s.Obstacles.Len() != 0 {
		t.Errorf("obstacle should be destroyed, %d left", s.Obstacles.Len())
	}
	if s.Bullets.Len() != 1 {
		t.Errorf("exactly one bullet should be consumed, %d left", s.Bullets.Len())
	}
	if s.Score != 20 {
		t.Errorf("score = %d, expected weight 20", s.Score)
	}
	if s.Particles.Len() != 15 {
		t.Errorf("particles = %d, expected one burst of 15", s.Particles.Len())
	}
	if h.sounds.count(core.SoundSmallExplosion) != 1 {
		t.Errorf("sounds = %v", *h.sounds)
	}
	if s.Health != 100 {
		t.Errorf("bullet kill should not hurt the rocket, health %v", s.Health)
	}
}

func TestObstacleCollisionDamage(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()

	s.Obstacles.Add(entity.Obstacle{ID: 100, X: 400, Y: 450, Size: 60, Weight: 50})
	h.g.Tick(frame, 0)

	if s.Health != 90 {
		t.Errorf("health = %v, expected 90", s.Health)
	}
	if s.Obstacles.Len() != 0 {
		t.Errorf("colliding obstacle should be removed")
	}
	if h.sounds.count(core.SoundCollision) != 1 {
		t.Errorf("sounds = %v", *h.sounds)
	}
	if h.g.Over() {
		t.Error("a survivable hit should not end the flight")
	}
}

func TestCollisionHealthStaysInRange(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()

	// A negative weight would heal; health must still cap at the maximum.
	s.Obstacles.Add(entity.Obstacle{ID: 100, X: 400, Y: 450, Size: 60, Weight: -50})
	h.g.Tick(frame, 0)

	if s.Health != h.g.cfg.Rocket.MaxHealth {
		t.Errorf("health = %v, expected cap at %v", s.Health, h.g.cfg.Rocket.MaxHealth)
	}
}

func TestFatalCollision(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()
	s.Health = 5
	s.Score = 77

	s.Obstacles.Add(entity.Obstacle{ID: 100, X: 400, Y: 450, Size: 60, Weight: 50})
	s.Obstacles.Add(entity.Obstacle{ID: 101, X: 410, Y: 440, Size: 60, Weight: 50})
	h.g.Tick(frame, 0)

	if !h.g.Over() {
		t.Fatal("health depleted should end the flight")
	}
	if s.Health != 0 {
		t.Errorf("health = %v, expected clamp to 0", s.Health)
	}
	if len(h.reports) != 1 || h.reports[0] != 77 {
		t.Errorf("reports = %v, expected [77]", h.reports)
	}
	if h.sounds.count(core.SoundExplosion) != 1 || h.sounds.count(core.SoundCollision) != 0 {
		t.Errorf("sounds = %v", *h.sounds)
	}
}

func TestCollisionDisabledKeepsHealth(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.ObstacleCollision = false })
	h.toSpace()
	s := h.g.State()

	for i := 0; i < 50; i++ {
		s.Obstacles.Add(entity.Obstacle{ID: entity.ID(1000 + i), X: s.Rocket.X, Y: s.Rocket.Y, Size: 60, Weight: 50})
	}
	for i := 0; i < 2000; i++ {
		h.g.Tick(frame, 0)
		if s.Health != 100 {
			t.Fatalf("tick %d: health = %v with collisions disabled", i, s.Health)
		}
		h.clock.Advance(frame)
	}
}

func TestParticleExpiresAfterFiftyTicks(t *testing.T) {
	h := newHarness(t, nil)
	s := h.g.State()
	s.Particles.Add(entity.Particle{ID: 1, Life: 1.0})

	for i := 0; i < 49; i++ {
		h.g.Tick(frame, 0)
	}
	if s.Particles.Len() != 1 {
		t.Fatalf("particle gone after 49 ticks")
	}

	h.g.Tick(frame, 0)
	if s.Particles.Len() != 0 {
		t.Errorf("particle should be removed after 50 ticks, life %v", s.Particles.At(0).Life)
	}
}

func TestScoreGatedByClock(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()
	s.LastScoreAt = time.Time{}
	s.SpaceSpeed = 3

	h.g.Tick(frame, 0)
	if s.Score != 3 {
		t.Fatalf("first space tick should score speed, got %d", s.Score)
	}

	h.clock.Advance(time.Second)
	h.g.Tick(frame, 0)
	if s.Score != 3 {
		t.Errorf("exactly one interval should not score yet, got %d", s.Score)
	}

	h.clock.Advance(time.Millisecond)
	h.g.Tick(frame, 0)
	if s.Score != 6 {
		t.Errorf("after the interval score = %d, expected 6", s.Score)
	}
}

func TestSpaceSpeedAndSteering(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.ObstacleCollision = false })
	h.toSpace()
	s := h.g.State()

	for i := 0; i < 100; i++ {
		h.g.Tick(frame, held(core.ControlUp, core.ControlLeft))
	}
	if s.SpaceSpeed != 5 {
		t.Errorf("speed = %d, expected max 5", s.SpaceSpeed)
	}
	if s.Rocket.X != 40 {
		t.Errorf("x = %v, expected clamp to 40", s.Rocket.X)
	}

	for i := 0; i < 200; i++ {
		h.g.Tick(frame, held(core.ControlDown, core.ControlRight))
	}
	if s.SpaceSpeed != 1 {
		t.Errorf("speed = %d, expected min 1", s.SpaceSpeed)
	}
	if s.Rocket.X != 760 {
		t.Errorf("x = %v, expected clamp to 760", s.Rocket.X)
	}
}

func TestShootingCadence(t *testing.T) {
	tests := []struct {
		name     string
		shooting bool
		want     int
	}{
		{"enabled", true, 2},
		{"disabled", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, func(o *Options) { o.Shooting = tc.shooting })
			h.toSpace()

			// Frames 1 through 12 contain two multiples of 6.
			for i := 0; i < 12; i++ {
				h.g.Tick(frame, held(core.ControlFire))
			}
			if got := h.sounds.count(core.SoundShoot); got != tc.want {
				t.Errorf("shots = %d, expected %d", got, tc.want)
			}
			if got := h.g.State().Bullets.Len(); got != tc.want {
				t.Errorf("bullets = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestBulletsAndObstaclesCulled(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.ObstacleCollision = false })
	h.toSpace()
	s := h.g.State()

	s.Bullets.Add(entity.Bullet{ID: 1, X: 100, Y: -10})
	s.Obstacles.Add(entity.Obstacle{ID: 2, X: 100, Y: 649, Size: 24, Weight: 5})
	h.g.Tick(frame, 0)

	if s.Bullets.Len() != 0 {
		t.Error("bullet at y <= -20 should be culled")
	}
	if s.Obstacles.Len() != 0 {
		t.Error("obstacle at y >= height+50 should be culled")
	}
}

func TestStarsWrap(t *testing.T) {
	h := newHarness(t, nil)
	h.toSpace()
	s := h.g.State()
	s.Stars[0].Y = 599

	h.g.Tick(frame, 0)
	if s.Stars[0].Y != -20 {
		t.Errorf("star y = %v, expected wrap to -20", s.Stars[0].Y)
	}
	if s.Stars[0].X < 0 || s.Stars[0].X >= 800 {
		t.Errorf("wrapped star x = %v out of canvas", s.Stars[0].X)
	}
}

func TestSpawnedObstacleRanges(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.ObstacleCollision = false })
	h.toSpace()

	for i := 0; i < 500; i++ {
		h.g.spawnObstacle()
	}
	for _, o := range h.g.State().Obstacles.Items() {
		if o.Weight < 5 || o.Weight > 50 || o.Weight%5 != 0 {
			t.Fatalf("weight %d not in {5..50}", o.Weight)
		}
		if o.Size != 20+float64(o.Weight)*0.8 {
			t.Fatalf("size %v does not match weight %d", o.Size, o.Weight)
		}
		if o.X < 20 || o.X >= 780 || o.Y != -50 {
			t.Fatalf("spawn position (%v, %v) out of range", o.X, o.Y)
		}
		if o.Speed < 2.5 || o.Speed >= 4.5 {
			t.Fatalf("speed %v out of range at space speed 1", o.Speed)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		h := newHarness(t, func(o *Options) { o.Seed = seed })
		input := rand.New(rand.NewSource(seed * 7))

		// Get off the pad first so the run covers every phase.
		h.g.Tick(5*time.Second, held(core.ControlUp))

		prevScore := 0
		prevFrame := h.g.State().Frame
		for i := 0; i < 5000 && !h.g.Over(); i++ {
			var cs core.Controls
			for _, c := range core.AllControls {
				if input.Intn(3) == 0 {
					cs = cs.With(c)
				}
			}
			if h.g.State().Phase == PhaseAtmosphere {
				cs = cs.With(core.ControlUp)
			}
			elapsed := time.Duration(input.Intn(50)) * time.Millisecond
			h.clock.Advance(elapsed)
			h.g.Tick(elapsed, cs)

			s := h.g.State()
			if s.Health < 0 || s.Health > 100 {
				t.Fatalf("seed %d tick %d: health %v", seed, i, s.Health)
			}
			if s.SpaceSpeed < 1 || s.SpaceSpeed > 5 {
				t.Fatalf("seed %d tick %d: speed %d", seed, i, s.SpaceSpeed)
			}
			if s.Countdown < 0 || s.Countdown > 5 {
				t.Fatalf("seed %d tick %d: countdown %d", seed, i, s.Countdown)
			}
			if s.Score < prevScore {
				t.Fatalf("seed %d tick %d: score fell from %d to %d", seed, i, prevScore, s.Score)
			}
			if s.Frame != prevFrame+1 {
				t.Fatalf("seed %d tick %d: frame %d after %d", seed, i, s.Frame, prevFrame)
			}
			prevScore, prevFrame = s.Score, s.Frame
		}
		if len(h.reports) > 1 {
			t.Errorf("seed %d: %d game over reports", seed, len(h.reports))
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		h := newHarness(t, func(o *Options) { o.Seed = 12345 })
		h.g.Tick(5*time.Second, held(core.ControlUp))
		for i := 0; i < 600; i++ {
			cs := held(core.ControlUp)
			if i%7 < 3 {
				cs = cs.With(core.ControlFire).With(core.ControlLeft)
			}
			h.clock.Advance(frame)
			h.g.Tick(frame, cs)
		}
		return h.g.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and input diverged: %x vs %x", a, b)
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{
		PhaseLaunch:     "LAUNCH",
		PhaseAtmosphere: "ATMOSPHERE",
		PhaseSpace:      "SPACE",
		PhaseGameOver:   "GAMEOVER",
	} {
		if p.String() != want {
			t.Errorf("%d.String() = %q, expected %q", p, p.String(), want)
		}
	}
}
