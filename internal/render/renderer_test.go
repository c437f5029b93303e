package render

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/entity"
	"github.com/vovakirdan/rocket-kid/internal/sim"
)

func newState(t *testing.T) (*sim.Game, *sim.State) {
	t.Helper()
	g := sim.New(sim.Options{
		Tuning:            config.DefaultRocketConfig(),
		ObstacleCollision: true,
		Shooting:          true,
		Seed:              7,
	})
	return g, g.State()
}

func TestDrawLaunchScene(t *testing.T) {
	_, s := newState(t)
	var rec Recorder
	Draw(&rec, s)

	if rec.Ops[0].Kind != "gradient" || rec.Ops[0].Color != SkyTop || rec.Ops[0].To != SkyBottom {
		t.Fatalf("first op = %+v, expected sky gradient", rec.Ops[0])
	}
	ground, pad := rec.Ops[1], rec.Ops[2]
	if ground.Color != Ground || !reflect.DeepEqual(ground.Args, []float64{0, 580, 800, 20}) {
		t.Errorf("ground = %+v", ground)
	}
	if pad.Color != LaunchPad || !reflect.DeepEqual(pad.Args, []float64{350, 570, 100, 10}) {
		t.Errorf("pad = %+v", pad)
	}
	if rec.Count("triangle") != 1 {
		t.Errorf("rocket body should be drawn once, got %d", rec.Count("triangle"))
	}
	if rec.Count("text") != 0 {
		t.Error("no countdown overlay while countdown is 0")
	}

	s.Countdown = 3
	rec.Reset()
	Draw(&rec, s)
	last := rec.Ops[len(rec.Ops)-1]
	if last.Kind != "text" || last.Text != "3" || last.Args[0] != 400 || last.Args[1] != 300 {
		t.Errorf("countdown overlay = %+v", last)
	}
}

func TestDrawRocketShape(t *testing.T) {
	var rec Recorder
	drawRocket(&rec, 100, 200)

	want := []Op{
		{Kind: "triangle", Args: []float64{100, 160, 85, 210, 115, 210}, Color: RocketBody},
		{Kind: "circle", Args: []float64{100, 190, 8}, Color: RocketGlass},
		{Kind: "rect", Args: []float64{80, 205, 10, 15}, Color: RocketFin},
		{Kind: "rect", Args: []float64{110, 205, 10, 15}, Color: RocketFin},
	}
	if !reflect.DeepEqual(rec.Ops, want) {
		t.Errorf("rocket ops = %+v", rec.Ops)
	}
}

func TestDrawBackdropByAltitude(t *testing.T) {
	tests := []struct {
		name      string
		phase     sim.Phase
		altitude  float64
		starfield bool
		ground    bool
	}{
		{"launch", sim.PhaseLaunch, 0, false, true},
		{"low atmosphere", sim.PhaseAtmosphere, 150, false, true},
		{"mid atmosphere", sim.PhaseAtmosphere, 1000, false, false},
		{"upper atmosphere", sim.PhaseAtmosphere, 1600, true, false},
		{"space", sim.PhaseSpace, 2000, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := newState(t)
			s.Phase = tc.phase
			s.Altitude = tc.altitude

			var rec Recorder
			Draw(&rec, s)

			if got := InSpaceView(s); got != tc.starfield {
				t.Errorf("InSpaceView = %v, expected %v", got, tc.starfield)
			}
			if tc.starfield {
				if rec.Ops[0].Kind != "rect" || rec.Ops[0].Color != Space {
					t.Errorf("first op = %+v, expected black fill", rec.Ops[0])
				}
				// 200 stars plus the rocket window.
				if n := rec.Count("circle"); n != 201 {
					t.Errorf("circles = %d, expected 201", n)
				}
				return
			}
			hasGround := false
			for _, op := range rec.Ops {
				if op.Kind == "rect" && op.Color == Ground {
					hasGround = true
				}
			}
			if hasGround != tc.ground {
				t.Errorf("ground drawn = %v, expected %v", hasGround, tc.ground)
			}
		})
	}
}

func TestDrawSpeedStreaks(t *testing.T) {
	_, s := newState(t)
	s.Phase = sim.PhaseSpace
	s.SpaceSpeed = 5

	var rec Recorder
	Draw(&rec, s)

	if n := rec.Count("line"); n != 200 {
		t.Errorf("streaks = %d, expected one per star", n)
	}
	st := s.Stars[0]
	for _, op := range rec.Ops {
		if op.Kind != "line" {
			continue
		}
		want := []float64{st.X, st.Y, st.X, st.Y + 15 + st.Size*5, st.Size * 2}
		if !reflect.DeepEqual(op.Args, want) {
			t.Errorf("first streak = %v, expected %v", op.Args, want)
		}
		if op.Color.A < 25 {
			t.Errorf("star alpha %d below the 0.1 floor", op.Color.A)
		}
		break
	}
}

func TestDrawEntities(t *testing.T) {
	_, s := newState(t)
	s.Phase = sim.PhaseSpace
	s.Stars = nil
	s.Particles.Add(entity.Particle{X: 1, Y: 2, Size: 5, Life: 0.5, Color: Hex("#FF4500")})
	s.Obstacles.Add(entity.Obstacle{X: 10, Y: 20, Size: 30, Kind: entity.KindAsteroid})
	s.Bullets.Add(entity.Bullet{X: 50, Y: 60})

	var rec Recorder
	Draw(&rec, s)

	particle := rec.Ops[1]
	if particle.Kind != "circle" || particle.Color.A != 128 {
		t.Errorf("particle = %+v, expected alpha from life", particle)
	}
	obstacle, ring := rec.Ops[2], rec.Ops[3]
	if obstacle.Color != Hex("#4B0082") || ring.Kind != "ring" {
		t.Errorf("obstacle ops = %+v, %+v", obstacle, ring)
	}
	bullet := rec.Ops[4]
	if bullet.Color != Bullet || !reflect.DeepEqual(bullet.Args, []float64{48, 50, 4, 15}) {
		t.Errorf("bullet = %+v", bullet)
	}
}

func TestDrawGameOverHidesRocket(t *testing.T) {
	_, s := newState(t)
	s.Phase = sim.PhaseGameOver

	var rec Recorder
	Draw(&rec, s)
	if rec.Count("triangle") != 0 {
		t.Error("rocket should not be drawn after game over")
	}
}

func cloneState(s *sim.State) sim.State {
	c := *s
	c.Obstacles = s.Obstacles.Clone()
	c.Bullets = s.Bullets.Clone()
	c.Particles = s.Particles.Clone()
	c.Stars = append([]entity.Star(nil), s.Stars...)
	return c
}

func TestDrawDoesNotMutate(t *testing.T) {
	g, s := newState(t)
	g.Tick(5*time.Second, core.Controls(core.ControlUp))
	for i := 0; i < 300; i++ {
		g.Tick(16*time.Millisecond, core.Controls(core.ControlUp).With(core.ControlFire))
	}

	before := cloneState(s)
	var rec Recorder
	Draw(&rec, s)
	Draw(&rec, s)

	if !reflect.DeepEqual(before, *s) {
		t.Error("Draw mutated the state")
	}
}

func TestBlendAndAlpha(t *testing.T) {
	black, white := Hex("#000000"), Hex("#FFFFFF")

	if got := Blend(black, white, 0); got != black {
		t.Errorf("Blend t=0 = %v", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("Blend t=1 = %v", got)
	}
	mid := Blend(black, white, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("Blend t=0.5 = %v", mid)
	}

	over := Over(black, WithAlpha(white, 0))
	if over != black {
		t.Errorf("transparent Over = %v, expected dst", over)
	}
	if got := WithAlpha(white, 2); got.A != 0xFF {
		t.Errorf("alpha should clamp, got %d", got.A)
	}
	if c := ObstacleColor(entity.ObstacleKind(99)); c != ObstacleColor(entity.KindRock) {
		t.Errorf("unknown kind color = %v", c)
	}
}
