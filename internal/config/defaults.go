package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the built-in tuning.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:          0.15,
			Thrust:           0.4,
			AtmosphereHeight: 2000,
			AltitudeScale:    2,
			PadOffset:        100,
			SpaceOffset:      150,
		},
		Launch: LaunchConfig{
			StepMs: 1000,
			Steps:  5,
		},
		Space: SpaceConfig{
			SideStep:         6,
			SideMargin:       40,
			MinSpeed:         1,
			MaxSpeed:         5,
			SpeedChangeEvery: 10,
			StarScroll:       2,
			ScoreIntervalMs:  1000,
		},
		Weapons: WeaponConfig{
			FireEvery:    6,
			BulletSpeed:  10,
			MuzzleOffset: 20,
			CullY:        -20,
		},
		Obstacles: ObstacleConfig{
			Weights:       []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50},
			BaseSize:      20,
			SizePerWeight: 0.8,
			BaseSpeed:     2,
			SpeedJitter:   2,
			SpeedPerLevel: 0.5,
			DriftPerLevel: 1.5,
			SpawnBase:     60,
			SpawnPerLevel: 5,
			SpawnMin:      20,
			SpawnY:        -50,
			EdgeMargin:    20,
			CullMargin:    50,
		},
		Rocket: RocketBody{
			MaxHealth:       100,
			CollisionRadius: 20,
			DamagePerWeight: 0.2,
		},
		Particles: ParticleConfig{
			Decay:        0.02,
			BurstCount:   15,
			BurstSpeed:   10,
			BurstMinSize: 4,
			BurstSizeVar: 8,
			ExhaustEvery: 3,
			ExhaustLife:  0.6,
			ExhaustSize:  5,
			ExhaustDrop:  40,
		},
		Stars: StarfieldConfig{
			Count: 200,
			WrapY: -20,
		},
	}
}
