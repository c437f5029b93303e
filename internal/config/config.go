// Package config provides YAML-backed tuning constants for the simulation
// and the persisted player settings.
package config

import "time"

// RocketConfig contains every tunable constant of the simulation.
type RocketConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Launch    LaunchConfig    `yaml:"launch"`
	Space     SpaceConfig     `yaml:"space"`
	Weapons   WeaponConfig    `yaml:"weapons"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Rocket    RocketBody      `yaml:"rocket"`
	Particles ParticleConfig  `yaml:"particles"`
	Stars     StarfieldConfig `yaml:"stars"`
}

// CanvasConfig is the logical drawing area. Hosts scale it to their output.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig drives the vertical flight in the atmosphere.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Thrust           float64 `yaml:"thrust"`
	AtmosphereHeight float64 `yaml:"atmosphere_height"`
	AltitudeScale    float64 `yaml:"altitude_scale"` // altitude units per pixel climbed
	PadOffset        float64 `yaml:"pad_offset"`     // pad sits this far above the bottom
	SpaceOffset      float64 `yaml:"space_offset"`   // rocket y in space, from the bottom
}

// LaunchConfig drives the hold-to-launch countdown.
type LaunchConfig struct {
	StepMs int `yaml:"step_ms"`
	Steps  int `yaml:"steps"`
}

// Step returns the hold time per countdown step.
func (c LaunchConfig) Step() time.Duration {
	return time.Duration(c.StepMs) * time.Millisecond
}

// SpaceConfig drives movement, speed and scoring in space.
type SpaceConfig struct {
	SideStep         float64 `yaml:"side_step"`
	SideMargin       float64 `yaml:"side_margin"`
	MinSpeed         int     `yaml:"min_speed"`
	MaxSpeed         int     `yaml:"max_speed"`
	SpeedChangeEvery int     `yaml:"speed_change_every"` // frames
	StarScroll       float64 `yaml:"star_scroll"`        // per unit of speed
	ScoreIntervalMs  int     `yaml:"score_interval_ms"`
}

// ScoreInterval returns the real time between score increments.
func (c SpaceConfig) ScoreInterval() time.Duration {
	return time.Duration(c.ScoreIntervalMs) * time.Millisecond
}

// WeaponConfig drives bullets.
type WeaponConfig struct {
	FireEvery    int     `yaml:"fire_every"` // frames
	BulletSpeed  float64 `yaml:"bullet_speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	CullY        float64 `yaml:"cull_y"` // bullets live while y > cull_y
}

// ObstacleConfig drives obstacle spawning and movement.
type ObstacleConfig struct {
	Weights       []int   `yaml:"weights"`
	BaseSize      float64 `yaml:"base_size"`
	SizePerWeight float64 `yaml:"size_per_weight"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedJitter   float64 `yaml:"speed_jitter"`
	SpeedPerLevel float64 `yaml:"speed_per_level"` // added per unit of space speed
	DriftPerLevel float64 `yaml:"drift_per_level"` // scroll added per unit of space speed
	SpawnBase     int     `yaml:"spawn_base"`      // frames between spawns at speed 0
	SpawnPerLevel int     `yaml:"spawn_per_level"`
	SpawnMin      int     `yaml:"spawn_min"`
	SpawnY        float64 `yaml:"spawn_y"`
	EdgeMargin    float64 `yaml:"edge_margin"`
	CullMargin    float64 `yaml:"cull_margin"` // obstacles live while y < height + cull_margin
}

// SpawnEvery returns the frames between spawns at the given space speed.
func (c ObstacleConfig) SpawnEvery(speed int) int {
	return max(c.SpawnMin, c.SpawnBase-speed*c.SpawnPerLevel)
}

// RocketBody drives health and rocket collisions.
type RocketBody struct {
	MaxHealth       float64 `yaml:"max_health"`
	CollisionRadius float64 `yaml:"collision_radius"`
	DamagePerWeight float64 `yaml:"damage_per_weight"`
}

// ParticleConfig drives explosion bursts and exhaust.
type ParticleConfig struct {
	Decay        float64 `yaml:"decay"`
	BurstCount   int     `yaml:"burst_count"`
	BurstSpeed   float64 `yaml:"burst_speed"` // velocity components span ±burst_speed/2
	BurstMinSize float64 `yaml:"burst_min_size"`
	BurstSizeVar float64 `yaml:"burst_size_var"`
	ExhaustEvery int     `yaml:"exhaust_every"` // frames
	ExhaustLife  float64 `yaml:"exhaust_life"`
	ExhaustSize  float64 `yaml:"exhaust_size"`
	ExhaustDrop  float64 `yaml:"exhaust_drop"` // exhaust spawns this far below the rocket
}

// StarfieldConfig drives the background stars.
type StarfieldConfig struct {
	Count int     `yaml:"count"`
	WrapY float64 `yaml:"wrap_y"`
}
