package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, settings and scores.
const AppDir = ".rocketkid"

// LoadRocket loads the simulation tuning.
// Search order: customPath -> ~/.rocketkid/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadRocket(customPath string) (RocketConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseRocket(data)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("configs", "rocket.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRocket(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "rocket.yaml")); err == nil {
		if cfg, err := parseRocket(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseRocket(defaultRocketYAML)
	if err != nil {
		return DefaultRocketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseRocket(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (c RocketConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 2*c.Space.SideMargin || c.Canvas.Height <= c.Physics.SpaceOffset {
		errs = append(errs, fmt.Errorf("canvas %gx%g too small", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Launch.StepMs <= 0 || c.Launch.Steps <= 0 {
		errs = append(errs, errors.New("launch step_ms and steps must be positive"))
	}
	if c.Space.MinSpeed < 1 || c.Space.MaxSpeed < c.Space.MinSpeed {
		errs = append(errs, fmt.Errorf("space speed range [%d,%d] invalid", c.Space.MinSpeed, c.Space.MaxSpeed))
	}
	for name, every := range map[string]int{
		"space.speed_change_every": c.Space.SpeedChangeEvery,
		"weapons.fire_every":       c.Weapons.FireEvery,
		"obstacles.spawn_min":      c.Obstacles.SpawnMin,
		"particles.exhaust_every":  c.Particles.ExhaustEvery,
	} {
		if every <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if len(c.Obstacles.Weights) == 0 {
		errs = append(errs, errors.New("obstacles.weights must not be empty"))
	}
	for _, w := range c.Obstacles.Weights {
		if w <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.weights: %d must be positive", w))
			break
		}
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count %d must not be negative", c.Stars.Count))
	}
	if c.Rocket.MaxHealth <= 0 {
		errs = append(errs, errors.New("rocket.max_health must be positive"))
	}
	if c.Particles.Decay <= 0 {
		errs = append(errs, errors.New("particles.decay must be positive"))
	}
	return errors.Join(errs...)
}

// UserPath joins elem under ~/.rocketkid, or returns "" if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}
