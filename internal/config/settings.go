package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Language selects the UI translation.
type Language string

const (
	LanguageEN Language = "en"
	LanguagePT Language = "pt"
)

// Languages lists the supported translations.
var Languages = []Language{LanguageEN, LanguagePT}

// MaxVolume is the top of the volume scale.
const MaxVolume = 5

// SoundToggles enables each family of sound effects.
type SoundToggles struct {
	Countdown bool `yaml:"countdown"`
	Turbine   bool `yaml:"turbine"` // launch roar
	Jet       bool `yaml:"jet"`     // explosions, collisions, shots
}

// Settings are the player's preferences, persisted between runs.
type Settings struct {
	Language          Language     `yaml:"language"`
	Volume            int          `yaml:"volume"`
	Sounds            SoundToggles `yaml:"sound_effects"`
	AutoRestart       bool         `yaml:"auto_restart"`
	ObstacleCollision bool         `yaml:"obstacle_collision"`
	Shooting          bool         `yaml:"shooting"`
}

// DefaultSettings returns the settings of a first run.
func DefaultSettings() Settings {
	return Settings{
		Language: LanguageEN,
		Volume:   3,
		Sounds: SoundToggles{
			Countdown: true,
			Turbine:   true,
			Jet:       true,
		},
		AutoRestart:       false,
		ObstacleCollision: true,
		Shooting:          true,
	}
}

// Normalize clamps the volume and replaces an unknown language with English.
func (s *Settings) Normalize() {
	s.Volume = max(0, min(MaxVolume, s.Volume))
	known := false
	for _, l := range Languages {
		if s.Language == l {
			known = true
		}
	}
	if !known {
		s.Language = LanguageEN
	}
}

// DefaultSettingsPath returns ~/.rocketkid/settings.yaml, or a relative
// fallback when home is unavailable.
func DefaultSettingsPath() string {
	if p := UserPath("settings.yaml"); p != "" {
		return p
	}
	return "settings.yaml"
}

// LoadSettings reads settings from path. A missing file yields the defaults
// and no error. A malformed file yields the defaults and an error the caller
// may log.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse settings %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

// SaveSettings writes s to path, creating the parent directory.
func SaveSettings(path string, s Settings) error {
	s.Normalize()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write settings %s: %w", path, err)
	}
	return nil
}
