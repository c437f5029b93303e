// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker. Without an audio device it stays silent.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rocket-kid/internal/config"
	"github.com/vovakirdan/rocket-kid/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Service is a core.SoundSink backed by the speaker. Play never blocks on
// audio output: effects are queued on a mixer drained by the speaker goroutine.
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewService creates an uninitialized service at the default volume.
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		mixer:  &beep.Mixer{},
		volume: float64(config.DefaultSettings().Volume) / config.MaxVolume,
		logger: logger.WithPrefix("audio"),
	}
}

// Init opens the speaker. On failure the service stays silent and the error
// is returned for the caller to report.
func (s *Service) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	s.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether sounds reach a device.
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// SetVolume sets the master volume on the 0..MaxVolume scale.
func (s *Service) SetVolume(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = float64(max(0, min(config.MaxVolume, v))) / config.MaxVolume
}

// Volume returns the master gain in [0, 1].
func (s *Service) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Play queues a sound effect.
func (s *Service) Play(snd core.Sound) {
	s.mu.Lock()
	on, vol, mixer := s.initialized, s.volume, s.mixer
	s.mu.Unlock()

	if !on || vol <= 0 {
		return
	}
	st := Effect(snd, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	mixer.Add(newVolume(st, vol))
	speaker.Unlock()
}

// Close silences any queued sounds.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Gate forwards only the sounds enabled in Toggles.
type Gate struct {
	Sink    core.SoundSink
	Toggles config.SoundToggles
}

// Play forwards snd if its toggle is on.
func (g Gate) Play(snd core.Sound) {
	if g.Sink != nil && Allowed(g.Toggles, snd) {
		g.Sink.Play(snd)
	}
}

// Allowed maps a sound to its toggle: countdown beeps to Countdown, the
// launch roar to Turbine, everything else to Jet.
func Allowed(t config.SoundToggles, snd core.Sound) bool {
	switch snd {
	case core.SoundCountdown:
		return t.Countdown
	case core.SoundLaunch:
		return t.Turbine
	default:
		return t.Jet
	}
}
