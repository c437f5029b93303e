package core

// Sound is a sound effect kind emitted by the simulation.
type Sound uint8

const (
	SoundCountdown Sound = iota
	SoundLaunch
	SoundExplosion
	SoundSmallExplosion
	SoundCollision
	SoundShoot
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundCountdown:
		return "countdown"
	case SoundLaunch:
		return "launch"
	case SoundExplosion:
		return "explosion"
	case SoundSmallExplosion:
		return "small-explosion"
	case SoundCollision:
		return "collision"
	case SoundShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// SoundSink receives sound events. Play must not block.
type SoundSink interface {
	Play(Sound)
}

// NopSink discards every sound.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Sound) {}

// SoundFunc adapts a function to SoundSink.
type SoundFunc func(Sound)

// Play calls f(s).
func (f SoundFunc) Play(s Sound) { f(s) }
