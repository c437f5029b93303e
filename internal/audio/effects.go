package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/rocket-kid/internal/core"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Effect builds the unscaled streamer for a sound. Unknown sounds yield nil.
func Effect(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundCountdown:
		return NewTone(440, ms(100), WaveSquare, rate)
	case core.SoundLaunch:
		return NewNoise(ms(500), Lowpass, 400, rate)
	case core.SoundExplosion:
		return beep.Mix(
			NewNoise(ms(800), Lowpass, 100, rate),
			NewTone(100, ms(500), WaveTriangle, rate),
		)
	case core.SoundSmallExplosion:
		return beep.Mix(
			NewNoise(ms(200), Highpass, 800, rate),
			NewTone(300, ms(100), WaveSine, rate),
		)
	case core.SoundCollision:
		return beep.Mix(
			NewNoise(ms(150), Lowpass, 150, rate),
			NewTone(80, ms(150), WaveSaw, rate),
		)
	case core.SoundShoot:
		return NewTone(880, ms(50), WaveSine, rate)
	default:
		return nil
	}
}
