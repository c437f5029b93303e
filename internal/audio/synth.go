package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType is an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// FilterType selects the noise filter.
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
)

// fadeFloor is the gain every effect decays to by its end.
const fadeFloor = 0.01

// decay returns the exponential fade from 1 to fadeFloor at progress p in [0, 1].
func decay(p float64) float64 {
	return math.Pow(fadeFloor, p)
}

// tone is a pitched blip that glides down an octave while fading out.
type tone struct {
	wave  WaveType
	freq  float64
	phase float64
	pos   int
	total int
	rate  beep.SampleRate
}

// NewTone creates a tone starting at freq and ending an octave lower.
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: wave, freq: freq, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		p := float64(t.pos) / float64(t.total)

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(t.phase-0.5)
		case WaveSaw:
			val = 2*t.phase - 1
		}
		val *= decay(p)

		samples[i][0] = val
		samples[i][1] = val

		freq := t.freq * math.Pow(0.5, p)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// noise is filtered white noise that fades out.
type noise struct {
	filter FilterType
	alpha  float64 // one-pole smoothing factor for the cutoff
	low    float64
	pos    int
	total  int
}

// NewNoise creates a burst of white noise through a one-pole filter at cutoff Hz.
func NewNoise(d time.Duration, filter FilterType, cutoff float64, rate beep.SampleRate) beep.Streamer {
	return &noise{
		filter: filter,
		alpha:  1 - math.Exp(-2*math.Pi*cutoff/float64(rate)),
		total:  rate.N(d),
	}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		x := rand.Float64()*2 - 1
		n.low += n.alpha * (x - n.low)

		val := n.low
		if n.filter == Highpass {
			val = x - n.low
		}
		val *= decay(float64(n.pos) / float64(n.total))

		samples[i][0] = val
		samples[i][1] = val
		n.pos++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// newVolume scales s by a linear gain. math.Log2(0) is -Inf, so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
