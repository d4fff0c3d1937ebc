// Package sound turns game events into short synthesized cues played
// through gopxl/beep.
package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a single oscillator with an exponential decay and an optional
// linear pitch slide.
type tone struct {
	wave  Wave
	freq  float64 // Hz at the start
	slide float64 // Hz per second
	decay float64 // Envelope decay rate, 1/s
	phase float64
	pos   int
	total int
	rng   *rand.Rand
}

// Tone returns a streamer that plays one decaying note for d.
func Tone(wave Wave, freq, slide float64, d time.Duration, decay float64) beep.Streamer {
	return &tone{
		wave:  wave,
		freq:  freq,
		slide: slide,
		decay: decay,
		total: SampleRate.N(d),
		rng:   rand.New(rand.NewPCG(uint64(freq), uint64(d))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		sec := float64(t.pos) / float64(SampleRate)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		v *= math.Exp(-t.decay * sec)

		samples[i][0] = v
		samples[i][1] = v

		freq := max(t.freq+t.slide*sec, 1)
		t.phase += freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// pure is an undecayed sine of length d.
func pure(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(SampleRate.N(d))
	}
	return beep.Take(SampleRate.N(d), sine)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue names a sound effect.
type Cue int

const (
	CueShoot Cue = iota
	CueLaser
	CueExplosion
	CueHit
	CuePickup
	CueWave
	CueGameOver
	cueCount
)

// String returns the name of the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueLaser:
		return "laser"
	case CueExplosion:
		return "explosion"
	case CueHit:
		return "hit"
	case CuePickup:
		return "pickup"
	case CueWave:
		return "wave"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Build synthesizes the cue at the given volume in [0, 1].
func Build(c Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShoot:
		s = Tone(WaveSquare, 880, -2400, 60*time.Millisecond, 30)
	case CueLaser:
		s = Tone(WaveSaw, 1400, -6000, 120*time.Millisecond, 12)
	case CueExplosion:
		s = beep.Mix(
			Tone(WaveNoise, 1, 0, 350*time.Millisecond, 9),
			withVolume(Tone(WaveSine, 90, -120, 350*time.Millisecond, 6), 0.6),
		)
	case CueHit:
		s = Tone(WaveSaw, 160, -200, 250*time.Millisecond, 8)
	case CuePickup:
		s = beep.Seq(
			pure(660, 70*time.Millisecond),
			Tone(WaveSine, 990, 0, 110*time.Millisecond, 10),
		)
	case CueWave:
		s = beep.Seq(
			Tone(WaveSquare, 523, 0, 90*time.Millisecond, 6),
			Tone(WaveSquare, 659, 0, 90*time.Millisecond, 6),
			Tone(WaveSquare, 784, 0, 180*time.Millisecond, 5),
		)
	case CueGameOver:
		s = Tone(WaveSquare, 440, -300, 900*time.Millisecond, 3)
	default:
		s = beep.Silence(0)
	}
	return withVolume(s, vol*0.3)
}
