package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/firework/constant"
)

// chirp sweeps a sine exponentially from low to high over its duration
type chirp struct {
	rate      beep.SampleRate
	low, high float64
	phase     float64
	position  int
	total     int
}

// NewChirp creates a rising whistle for a launching shell
func NewChirp(low, high float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &chirp{rate: rate, low: low, high: high, total: rate.N(duration)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		progress := float64(c.position) / float64(c.total)
		freq := c.low * math.Pow(c.high/c.low, progress)

		val := math.Sin(2 * math.Pi * c.phase)
		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// crackle is low-passed white noise with an exponential tail, the body of a burst
type crackle struct {
	smoothing float64
	decay     float64
	level     float64
	last      float64
	position  int
	total     int
}

// NewCrackle creates a burst noise of the given duration; smoothing in (0, 1], lower is duller
func NewCrackle(duration time.Duration, smoothing float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	decay := 1.0
	if total > 0 {
		// Fall to ~1% (-40dB) by the end
		decay = math.Pow(0.01, 1/float64(total))
	}
	return &crackle{smoothing: smoothing, decay: decay, level: 1, total: total}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		white := rand.Float64()*2 - 1
		c.last += c.smoothing * (white - c.last)
		val := c.last * c.level

		samples[i][0] = val
		samples[i][1] = val

		c.level *= c.decay
		c.position++
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// envelope applies a linear attack to a stream
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
}

// NewEnvelope shapes the first attack of s with a linear fade-in
func NewEnvelope(s beep.Streamer, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attackSamples: rate.N(attack)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position < e.attackSamples {
			vol := float64(e.position) / float64(e.attackSamples)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// burstGain maps a burst magnitude to a loudness in (0, 1], bigger shells are louder
func burstGain(magnitude int) float64 {
	span := float64(constant.RingMagnitudeMax - constant.RingMagnitudeMin)
	g := 0.5 + 0.5*float64(magnitude-constant.RingMagnitudeMin)/span
	return math.Max(0.5, math.Min(1, g))
}

// CreateLaunchSound generates the whistle of a rising shell
func CreateLaunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sweep := NewChirp(constant.LaunchSoundFreqLow, constant.LaunchSoundFreqHigh, constant.LaunchSoundDuration, rate)
	return newVolume(sweep, 0.3*cfg.Volume)
}

// CreateBurstSound generates the bang of an explosion: a thump under low-passed crackle
func CreateBurstSound(cfg *AudioConfig, magnitude int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewEnvelope(NewCrackle(constant.BurstSoundDuration, constant.BurstSoundLowpass, rate), constant.BurstSoundAttack, rate)

	thump, err := generators.SineTone(rate, 60)
	if err != nil {
		return newVolume(body, burstGain(magnitude)*cfg.Volume)
	}
	low := NewEnvelope(beep.Take(rate.N(constant.BurstSoundDuration/3), thump), constant.BurstSoundAttack, rate)

	mixed := beep.Mix(
		newVolume(body, 0.8),
		newVolume(low, 0.4),
	)
	return newVolume(mixed, burstGain(magnitude)*cfg.Volume)
}
