package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/firework/constant"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestChirpLength(t *testing.T) {
	rate := beep.SampleRate(constant.AudioSampleRate)
	s := NewChirp(400, 1400, 100*time.Millisecond, rate)

	n, peak := drain(t, s, rate.N(time.Second))
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("chirp length = %d samples, want %d", n, rate.N(100*time.Millisecond))
	}
	if peak > 1 || peak < 0.9 {
		t.Errorf("chirp peak = %v, want close to 1", peak)
	}
}

func TestCrackleDecays(t *testing.T) {
	rate := beep.SampleRate(constant.AudioSampleRate)
	s := NewCrackle(200*time.Millisecond, 0.35, rate)

	head := make([][2]float64, rate.N(20*time.Millisecond))
	s.Stream(head)
	// Skip to the tail
	mid := make([][2]float64, rate.N(160*time.Millisecond))
	s.Stream(mid)
	tail := make([][2]float64, rate.N(20*time.Millisecond))
	n, _ := s.Stream(tail)

	peakOf := func(buf [][2]float64) float64 {
		p := 0.0
		for _, v := range buf {
			p = math.Max(p, math.Abs(v[0]))
		}
		return p
	}
	if peakOf(tail[:n]) >= peakOf(head) {
		t.Errorf("tail peak %v not below head peak %v", peakOf(tail[:n]), peakOf(head))
	}
}

func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(constant.AudioSampleRate)
	s := NewEnvelope(NewChirp(1000, 1000, 50*time.Millisecond, rate), 10*time.Millisecond, rate)

	buf := make([][2]float64, 4)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want silence at attack start", buf[0][0])
	}
}

func TestBurstGain(t *testing.T) {
	if g := burstGain(constant.RingMagnitudeMin); g != 0.5 {
		t.Errorf("gain at min magnitude = %v, want 0.5", g)
	}
	if g := burstGain(constant.RingMagnitudeMax); g != 1 {
		t.Errorf("gain at max magnitude = %v, want 1", g)
	}
	if burstGain(3000) <= burstGain(1500) {
		t.Error("larger bursts must be louder")
	}
}

func TestCreateSoundsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	if n, _ := drain(t, CreateLaunchSound(cfg), rate.N(time.Second)); n == 0 {
		t.Error("launch sound is empty")
	}
	if n, _ := drain(t, CreateBurstSound(cfg, 2500), rate.N(time.Second)); n == 0 {
		t.Error("burst sound is empty")
	}
}

func TestMutedVolumeSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Volume = 0
	_, peak := drain(t, CreateBurstSound(cfg, 3999), beep.SampleRate(cfg.SampleRate).N(time.Second))
	if peak != 0 {
		t.Errorf("zero volume peak = %v, want 0", peak)
	}
}
