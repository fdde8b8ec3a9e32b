package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Launch chirp
const (
	LaunchSoundDuration = 120 * time.Millisecond
	LaunchSoundFreqLow  = 400.0
	LaunchSoundFreqHigh = 1400.0
)

// Burst
const (
	BurstSoundDuration = 350 * time.Millisecond
	BurstSoundAttack   = 5 * time.Millisecond

	// BurstSoundLowpass is the one-pole smoothing coefficient applied to noise, lower is duller
	BurstSoundLowpass = 0.35
)

// DefaultVolume is the master volume in [0, 1]
const DefaultVolume = 0.6

// MinSoundGap drops sounds that would stack within this window
const MinSoundGap = 40 * time.Millisecond
