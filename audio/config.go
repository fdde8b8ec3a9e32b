package audio

import (
	"errors"

	"github.com/lixenwraith/firework/constant"
)

// ErrInvalidVolume is returned for volumes outside [0, 1]
var ErrInvalidVolume = errors.New("volume must be within [0, 1]")

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

// DefaultAudioConfig returns audio enabled at the default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    true,
		Volume:     constant.DefaultVolume,
		SampleRate: constant.AudioSampleRate,
	}
}

// Validate checks the config ranges
func (c *AudioConfig) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return ErrInvalidVolume
	}
	return nil
}
