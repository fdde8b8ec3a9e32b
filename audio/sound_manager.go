package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/engine"
)

// SoundManager plays launch and burst sounds through the system speaker.
// Every method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlay    time.Time
	now         func() time.Time
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayLaunch plays the rising whistle
func (sm *SoundManager) PlayLaunch() {
	sm.play(func(cfg *AudioConfig) beep.Streamer { return CreateLaunchSound(cfg) })
}

// PlayBurst plays an explosion scaled by magnitude
func (sm *SoundManager) PlayBurst(magnitude int) {
	sm.play(func(cfg *AudioConfig) beep.Streamer { return CreateBurstSound(cfg, magnitude) })
}

// OnLaunch implements engine.Listener
func (sm *SoundManager) OnLaunch(p core.Pellet) {
	sm.PlayLaunch()
}

// OnBurst implements engine.Listener
func (sm *SoundManager) OnBurst(b engine.Burst) {
	sm.PlayBurst(b.Magnitude)
}

func (sm *SoundManager) play(create func(*AudioConfig) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Simultaneous bursts stack into clipping, keep the first
	now := sm.now()
	if now.Sub(sm.lastPlay) < constant.MinSoundGap {
		return
	}
	sm.lastPlay = now

	s := create(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
