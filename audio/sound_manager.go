// Package audio turns game events into short synthesized sound effects played through beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/parameter"
)

// SoundManager owns the speaker and a mixer that effects are added to
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	seed        uint64
	now         func() time.Time
}

// NewSoundManager creates a manager; nothing is opened until Initialize
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled config leaves the manager silent without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
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

// Play queues one effect; repeats inside MinSoundGap are dropped
func (sm *SoundManager) Play(st core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= core.SoundTypeCount {
		return
	}

	streamer := sm.prepare(st)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// prepare applies the repeat gap and builds the streamer; caller holds mu
func (sm *SoundManager) prepare(st core.SoundType) beep.Streamer {
	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return nil
	}
	sm.lastPlayed[st] = now
	sm.seed++
	return GetSoundEffect(st, sm.cfg, sm.seed)
}

// Active returns the number of effects still mixing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return sm.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
