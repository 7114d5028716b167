package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SoundManager plays one-shot effects for game events through a shared mixer
// It implements engine.Observer; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager for cfg
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrAudioDisabled when the configuration turns sound off
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and closes the speaker
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

// Play queues a one-shot effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := NewEffect(st, sm.cfg)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	// The mixer is streamed from the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnTick maps a tick outcome to its effect
func (sm *SoundManager) OnTick(outcome engine.Outcome, _ *engine.Snapshot) {
	if st, ok := soundForOutcome(outcome); ok {
		sm.Play(st)
	}
}

// OnPhase plays the restart whoosh
func (sm *SoundManager) OnPhase(from, to engine.Phase) {
	if from == engine.PhaseGameOver && to == engine.PhasePlaying {
		sm.Play(SoundWhoosh)
	}
}

func soundForOutcome(o engine.Outcome) (SoundType, bool) {
	switch o {
	case engine.OutcomeAte:
		return SoundBell, true
	case engine.OutcomeWall, engine.OutcomeObstacle, engine.OutcomeSelf:
		return SoundCrash, true
	case engine.OutcomeBoardFull:
		return SoundCoin, true
	}
	return 0, false
}
