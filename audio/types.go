package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCrash  SoundType = iota // Wall, obstacle or self collision
	SoundBell                    // Food eaten
	SoundWhoosh                  // Restart
	SoundCoin                    // Board filled
	soundTypeCount
)

// soundNames are the keys accepted in the VI_SNAKE_SFX_VOLUMES map
var soundNames = [soundTypeCount]string{
	SoundCrash:  "crash",
	SoundBell:   "bell",
	SoundWhoosh: "whoosh",
	SoundCoin:   "coin",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
