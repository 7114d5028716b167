package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/parameter"
)

// AudioConfig holds the mixer settings; volumes are linear in [0, 1]
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundCrash:  0.8,
			SoundBell:   1.0,
			SoundWhoosh: 0.6,
			SoundCoin:   0.5,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default is kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("VI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("VI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("VI_SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("VI_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
