package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/vmath"
)

// WaveType selects the tone source of a voice
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// voice is one shaped tone: a source cut to length with a linear fade in and out
type voice struct {
	wave    WaveType
	freq    float64
	gain    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// cue is an effect as layers played back to back; voices in a layer sound together
type cue [][]voice

// cues holds the effect for every game event
var cues = [soundTypeCount]cue{
	// Food eaten: A5 with a shorter octave overtone
	SoundBell: {{
		{WaveSine, 880.0, 0.7, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundFundamentalRelease},
		{WaveSine, 1760.0, 0.3, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundOvertoneRelease},
	}},
	// Wall, obstacle or self: low saw buzz
	SoundCrash: {{
		{WaveSaw, 90.0, 1.0, parameter.CrashSoundDuration, parameter.CrashSoundAttack, parameter.CrashSoundRelease},
	}},
	// Restart: short noise burst
	SoundWhoosh: {{
		{WaveNoise, 0, 1.0, parameter.RestartSoundDuration, parameter.RestartSoundAttack, parameter.RestartSoundRelease},
	}},
	// Board full: B5 then E6
	SoundCoin: {
		{{WaveSquare, 987.77, 1.0, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release}},
		{{WaveSquare, 1318.51, 1.0, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release}},
	},
}

// NewEffect builds a fresh one-shot streamer for st at the configured volume
func NewEffect(st SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	if st < 0 || st >= soundTypeCount {
		return nil, fmt.Errorf("unknown sound %d", st)
	}
	sr := beep.SampleRate(cfg.SampleRate)

	layers := make([]beep.Streamer, 0, len(cues[st]))
	for _, layer := range cues[st] {
		voices := make([]beep.Streamer, 0, len(layer))
		for _, v := range layer {
			s, err := v.streamer(sr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", st, err)
			}
			voices = append(voices, s)
		}
		if len(voices) == 1 {
			layers = append(layers, voices[0])
		} else {
			layers = append(layers, beep.Mix(voices...))
		}
	}

	return withGain(beep.Seq(layers...), cfg.EffectVolumes[st]*cfg.MasterVolume), nil
}

func (v voice) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	src, err := toneSource(v.wave, sr, v.freq)
	if err != nil {
		return nil, err
	}
	total := sr.N(v.length)
	shaped := fade(beep.Take(total, src), total, sr.N(v.attack), sr.N(v.release))
	return withGain(shaped, v.gain), nil
}

func toneSource(wave WaveType, sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	switch wave {
	case WaveSine:
		return generators.SineTone(sr, freq)
	case WaveSquare:
		return generators.SquareTone(sr, freq)
	case WaveSaw:
		return generators.SawtoothTone(sr, freq)
	case WaveNoise:
		return noise(vmath.NewFastRand(uint64(time.Now().UnixNano()))), nil
	}
	return nil, fmt.Errorf("unknown wave %d", wave)
}

// noise is endless mono white noise in [-1, 1)
func noise(rng *vmath.FastRand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// fade applies fadeGain across a stream of total samples
func fade(s beep.Streamer, total, attack, release int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := fadeGain(pos, total, attack, release)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// fadeGain ramps up over the first attack samples and down over the last release samples
func fadeGain(pos, total, attack, release int) float64 {
	if pos < attack {
		return float64(pos) / float64(attack)
	}
	if left := total - pos; left < release {
		return float64(left) / float64(release)
	}
	return 1
}

// withGain scales linearly; effects.Volume works in log2 steps and has no -Inf, so 0 is silence
func withGain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}
