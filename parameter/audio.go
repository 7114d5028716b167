package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound (bell)
const (
	EatSoundDuration           = 250 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 220 * time.Millisecond
	EatSoundOvertoneRelease    = 90 * time.Millisecond
)

// Crash Sound (saw buzz)
const (
	CrashSoundDuration = 300 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 200 * time.Millisecond
)

// Restart Sound (noise whoosh)
const (
	RestartSoundDuration = 150 * time.Millisecond
	RestartSoundAttack   = 30 * time.Millisecond
	RestartSoundRelease  = 100 * time.Millisecond
)

// Board Full Sound (two-note coin)
const (
	CoinSoundNote1Duration = 100 * time.Millisecond
	CoinSoundNote2Duration = 400 * time.Millisecond
	CoinSoundAttack        = 2 * time.Millisecond
	CoinSoundNote1Release  = 50 * time.Millisecond
	CoinSoundNote2Release  = 350 * time.Millisecond
)
