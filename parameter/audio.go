package parameter

import "time"

// Audio Timing
const (
	// AudioBufferDuration is the speaker buffer; larger values add latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap drops repeats of the same sound closer than this
	MinSoundGap = 30 * time.Millisecond

	DefaultSampleRate = 44100
)

// Shot Sound Timing
const (
	ShotSoundDuration = 120 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 60 * time.Millisecond
	ShotSweepStart    = 1400.0 // Hz
	ShotSweepEnd      = 280.0  // Hz
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionDecayRate     = 9.0  // Exponential decay per second
	ExplosionRumbleFreq    = 70.0 // Hz
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 120 * time.Millisecond
)

// Start Sound Timing
const (
	StartNoteDuration = 90 * time.Millisecond
	StartSoundAttack  = 5 * time.Millisecond
	StartSoundRelease = 40 * time.Millisecond
)
