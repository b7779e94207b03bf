package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite wave whose frequency slides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(start*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// burst is decaying noise over a low rumble
type burst struct {
	rate     beep.SampleRate
	pos      int
	duration int
	noise    *vmath.FastRand
	lowpass  float64
}

// NewBurst creates the explosion generator; seed varies the crackle
func NewBurst(rate beep.SampleRate, duration time.Duration, seed uint64) beep.Streamer {
	return &burst{
		rate:     rate,
		duration: rate.N(duration),
		noise:    vmath.NewFastRand(seed),
	}
}

func (g *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)

		env := math.Exp(-t * parameter.ExplosionDecayRate)
		raw := g.noise.Float64()*2 - 1
		g.lowpass += 0.35 * (raw - g.lowpass)
		rumble := 0.4 * math.Sin(2*math.Pi*parameter.ExplosionRumbleFreq*t)

		sample := env * (0.6*g.lowpass + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *burst) Err() error { return nil }

// newVolume applies linear gain through effects.Volume
// math.Log2(0) is -Inf, so zero gain is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound is a falling square sweep
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.ShotSweepStart, parameter.ShotSweepEnd, parameter.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)

	return newVolume(shaped, 0.4*cfg.volume(core.SoundShot))
}

// CreateExplosionSound is a noise burst; seed keeps consecutive explosions from sounding identical
func CreateExplosionSound(cfg *Config, seed uint64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(NewBurst(rate, parameter.ExplosionSoundDuration, seed), cfg.volume(core.SoundExplosion))
}

// CreateGameOverSound is two descending saw notes
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GameOverNoteDuration

	n1 := NewEnvelope(NewOscillator(392.0, d, WaveSaw, rate), d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	n2 := NewEnvelope(NewSweep(261.63, 196.0, 2*d, WaveSaw, rate), 2*d, parameter.GameOverSoundAttack, 2*parameter.GameOverSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), 0.5*cfg.volume(core.SoundGameOver))
}

// CreateStartSound is a rising two-note chime
func CreateStartSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.StartNoteDuration

	n1 := NewEnvelope(NewOscillator(659.25, d, WaveSine, rate), d, parameter.StartSoundAttack, parameter.StartSoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, 2*d, WaveSine, rate), 2*d, parameter.StartSoundAttack, 2*parameter.StartSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(core.SoundStart))
}

// GetSoundEffect builds a fresh streamer for st, nil for unknown types
func GetSoundEffect(st core.SoundType, cfg *Config, seed uint64) beep.Streamer {
	switch st {
	case core.SoundShot:
		return CreateShotSound(cfg)
	case core.SoundExplosion:
		return CreateExplosionSound(cfg, seed)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	case core.SoundStart:
		return CreateStartSound(cfg)
	default:
		return nil
	}
}
