package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/parameter"
)

// Config holds audio settings read from the environment
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultConfig returns enabled audio at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundShot:      0.5,
			core.SoundExplosion: 0.8,
			core.SoundGameOver:  1.0,
			core.SoundStart:     0.6,
		},
		SampleRate: parameter.DefaultSampleRate,
	}
}

// LoadConfig overlays SHOOT_* environment variables onto the defaults
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SHOOT_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("SHOOT_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON keyed by sound name, e.g. {"shot": 0.3}
	if effectVols := os.Getenv("SHOOT_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SHOOT_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain of a sound
func (c *Config) volume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
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
