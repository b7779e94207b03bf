package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/event"
	"github.com/lixenwraith/shoot/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite sample %v at %d", v, total+i)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return total, peak
}

func TestEffectsAreFiniteAndAudible(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound core.SoundType
		want  int
	}{
		{core.SoundShot, rate.N(parameter.ShotSoundDuration)},
		{core.SoundExplosion, rate.N(parameter.ExplosionSoundDuration)},
		{core.SoundGameOver, rate.N(parameter.GameOverNoteDuration) + rate.N(2*parameter.GameOverNoteDuration)},
		{core.SoundStart, rate.N(parameter.StartNoteDuration) + rate.N(2*parameter.StartNoteDuration)},
	}
	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tc.sound, cfg, 1)
			if s == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, s, rate.N(2*time.Second))
			if n != tc.want {
				t.Errorf("length = %d samples, want %d", n, tc.want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
		})
	}
}

func TestUnknownSoundIsNil(t *testing.T) {
	if s := GetSoundEffect(core.SoundTypeCount, DefaultConfig(), 1); s != nil {
		t.Error("expected nil streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	_, peak := drain(t, CreateShotSound(cfg), beep.SampleRate(cfg.SampleRate).N(time.Second))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume", peak)
	}
}

func TestSweepEndsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewSweep(100, 50, 100*time.Millisecond, WaveSine, rate)
	n, _ := drain(t, s, 1000)
	if n != 100 {
		t.Errorf("n = %d, want 100", n)
	}
	// Drained streamers keep reporting done
	buf := make([][2]float64, 8)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("after drain Stream = %d, %v", n, ok)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SHOOT_AUDIO_ENABLED", "false")
	t.Setenv("SHOOT_MASTER_VOLUME", "150")
	t.Setenv("SHOOT_SFX_VOLUMES", `{"shot": 0.25, "bogus": 1}`)
	t.Setenv("SHOOT_SAMPLE_RATE", "-5")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled should be false")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, want clamp to 1", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundShot] != 0.25 {
		t.Errorf("shot volume = %v", cfg.EffectVolumes[core.SoundShot])
	}
	if cfg.SampleRate != parameter.DefaultSampleRate {
		t.Errorf("SampleRate = %d, invalid value should keep default", cfg.SampleRate)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SHOOT_AUDIO_ENABLED", "")
	t.Setenv("SHOOT_MASTER_VOLUME", "not-a-number")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(st core.SoundType) {
	p.played = append(p.played, st)
}

func TestSinkMapsEvents(t *testing.T) {
	rec := &recordingPlayer{}
	sink := NewSink(rec)

	q := event.NewQueue()
	q.Push(event.GameEvent{Type: event.EventShotFired})
	q.Push(event.GameEvent{Type: event.EventBulletExpired})
	q.Push(event.GameEvent{Type: event.EventAsteroidDestroyed})
	q.Push(event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhaseChangePayload{From: "running", To: "game_over"}})
	q.Push(event.GameEvent{Type: event.EventGameOver})
	q.Push(event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhaseChangePayload{From: "game_over", To: "running"}})

	sink.Drain(q)

	want := []core.SoundType{core.SoundShot, core.SoundExplosion, core.SoundGameOver, core.SoundStart}
	if len(rec.played) != len(want) {
		t.Fatalf("played %v, want %v", rec.played, want)
	}
	for i := range want {
		if rec.played[i] != want[i] {
			t.Errorf("played[%d] = %v, want %v", i, rec.played[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Error("queue not drained")
	}
}

func TestNilSinkPlayerIsNoop(t *testing.T) {
	NewSink(nil).Handle([]event.GameEvent{{Type: event.EventShotFired}})
}

func TestManagerSilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.Play(core.SoundShot)
	if sm.Active() != 0 {
		t.Error("uninitialized manager mixed a sound")
	}
	sm.Cleanup()
}

func TestManagerDisabledSkipsDevice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled Initialize returned %v", err)
	}
	sm.Play(core.SoundExplosion)
	if sm.Active() != 0 {
		t.Error("disabled manager mixed a sound")
	}
}

func TestRepeatGap(t *testing.T) {
	sm := NewSoundManager(nil)
	now := time.Unix(100, 0)
	sm.now = func() time.Time { return now }

	if sm.prepare(core.SoundShot) == nil {
		t.Fatal("first shot dropped")
	}
	if sm.prepare(core.SoundShot) != nil {
		t.Error("repeat inside gap not dropped")
	}
	if sm.prepare(core.SoundExplosion) == nil {
		t.Error("gap should be per sound type")
	}
	now = now.Add(parameter.MinSoundGap)
	if sm.prepare(core.SoundShot) == nil {
		t.Error("shot after gap dropped")
	}
}
