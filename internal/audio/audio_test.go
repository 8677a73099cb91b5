package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/event"
)

type stubRandom struct{ v float64 }

func (s stubRandom) Intn(n int) int   { return 0 }
func (s stubRandom) Float64() float64 { return s.v }

func drainAll(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestVoiceStreamer_LengthAndBounds(t *testing.T) {
	rate := beep.SampleRate(44100)
	rng := rand.New(rand.NewSource(1))

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		v := Voice{Wave: wave, Freq: 440, FreqEnd: 220, Duration: 100 * time.Millisecond, Gain: 0.5}
		total, peak := drainAll(NewVoiceStreamer(v, rate, rng))
		assert.Equal(t, rate.N(100*time.Millisecond), total, "wave %d", wave)
		assert.LessOrEqual(t, peak, 0.5, "wave %d", wave)
		assert.Greater(t, peak, 0.0, "wave %d", wave)
	}
}

func TestVoiceStreamer_DecaysToSilence(t *testing.T) {
	rate := beep.SampleRate(44100)
	v := Voice{Wave: WaveSquare, Freq: 100, Duration: 200 * time.Millisecond, Gain: 0.8}
	s := NewVoiceStreamer(v, rate, rand.New(rand.NewSource(1)))

	buf := make([][2]float64, rate.N(200*time.Millisecond))
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	assert.InDelta(t, 0.8, math.Abs(buf[0][0]), 1e-9)
	assert.Less(t, math.Abs(buf[n-1][0]), 0.001)

	n, ok = s.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestRender_DelayedVoicesExtendTheCue(t *testing.T) {
	rate := beep.SampleRate(44100)
	voices, ok := Voices(event.CueWave)
	require.True(t, ok)

	total, _ := drainAll(Render(voices, rate, rand.New(rand.NewSource(1))))
	assert.Equal(t, rate.N(120*time.Millisecond)*2+rate.N(200*time.Millisecond), total)
	assert.Equal(t, 440*time.Millisecond, CueDuration(event.CueWave))
}

func TestEveryCueHasVoices(t *testing.T) {
	cues := []event.Cue{
		event.CueCannon, event.CueSniper, event.CueRapid, event.CueFreeze, event.CueFire,
		event.CueTesla, event.CueMortar, event.CueKill, event.CueBossKill,
		event.CueFinalBossKill, event.CueWave,
	}
	for _, c := range cues {
		voices, ok := Voices(c)
		assert.True(t, ok, string(c))
		assert.NotEmpty(t, voices, string(c))
		assert.Greater(t, CueDuration(c), time.Duration(0), string(c))
	}
	_, ok := Voices("nope")
	assert.False(t, ok)
}

func TestPlayer_DisabledPlaysNothing(t *testing.T) {
	p := NewPlayer(config.AudioSettings{Enabled: false, Volume: 1}, stubRandom{0}, zerolog.Nop())
	require.NoError(t, p.Initialize())

	assert.False(t, p.Play(event.CueCannon))
	assert.Equal(t, 0, p.Active())
}

func TestPlayer_RapidCueIsThrottled(t *testing.T) {
	quiet := NewPlayer(config.AudioSettings{Enabled: true, Volume: 1}, stubRandom{0.7}, zerolog.Nop())
	assert.False(t, quiet.Play(event.CueRapid))
	assert.True(t, quiet.Play(event.CueCannon))

	loud := NewPlayer(config.AudioSettings{Enabled: true, Volume: 1}, stubRandom{0.3}, zerolog.Nop())
	assert.True(t, loud.Play(event.CueRapid))
	assert.Equal(t, 1, loud.Active())
}

func TestPlayer_HandleEventsPicksSoundCues(t *testing.T) {
	p := NewPlayer(config.AudioSettings{Enabled: true, Volume: 0.5}, stubRandom{0}, zerolog.Nop())
	events := []event.Event{
		{Type: event.SoundCue, Data: event.SoundData{Cue: event.CueKill}},
		{Type: event.EnemyKilled, Data: event.KillData{}},
		{Type: event.SoundCue, Data: event.SoundData{Cue: event.CueWave}},
		{Type: event.SoundCue, Data: event.SoundData{Cue: "unknown"}},
	}

	assert.Equal(t, 2, p.HandleEvents(events))
	assert.Equal(t, 2, p.Active())

	p.SetEnabled(false)
	assert.Equal(t, 0, p.HandleEvents(events))
}
