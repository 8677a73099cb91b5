package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType форма волны генератора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// silenceGain уровень, к которому экспоненциально затухает голос
const silenceGain = 0.0001

// Voice один затухающий тон: частота скользит от Freq к FreqEnd, громкость
// экспоненциально падает от Gain почти до нуля за Duration.
type Voice struct {
	Wave     WaveType
	Freq     float64
	FreqEnd  float64 // 0 — без скольжения
	Duration time.Duration
	Gain     float64
	Delay    time.Duration
}

type voiceStreamer struct {
	v        Voice
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
}

// NewVoiceStreamer генерирует голос без учёта задержки.
func NewVoiceStreamer(v Voice, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &voiceStreamer{v: v, rate: rate, rng: rng, total: rate.N(v.Duration)}
}

func (s *voiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)

		var val float64
		switch s.v.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		val *= s.gainAt(progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freqAt(progress) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *voiceStreamer) Err() error { return nil }

func (s *voiceStreamer) freqAt(progress float64) float64 {
	if s.v.FreqEnd <= 0 || s.v.Freq <= 0 {
		return s.v.Freq
	}
	return s.v.Freq * math.Pow(s.v.FreqEnd/s.v.Freq, progress)
}

func (s *voiceStreamer) gainAt(progress float64) float64 {
	if s.v.Gain <= 0 {
		return 0
	}
	return s.v.Gain * math.Pow(silenceGain/s.v.Gain, progress)
}

// Render собирает голоса в один поток; голоса с задержкой предваряются тишиной.
func Render(voices []Voice, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	streams := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		s := NewVoiceStreamer(v, rate, rng)
		if v.Delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.Delay)), s)
		}
		streams = append(streams, s)
	}
	return beep.Mix(streams...)
}

// math.Log2(0) даёт -Inf, поэтому нулевая громкость — отдельный случай
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
