package audio

import (
	"time"

	"go-scurve-defense/internal/event"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func tone(w WaveType, freq float64, durMs int, gain, freqEnd float64) Voice {
	return Voice{Wave: w, Freq: freq, FreqEnd: freqEnd, Duration: ms(durMs), Gain: gain}
}

func noise(durMs int, gain float64) Voice {
	return Voice{Wave: WaveNoise, Duration: ms(durMs), Gain: gain}
}

// cueVoices партитура каждого звукового сигнала
var cueVoices = map[event.Cue][]Voice{
	event.CueCannon: {tone(WaveSaw, 90, 180, 0.8, 30), noise(180, 0.6)},
	event.CueSniper: {tone(WaveSaw, 600, 60, 0.5, 80), noise(50, 0.4)},
	event.CueRapid:  {noise(22, 0.6), tone(WaveSquare, 1100, 18, 0.2, 0)},
	event.CueFreeze: {
		tone(WaveSine, 1200, 120, 0.4, 600),
		tone(WaveSine, 1800, 100, 0.25, 900),
		tone(WaveSine, 900, 140, 0.2, 450),
	},
	event.CueFire: {noise(150, 0.35), tone(WaveSaw, 150, 120, 0.2, 80)},
	event.CueTesla: {
		tone(WaveSaw, 800, 80, 0.5, 1600),
		tone(WaveSquare, 400, 100, 0.3, 200),
		noise(80, 0.3),
	},
	event.CueMortar: {
		tone(WaveSaw, 60, 280, 0.9, 20),
		noise(280, 0.7),
		tone(WaveSaw, 180, 220, 0.6, 50),
	},
	event.CueKill: {tone(WaveSine, 300, 80, 0.25, 80)},
	event.CueBossKill: {
		tone(WaveSaw, 60, 450, 0.9, 25),
		noise(450, 0.7),
		tone(WaveSaw, 120, 300, 0.5, 40),
	},
	event.CueFinalBossKill: {
		tone(WaveSaw, 40, 700, 1.0, 15),
		noise(700, 0.9),
		tone(WaveSaw, 80, 500, 0.7, 30),
		tone(WaveSine, 160, 600, 0.4, 50),
		noise(500, 0.6),
	},
	event.CueWave: {
		{Wave: WaveSine, Freq: 440, Duration: ms(200), Gain: 0.3},
		{Wave: WaveSine, Freq: 550, Duration: ms(200), Gain: 0.3, Delay: ms(120)},
		{Wave: WaveSine, Freq: 660, Duration: ms(200), Gain: 0.3, Delay: ms(240)},
	},
}

// Voices возвращает партитуру сигнала; неизвестный сигнал молчит.
func Voices(cue event.Cue) ([]Voice, bool) {
	v, ok := cueVoices[cue]
	return v, ok
}

// CueDuration полная длительность сигнала с учётом задержек
func CueDuration(cue event.Cue) time.Duration {
	var longest time.Duration
	for _, v := range cueVoices[cue] {
		if end := v.Delay + v.Duration; end > longest {
			longest = end
		}
	}
	return longest
}
