package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/utils"
)

const (
	sampleRate = beep.SampleRate(44100)

	// rapidPlayChance доля выстрелов скорострельной башни, которые звучат
	rapidPlayChance = 0.6
	masterGain      = 0.5
)

// Player проигрывает звуковые сигналы симуляции через общий микшер.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      float64
	rng         utils.Random
	noise       *rand.Rand
	logger      zerolog.Logger
	initialized bool
}

// NewPlayer создаёт плеер; динамик не открывается до Initialize.
func NewPlayer(settings config.AudioSettings, rng utils.Random, logger zerolog.Logger) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		enabled: settings.Enabled,
		volume:  settings.Volume,
		rng:     rng,
		noise:   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize открывает устройство вывода. Ошибка не фатальна: игра идёт без звука.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug().Int("sampleRate", int(sampleRate)).Msg("speaker initialized")
	return nil
}

// Close останавливает все звуки
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play ставит сигнал в микшер. Возвращает false, если сигнал пропущен.
func (p *Player) Play(cue event.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return false
	}
	voices, ok := Voices(cue)
	if !ok {
		p.logger.Warn().Str("cue", string(cue)).Msg("unknown sound cue")
		return false
	}
	if cue == event.CueRapid && p.rng.Float64() >= rapidPlayChance {
		return false
	}

	s := newVolume(Render(voices, sampleRate, p.noise), masterGain*p.volume)
	if p.initialized {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	return true
}

// HandleEvents проигрывает все сигналы из пачки событий.
func (p *Player) HandleEvents(events []event.Event) int {
	played := 0
	for _, e := range events {
		if e.Type != event.SoundCue {
			continue
		}
		data, ok := e.Data.(event.SoundData)
		if !ok {
			continue
		}
		if p.Play(data.Cue) {
			played++
		}
	}
	return played
}

// Active число звуков, ещё играющих в микшере
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
