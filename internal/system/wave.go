// internal/system/wave.go
package system

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/timer"
	"go-scurve-defense/pkg/curve"

	"github.com/rs/zerolog"
)

const (
	spawnGroup    timer.Group = "spawn"
	autoWaveGroup timer.Group = "autowave"
)

// WaveSystem составляет волны, планирует появление врагов и определяет конец волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *timer.Scheduler
	rng             defs.RandomSource
	path            *curve.Path
	state           *StateSystem
	logger          zerolog.Logger
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scheduler *timer.Scheduler,
	rng defs.RandomSource, path *curve.Path, state *StateSystem, logger zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		rng:             rng,
		path:            path,
		state:           state,
		logger:          logger,
	}
}

// StartWave запускает текущую волну. Отказ, если волна уже идет,
// партия на паузе или окончена.
func (s *WaveSystem) StartWave() bool {
	session := s.ecs.Session
	if session.WaveActive || !session.Running() {
		return false
	}
	session.WaveActive = true
	session.Selected = 0
	s.scheduler.CancelGroup(autoWaveGroup)

	orders := defs.ComposeWave(session.Wave, s.rng)
	for _, order := range orders {
		s.scheduler.Schedule(order.Delay, spawnGroup, func() { s.spawn(order) })
	}

	s.logger.Info().Int("wave", session.Wave).Int("enemies", len(orders)).Bool("boss", defs.IsBossWave(session.Wave)).Msg("wave started")
	emit(s.ecs, s.eventDispatcher, event.WaveStarted, event.WaveData{Wave: session.Wave, Count: len(orders)})
	emit(s.ecs, s.eventDispatcher, event.SoundCue, event.SoundData{Cue: event.CueWave})
	return true
}

func (s *WaveSystem) spawn(order defs.SpawnOrder) {
	if s.ecs.Session.GameOver {
		return
	}
	s.Spawn(order.Type, order.Scale)
}

// Spawn создает врага в начале пути.
func (s *WaveSystem) Spawn(t defs.EnemyType, scale float64) *component.Enemy {
	id := s.ecs.NewEntity()
	enemy := component.NewEnemy(id, t, scale, component.PositionOf(s.path.Start()))
	s.ecs.Enemies.Add(id, enemy)
	return enemy
}

// PendingSpawns — сколько врагов текущей волны еще не появилось.
func (s *WaveSystem) PendingSpawns() int {
	return s.scheduler.PendingIn(spawnGroup)
}

// Update проверяет завершение волны. Вызывается после удаления мертвых врагов.
// Волна не считается законченной, пока остаются запланированные появления.
func (s *WaveSystem) Update() {
	session := s.ecs.Session
	if !session.WaveActive || s.PendingSpawns() > 0 || s.ecs.Enemies.Len() > 0 {
		return
	}

	finished := session.Wave
	session.WaveActive = false
	session.Wave++
	bonus := WaveBonus(session.Wave)
	session.Money += bonus

	s.logger.Info().Int("wave", finished).Int("bonus", bonus).Int("money", session.Money).Msg("wave cleared")
	emit(s.ecs, s.eventDispatcher, event.WaveEnded, event.WaveData{Wave: finished})
	emit(s.ecs, s.eventDispatcher, event.WaveBonus, event.WaveBonusData{Wave: session.Wave, Amount: bonus})

	if session.Wave > config.MaxWaves {
		s.state.Win()
		return
	}
	if session.AutoWave {
		s.scheduler.Schedule(config.MsToTicks(config.AutoWaveDelayMs), autoWaveGroup, func() { s.StartWave() })
	}
}

// CancelAutoStart отменяет запланированный автостарт (автоволны выключены).
func (s *WaveSystem) CancelAutoStart() {
	s.scheduler.CancelGroup(autoWaveGroup)
}

// WaveBonus — бонус за прохождение волны; wave — номер следующей волны.
func WaveBonus(wave int) int {
	return config.WaveBonusBase + config.WaveBonusPerWave*wave
}
