// internal/system/state.go
package system

import (
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"

	"github.com/rs/zerolog"
)

// StateSystem ведет конечный автомат партии:
// игра ⇄ пауза, затем поражение или победа (оба состояния конечные).
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// LoseHealth уменьшает здоровье игрока, не опуская его ниже нуля.
// Поражение наступает в тот же момент, когда здоровье стало нулевым.
func (s *StateSystem) LoseHealth(amount int) {
	session := s.ecs.Session
	session.Health -= amount
	if session.Health < 0 {
		session.Health = 0
	}
	if session.Health == 0 && !session.Terminal() {
		session.GameOver = true
		s.logger.Info().Int("wave", session.Wave).Int("kills", session.Kills).Msg("game over")
		emit(s.ecs, s.eventDispatcher, event.GameOver, event.WaveData{Wave: session.Wave})
	}
}

// Win переводит партию в состояние победы.
func (s *StateSystem) Win() {
	session := s.ecs.Session
	if session.Terminal() {
		return
	}
	session.GameWon = true
	session.WaveActive = false
	s.logger.Info().Int("kills", session.Kills).Int("money", session.Money).Msg("all waves cleared")
	emit(s.ecs, s.eventDispatcher, event.GameWon, event.WaveData{Wave: session.Wave})
}

// SetPaused меняет паузу. В конечных состояниях пауза не переключается.
func (s *StateSystem) SetPaused(paused bool) bool {
	session := s.ecs.Session
	if session.Terminal() {
		return false
	}
	if session.Paused != paused {
		session.Paused = paused
		s.logger.Debug().Bool("paused", paused).Msg("pause toggled")
	}
	return true
}

func (s *StateSystem) TogglePause() bool {
	return s.SetPaused(!s.ecs.Session.Paused)
}
