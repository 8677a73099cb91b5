// internal/component/session.go
package component

import (
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

// Session — состояние партии: экономика, счетчики и флаги конечного автомата
type Session struct {
	Money  int
	Health int
	Kills  int
	Wave   int // 1..config.MaxWaves+1

	WaveActive bool
	Paused     bool
	GameOver   bool
	GameWon    bool
	AutoWave   bool

	BuildType defs.TowerType
	Selected  types.EntityID

	Tick uint64 // сколько тиков симуляции выполнено
}

func NewSession(autoWave bool) *Session {
	return &Session{
		Money:    config.StartMoney,
		Health:   config.StartHealth,
		Wave:     1,
		AutoWave: autoWave,
	}
}

// Terminal — партия окончена победой или поражением.
func (s *Session) Terminal() bool { return s.GameOver || s.GameWon }

// Running — тики симуляции выполняются.
func (s *Session) Running() bool { return !s.Paused && !s.Terminal() }
