package state

import "go-scurve-defense/internal/config"

const tickDuration = 1.0 / config.TicksPerSecond

// Stepper переводит реальное время кадров в целое число тиков симуляции.
// Остаток переносится в следующий кадр, длинный кадр обрезается MaxDeltaTime.
type Stepper struct {
	acc float64
}

// Steps возвращает, сколько тиков нужно выполнить за кадр длиной deltaTime секунд.
func (s *Stepper) Steps(deltaTime float64) int {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	s.acc += deltaTime
	// небольшой допуск, чтобы 1/60 секунды не терял тик из-за округления
	n := int((s.acc + 1e-9) / tickDuration)
	s.acc -= float64(n) * tickDuration
	if s.acc < 0 {
		s.acc = 0
	}
	return n
}

func (s *Stepper) Reset() { s.acc = 0 }
