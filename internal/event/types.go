// internal/event/types.go
package event

import (
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен
	EnemyEscaped  EventType = "EnemyEscaped"  // Враг дошел до конца пути
	Explosion     EventType = "Explosion"     // Взрыв (пушка, миномет, смерть босса)
	FreezeBurst   EventType = "FreezeBurst"   // Волна холода
	FreezeImmune  EventType = "FreezeImmune"  // Цель невосприимчива к заморозке
	ChainArc      EventType = "ChainArc"      // Разряд теслы между двумя точками
	SoundCue      EventType = "SoundCue"      // Звуковой сигнал для хоста
	WaveStarted   EventType = "WaveStarted"   // Волна началась
	WaveEnded     EventType = "WaveEnded"     // Волна закончилась
	WaveBonus     EventType = "WaveBonus"     // Бонус за волну
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена
	TowerSold     EventType = "TowerSold"     // Башня продана
	GameOver      EventType = "GameOver"
	GameWon       EventType = "GameWon"
	GameRestarted EventType = "GameRestarted"
)

// AllTypes — все типы, которые видит хост.
var AllTypes = []EventType{
	EnemyKilled, EnemyEscaped, Explosion, FreezeBurst, FreezeImmune, ChainArc, SoundCue,
	WaveStarted, WaveEnded, WaveBonus, TowerPlaced, TowerUpgraded, TowerSold,
	GameOver, GameWon, GameRestarted,
}

// Cue — звуковой сигнал; синтез остается за хостом.
type Cue string

const (
	CueCannon        Cue = "cannon"
	CueSniper        Cue = "sniper"
	CueRapid         Cue = "rapid"
	CueFreeze        Cue = "freeze"
	CueFire          Cue = "fire"
	CueTesla         Cue = "tesla"
	CueMortar        Cue = "mortar"
	CueKill          Cue = "kill"
	CueBossKill      Cue = "bossKill"
	CueFinalBossKill Cue = "finalBossKill"
	CueWave          Cue = "wave"
)

// FireCue — сигнал выстрела башни типа t.
func FireCue(t defs.TowerType) Cue {
	return Cue(t.String())
}

type KillData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	X, Y    float64
	Bounty  int
}

type EscapeData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	Damage  int // потеря здоровья игрока
}

type ExplosionData struct {
	X, Y   float64
	Radius float64
	Big    bool
}

type PointData struct {
	X, Y   float64
	Radius float64
}

type ChainArcData struct {
	FromX, FromY float64
	ToX, ToY     float64
	Damage       int
}

type FreezeImmuneData struct {
	EnemyID types.EntityID
	X, Y    float64
}

type SoundData struct {
	Cue Cue
}

type WaveData struct {
	Wave  int
	Count int // число запланированных врагов (для WaveStarted)
}

type WaveBonusData struct {
	Wave   int // номер новой волны
	Amount int
}

type TowerData struct {
	TowerID types.EntityID
	Type    defs.TowerType
	Level   int
	CellX   int
	CellY   int
	Money   int // потрачено или возвращено
}
