// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	CanvasWidth  = 900
	CanvasHeight = 460
	HUDHeight    = 80
	ScreenWidth  = CanvasWidth
	ScreenHeight = CanvasHeight + HUDHeight

	GridSize       = 50.0
	TicksPerSecond = 60
	MaxDeltaTime   = 0.25 // секунд; длинный кадр не догоняется больше чем на 15 тиков

	PathSamplesPerSegment = 400
	PathWidth             = 54.0
	PathBlockMargin       = 4.0
	PathBlockRadius       = PathWidth/2 + PathBlockMargin

	MaxWaves      = 20
	StartMoney    = 150
	StartHealth   = 100
	MaxTowerLevel = 3
	SellRecovery  = 0.65

	UpgradeStatFactor = 0.35 // прирост дальности и урона за уровень
	MinFireInterval   = 5    // тиков

	ProjectileSpeed     = 7.0  // пикселей за тик
	ProjectileHitRadius = 10.0 // попадание, когда до цели меньше
	MortarMinFlight     = 40.0 // тиков
	MortarFlightDivisor = 4.5
	MortarMaxArc        = 180.0
	MortarArcFactor     = 0.55

	CannonSplashRadius = 68.0
	FreezeAoeRadius    = 85.0
	TeslaChainRadius   = 130.0
	MortarAoeRadius    = 130.0
	TeslaChainDecay    = 0.75

	FreezeDuration       = 160 // тиков
	FreezeSpeedFactor    = 0.28
	FreezeImmuneBypassLv = 3
	BurnDuration         = 120 // тиков
	BurnTickInterval     = 20  // тиков

	EscapeDamage          = 10
	FinalBossEscapeDamage = 50

	WaveBonusBase    = 30
	WaveBonusPerWave = 3
	AutoWaveDelayMs  = 1600
)

// MsToTicks переводит миллисекунды оригинальных таймеров в тики симуляции.
func MsToTicks(ms float64) int {
	return int(math.Round(ms * TicksPerSecond / 1000))
}

// Полупрозрачные цвета заданы с premultiplied alpha, как их читает ebiten.
var (
	GrassColor       = color.RGBA{92, 140, 58, 255}
	GridLineColor    = color.RGBA{0, 0, 0, 20}
	PathColor        = color.RGBA{194, 163, 110, 255}
	PathEdgeColor    = color.RGBA{140, 110, 70, 255}
	BlockedCellColor = color.RGBA{47, 9, 9, 60}
	HoverOkColor     = color.RGBA{60, 60, 60, 60}
	HoverBadColor    = color.RGBA{70, 0, 0, 70}
	HUDColor         = color.RGBA{24, 28, 36, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	GoldColor        = color.RGBA{255, 215, 0, 255}
	RangeColor       = color.RGBA{28, 29, 31, 34}
	HealthBackColor  = color.RGBA{17, 17, 17, 255}
	HealthHighColor  = color.RGBA{68, 238, 68, 255}
	HealthMidColor   = color.RGBA{238, 170, 34, 255}
	HealthLowColor   = color.RGBA{238, 34, 34, 255}
	FrozenTintColor  = color.RGBA{28, 56, 72, 72}
	BurnTintColor    = color.RGBA{110, 35, 0, 110}
	ChainArcColor    = color.RGBA{180, 126, 230, 230}
	ExplosionColor   = color.RGBA{180, 113, 28, 180}
	FreezeRingColor  = color.RGBA{71, 155, 180, 180}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	ButtonColor      = color.RGBA{60, 112, 155, 220}
	ButtonHotColor   = color.RGBA{190, 52, 52, 220}
	ButtonOffColor   = color.RGBA{78, 78, 78, 220}
)
