package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
)

// Action команда, которую пользователь выбрал в интерфейсе
type Action int

const (
	ActionNone Action = iota
	ActionStartWave
	ActionTogglePause
	ActionToggleAutoWave
	ActionRestart
	ActionUpgrade
	ActionSell
	ActionClosePanel
)

// HUD нижняя панель: статистика игрока и кнопки управления волнами.
type HUD struct {
	startWave *Button
	pause     *Button
	autoWave  *Button
	restart   *Button
}

func NewHUD() *HUD {
	return &HUD{
		startWave: NewButton(startWaveRect, "Start Wave"),
		pause:     NewButton(pauseRect, "Pause"),
		autoWave:  NewButton(autoWaveRect, "Auto"),
		restart:   NewButton(restartRect, "Restart"),
	}
}

// Sync приводит состояние кнопок к снимку игры
func (h *HUD) Sync(snap app.Snapshot) {
	terminal := snap.GameOver || snap.GameWon
	h.startWave.Disabled = snap.WaveActive || terminal || snap.Paused
	h.pause.Disabled = terminal
	if snap.Paused {
		h.pause.Text = "Resume"
	} else {
		h.pause.Text = "Pause"
	}
	if snap.AutoWave {
		h.autoWave.BgColor = config.ButtonHotColor
		h.autoWave.Text = "Auto on"
	} else {
		h.autoWave.BgColor = config.ButtonColor
		h.autoWave.Text = "Auto"
	}
}

// HitTest возвращает действие кнопки под точкой.
func (h *HUD) HitTest(p image.Point) Action {
	switch {
	case h.startWave.Hit(p):
		return ActionStartWave
	case h.pause.Hit(p):
		return ActionTogglePause
	case h.autoWave.Hit(p):
		return ActionToggleAutoWave
	case h.restart.Hit(p):
		return ActionRestart
	}
	return ActionNone
}

func (h *HUD) Draw(screen *ebiten.Image, face font.Face, snap app.Snapshot, cursor image.Point) {
	vector.DrawFilledRect(screen, 0, hudTop, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	h.startWave.Draw(screen, face, cursor)
	h.pause.Draw(screen, face, cursor)
	h.autoWave.Draw(screen, face, cursor)
	h.restart.Draw(screen, face, cursor)

	text.Draw(screen, StatsLine(snap), face, margin, statsBase, config.TextLightColor)

	wave := WaveLabel(snap.Wave, snap.MaxWaves)
	c := config.TextLightColor
	if defs.IsBossWave(snap.Wave) || snap.Wave == snap.MaxWaves {
		c = config.HealthLowColor // босс-волны выделяются красным
	}
	text.Draw(screen, wave, face, 560, statsBase, c)
}

// StatsLine строка статистики игрока
func StatsLine(snap app.Snapshot) string {
	return fmt.Sprintf("Health %d   Money $%d   Kills %d", snap.Health, snap.Money, snap.Kills)
}

// WaveLabel номер волны римскими цифрами; после победы показывает предел.
func WaveLabel(wave, maxWaves int) string {
	if wave > maxWaves {
		wave = maxWaves
	}
	return fmt.Sprintf("Wave %s / %s", toRoman(wave), toRoman(maxWaves))
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
