package ui

import (
	"image"

	"go-scurve-defense/internal/config"
)

const (
	hudTop       = config.CanvasHeight
	rowHeight    = 34
	rowTop       = hudTop + 8
	statsBase    = hudTop + 62
	margin       = 8
	gap          = 6
	paletteWidth = 88
)

func paletteRect(i int) image.Rectangle {
	x := margin + i*(paletteWidth+gap)
	return image.Rect(x, rowTop, x+paletteWidth, rowTop+rowHeight)
}

var (
	startWaveRect = image.Rect(668, rowTop, 778, rowTop+rowHeight)
	pauseRect     = image.Rect(784, rowTop, 838, rowTop+rowHeight)
	autoWaveRect  = image.Rect(844, rowTop, config.ScreenWidth-margin, rowTop+rowHeight)
	restartRect   = image.Rect(784, statsBase-16, config.ScreenWidth-margin, statsBase+4)
)

// InCanvas проверяет, что точка лежит на игровом поле, а не на панели.
func InCanvas(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < config.CanvasWidth && p.Y < config.CanvasHeight
}
